package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
	"github.com/invayl-academya/Ai-chatbot/internal/repository"
)

// ChatService coordinates chat exchanges with the model and all scoped read
// operations over the message log.
type ChatService struct {
	messages *repository.MessageRepo
	model    *OpenAIService
}

func NewChatService(messages *repository.MessageRepo, model *OpenAIService) *ChatService {
	return &ChatService{
		messages: messages,
		model:    model,
	}
}

// ListOptions are the caller-supplied parameters for message listing.
type ListOptions struct {
	SessionID *string
	Role      *string
	Owner     string // "me" or "all"; "all" is honored for admins only
	Limit     int
	Offset    int
}

// QAOptions are the caller-supplied parameters for Q/A pair listing.
type QAOptions struct {
	SessionID  *string
	Owner      string
	PairLimit  int
	PairOffset int
}

// Exchange runs one request/response cycle: persist the user message, call
// the model, persist the reply. On model failure the user message stays; a
// question with no answer is an accepted inconsistency, not corruption.
func (s *ChatService) Exchange(ctx context.Context, user *models.User, req models.ChatRequest) (*models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, &ValidationError{Fields: map[string]string{"message": "Message is required"}}
	}

	sessionID := req.SessionID
	if sessionID == nil || *sessionID == "" {
		sid := uuid.NewString()
		sessionID = &sid
	}

	if _, err := s.messages.Append(ctx, models.RoleUser, message, sessionID, user.ID); err != nil {
		return nil, err
	}

	reply, usage, err := s.model.Complete(ctx, message, req.MaxOutputTokens)
	if err != nil {
		return nil, &UpstreamError{Message: err.Error()}
	}

	if _, err := s.messages.Append(ctx, models.RoleAssistant, reply, sessionID, user.ID); err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		Reply:     reply,
		SessionID: *sessionID,
		Usage:     usage,
	}, nil
}

// ListMessages returns messages newest-first with the total matching count,
// scoped to the requesting user.
func (s *ChatService) ListMessages(ctx context.Context, user *models.User, opts ListOptions) (*models.MessagesResponse, error) {
	filter := repository.MessageFilter{
		SessionID: opts.SessionID,
		Role:      opts.Role,
		OwnerID:   ownerFilter(user, opts.Owner),
	}

	total, err := s.messages.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.messages.Query(ctx, filter, repository.NewestFirst, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}

	return &models.MessagesResponse{
		Total:  total,
		Limit:  opts.Limit,
		Offset: opts.Offset,
		Items:  items,
	}, nil
}

// ListQAPairs fetches the full scoped log oldest-first, reconstructs Q/A
// pairs, and paginates the derived pair sequence. Total is the pair count
// before slicing.
func (s *ChatService) ListQAPairs(ctx context.Context, user *models.User, opts QAOptions) (*models.QAPairsResponse, error) {
	filter := repository.MessageFilter{
		SessionID: opts.SessionID,
		OwnerID:   ownerFilter(user, opts.Owner),
	}

	msgs, err := s.messages.Query(ctx, filter, repository.OldestFirst, 0, 0)
	if err != nil {
		return nil, err
	}

	pairs := PairMessages(msgs)

	return &models.QAPairsResponse{
		Total:      len(pairs),
		PairLimit:  opts.PairLimit,
		PairOffset: opts.PairOffset,
		Items:      PaginatePairs(pairs, opts.PairOffset, opts.PairLimit),
	}, nil
}

// History returns the oldest-first message list for a session, scoped to the
// requesting user.
func (s *ChatService) History(ctx context.Context, user *models.User, sessionID *string, owner string, limit int) (*models.HistoryResponse, error) {
	filter := repository.MessageFilter{
		SessionID: sessionID,
		OwnerID:   ownerFilter(user, owner),
	}

	msgs, err := s.messages.Query(ctx, filter, repository.OldestFirst, limit, 0)
	if err != nil {
		return nil, err
	}

	return &models.HistoryResponse{
		SessionID: sessionID,
		Messages:  msgs,
	}, nil
}

// ownerFilter resolves the ownership restriction applied to every read.
// Admins see all owners unless they narrow to their own rows with owner=me;
// everyone else is pinned to their own rows regardless of what they send.
func ownerFilter(user *models.User, owner string) *int64 {
	if user.Role == models.RoleAdmin && owner != "me" {
		return nil
	}
	id := user.ID
	return &id
}
