package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a conversation. Rows are append-only: written
// once per model exchange and never updated or deleted by this service.
// SessionID is nil for legacy rows created before threads existed.
type ChatMessage struct {
	ID        int64     `json:"id"`
	SessionID *string   `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRequest struct {
	Message         string  `json:"message"`
	SessionID       *string `json:"session_id"`
	MaxOutputTokens *int    `json:"max_output_tokens"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type ChatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
	Usage     Usage  `json:"usage"`
}

// QAPair links a user question to the next assistant answer in the same
// session. Answer fields are nil when the question went unanswered.
type QAPair struct {
	OwnerID    int64      `json:"owner_id"`
	SessionID  *string    `json:"session_id"`
	Question   string     `json:"question"`
	QuestionID int64      `json:"question_id"`
	QuestionAt time.Time  `json:"question_at"`
	Answer     *string    `json:"answer"`
	AnswerID   *int64     `json:"answer_id"`
	AnswerAt   *time.Time `json:"answer_at"`
}

type MessagesResponse struct {
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Items  []ChatMessage `json:"items"`
}

type QAPairsResponse struct {
	Total      int      `json:"total"`
	PairLimit  int      `json:"pair_limit"`
	PairOffset int      `json:"pair_offset"`
	Items      []QAPair `json:"items"`
}

type HistoryResponse struct {
	SessionID *string       `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}
