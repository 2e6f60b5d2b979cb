package services

import (
	"testing"
	"time"

	"github.com/invayl-academya/Ai-chatbot/internal/models"
)

func msg(id int64, role string, content string, sessionID *string, ownerID int64) models.ChatMessage {
	return models.ChatMessage{
		ID:        id,
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Second),
	}
}

func strPtr(s string) *string { return &s }

func TestPairMessages_SimpleExchange(t *testing.T) {
	s1 := strPtr("s1")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "What is a tensor?", s1, 1),
		msg(2, models.RoleAssistant, "A tensor is...", s1, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	p := pairs[0]
	if p.Question != "What is a tensor?" {
		t.Errorf("Expected question 'What is a tensor?', got %q", p.Question)
	}
	if p.Answer == nil || *p.Answer != "A tensor is..." {
		t.Errorf("Expected answer 'A tensor is...', got %v", p.Answer)
	}
	if p.QuestionID != 1 || p.AnswerID == nil || *p.AnswerID != 2 {
		t.Errorf("Unexpected pair ids: question_id=%d answer_id=%v", p.QuestionID, p.AnswerID)
	}
	if p.OwnerID != 1 {
		t.Errorf("Expected owner_id 1, got %d", p.OwnerID)
	}
}

func TestPairMessages_OnlyAssistantMessages(t *testing.T) {
	s1 := strPtr("s1")
	msgs := []models.ChatMessage{
		msg(1, models.RoleAssistant, "orphan one", s1, 1),
		msg(2, models.RoleAssistant, "orphan two", s1, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 0 {
		t.Fatalf("Expected 0 pairs for assistant-only session, got %d", len(pairs))
	}
}

func TestPairMessages_ConsecutiveUserMessages(t *testing.T) {
	s2 := strPtr("s2")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "first question", s2, 1),
		msg(2, models.RoleUser, "second question", s2, 1),
		msg(3, models.RoleAssistant, "answer to second", s2, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Answer != nil {
		t.Errorf("Expected first question unanswered, got answer %q", *pairs[0].Answer)
	}
	if pairs[1].Answer == nil || *pairs[1].Answer != "answer to second" {
		t.Errorf("Expected second question paired with the assistant reply, got %v", pairs[1].Answer)
	}
}

func TestPairMessages_TwoUnansweredQuestions(t *testing.T) {
	s2 := strPtr("s2")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "q1", s2, 1),
		msg(2, models.RoleUser, "q2", s2, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	for i, p := range pairs {
		if p.Answer != nil || p.AnswerID != nil || p.AnswerAt != nil {
			t.Errorf("Pair %d: expected null answer fields", i)
		}
	}
}

func TestPairMessages_SessionBoundaryStopsLookahead(t *testing.T) {
	s1, s2 := strPtr("s1"), strPtr("s2")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "question in s1", s1, 1),
		msg(2, models.RoleAssistant, "reply in s2", s2, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Answer != nil {
		t.Errorf("Expected unanswered question at session boundary, got %q", *pairs[0].Answer)
	}
}

func TestPairMessages_AnswerConsumedOnce(t *testing.T) {
	s1 := strPtr("s1")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "q1", s1, 1),
		msg(2, models.RoleAssistant, "a1", s1, 1),
		msg(3, models.RoleUser, "q2", s1, 1),
		msg(4, models.RoleAssistant, "a2", s1, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Answer == nil || *pairs[0].Answer != "a1" {
		t.Errorf("Expected first pair answered by a1, got %v", pairs[0].Answer)
	}
	if pairs[1].Answer == nil || *pairs[1].Answer != "a2" {
		t.Errorf("Expected second pair answered by a2, got %v", pairs[1].Answer)
	}
}

func TestPairMessages_LeadingOrphanedAssistant(t *testing.T) {
	s1 := strPtr("s1")
	msgs := []models.ChatMessage{
		msg(1, models.RoleAssistant, "orphan", s1, 1),
		msg(2, models.RoleUser, "question", s1, 1),
		msg(3, models.RoleAssistant, "answer", s1, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Question != "question" {
		t.Errorf("Expected the user message as question, got %q", pairs[0].Question)
	}
	if pairs[0].Answer == nil || *pairs[0].Answer != "answer" {
		t.Errorf("Expected answer after the orphan, got %v", pairs[0].Answer)
	}
}

func TestPairMessages_NilSessionsPairTogether(t *testing.T) {
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "legacy question", nil, 1),
		msg(2, models.RoleAssistant, "legacy answer", nil, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Answer == nil || *pairs[0].Answer != "legacy answer" {
		t.Errorf("Expected nil-session messages to pair, got %v", pairs[0].Answer)
	}
	if pairs[0].SessionID != nil {
		t.Errorf("Expected nil session id on the pair, got %q", *pairs[0].SessionID)
	}
}

func TestPairMessages_NilSessionDoesNotMatchNamedSession(t *testing.T) {
	s1 := strPtr("s1")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "legacy question", nil, 1),
		msg(2, models.RoleAssistant, "reply in s1", s1, 1),
	}

	pairs := PairMessages(msgs)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Answer != nil {
		t.Errorf("Expected nil-session question not to match a named session reply")
	}
}

func TestPairMessages_Empty(t *testing.T) {
	pairs := PairMessages(nil)
	if len(pairs) != 0 {
		t.Fatalf("Expected 0 pairs for empty input, got %d", len(pairs))
	}
}

func TestPairMessages_Idempotent(t *testing.T) {
	s1, s2 := strPtr("s1"), strPtr("s2")
	msgs := []models.ChatMessage{
		msg(1, models.RoleUser, "q1", s1, 1),
		msg(2, models.RoleAssistant, "a1", s1, 1),
		msg(3, models.RoleUser, "q2", s1, 1),
		msg(4, models.RoleUser, "q3", s2, 2),
		msg(5, models.RoleAssistant, "a3", s2, 2),
	}

	first := PairMessages(msgs)
	second := PairMessages(msgs)

	if len(first) != len(second) {
		t.Fatalf("Pair counts differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].QuestionID != second[i].QuestionID {
			t.Errorf("Pair %d: question ids differ between runs", i)
		}
		a1, a2 := first[i].AnswerID, second[i].AnswerID
		if (a1 == nil) != (a2 == nil) || (a1 != nil && *a1 != *a2) {
			t.Errorf("Pair %d: answer ids differ between runs", i)
		}
	}
}

func TestPaginatePairs(t *testing.T) {
	s1 := strPtr("s1")
	var pairs []models.QAPair
	for i := int64(1); i <= 5; i++ {
		pairs = append(pairs, models.QAPair{QuestionID: i, SessionID: s1})
	}

	tests := []struct {
		name    string
		offset  int
		limit   int
		wantIDs []int64
	}{
		{"first page", 0, 2, []int64{1, 2}},
		{"middle page", 2, 2, []int64{3, 4}},
		{"trailing partial page", 4, 2, []int64{5}},
		{"offset past end", 10, 2, nil},
		{"limit beyond remainder", 0, 100, []int64{1, 2, 3, 4, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PaginatePairs(pairs, tc.offset, tc.limit)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("Expected %d pairs, got %d", len(tc.wantIDs), len(got))
			}
			for i, id := range tc.wantIDs {
				if got[i].QuestionID != id {
					t.Errorf("Pair %d: expected question id %d, got %d", i, id, got[i].QuestionID)
				}
			}
		})
	}
}
