package services

import "github.com/invayl-academya/Ai-chatbot/internal/models"

// PairMessages reconstructs question/answer pairs from a message sequence
// sorted by (session_id, created_at, id) ascending.
//
// The scan walks left to right. Each user message becomes a pair; its answer
// is the next assistant message in the same session, unless another user
// message or a session boundary comes first, in which case the question is
// unanswered. Assistant messages with no pending question are orphans and
// contribute nothing. A consumed answer is never revisited.
func PairMessages(msgs []models.ChatMessage) []models.QAPair {
	pairs := make([]models.QAPair, 0)

	i := 0
	for i < len(msgs) {
		m := msgs[i]
		if m.Role != models.RoleUser {
			i++
			continue
		}

		var answer *models.ChatMessage
		j := i + 1
		for j < len(msgs) {
			nxt := &msgs[j]
			if !sameSession(nxt.SessionID, m.SessionID) {
				break
			}
			if nxt.Role == models.RoleAssistant {
				answer = nxt
				break
			}
			// another user message preempts pairing: the earlier question is
			// never retroactively matched to a later answer
			if nxt.Role == models.RoleUser {
				break
			}
			j++
		}

		pair := models.QAPair{
			OwnerID:    m.OwnerID,
			SessionID:  m.SessionID,
			Question:   m.Content,
			QuestionID: m.ID,
			QuestionAt: m.CreatedAt,
		}
		if answer != nil {
			pair.Answer = &answer.Content
			pair.AnswerID = &answer.ID
			pair.AnswerAt = &answer.CreatedAt
			i = j + 1
		} else {
			i++
		}
		pairs = append(pairs, pair)
	}

	return pairs
}

// PaginatePairs slices an already-built pair sequence. Pairing always runs
// over the full scoped log first; there is no streaming variant.
func PaginatePairs(pairs []models.QAPair, offset, limit int) []models.QAPair {
	if offset >= len(pairs) {
		return []models.QAPair{}
	}
	end := offset + limit
	if end > len(pairs) {
		end = len(pairs)
	}
	return pairs[offset:end]
}

// sameSession treats two nil session ids as equal, so legacy rows without a
// session group together, matching the NULLS FIRST retrieval order.
func sameSession(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
