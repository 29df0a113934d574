package meeting

// ChatRequest asks a follow-up question against a previously obtained
// meeting context (transcript, summary, or both). The service holds no
// conversation state; the caller supplies the context on every request.
type ChatRequest struct {
	Question string `json:"question" validate:"required,min=1"`
	Context  string `json:"context" validate:"required,min=1"`
}
