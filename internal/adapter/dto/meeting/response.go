package meeting

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}
