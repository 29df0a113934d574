package meeting

import (
	"context"
	"fmt"
)

const chatSystem = "You are a helpful, intelligent AI assistant. Answer based on the provided meeting context, and feel free to offer your own opinions and analysis. Keep answers concise but friendly."

const chatPrompt = `You are a highly capable AI assistant that answers questions based on the provided meeting context.
If the answer is in the context, provide a clear, helpful response. You are also encouraged to provide your own AI opinions, insights, and objective analysis based on the context when asked.
If the question is completely unrelated to the meeting, politely decline to answer or state that it wasn't discussed.

Meeting Context (Transcript/Summary):
%s

User Question: %s
`

// Answer responds to a follow-up question against a caller-supplied meeting
// context. Stateless: the caller carries the context on every call.
func (s *Service) Answer(ctx context.Context, question, contextText string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Groq.RequestTimeout)
	defer cancel()

	return s.groq.ChatCompletion(callCtx,
		s.cfg.Groq.ChatModel,
		0.5,
		chatSystem,
		fmt.Sprintf(chatPrompt, contextText, question),
	)
}
