package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/domain/entities"
)

const nameResolutionSystem = "You are a JSON generator. You exclusively output valid JSON mappings of speaker labels to real names."

const nameResolutionPrompt = `Analyze the following transcript and identify the real names of the speakers (e.g., 'Speaker A', 'Speaker B') if they mention them. Return ONLY a valid JSON object mapping the speaker labels to their inferred real names. If a name cannot be inferred, map it to the original label. Do not output any other text or markdown.

Transcript:
%s`

// resolveSpeakerNames asks the language model to infer real speaker names
// from the transcript content. Name resolution is best-effort: any failure
// (transport, malformed output) leaves the diarization labels untouched.
func (s *Service) resolveSpeakerNames(ctx context.Context, transcript string) map[string]string {
	content, err := s.groq.ChatCompletion(ctx,
		s.cfg.Groq.AnalysisModel,
		0.1,
		nameResolutionSystem,
		fmt.Sprintf(nameResolutionPrompt, transcript),
	)
	if err != nil {
		s.logger.Warn("speaker name resolution failed", zap.Error(err))
		return map[string]string{}
	}

	raw, ok := ExtractJSONObject(content)
	if !ok {
		s.logger.Warn("speaker name resolution returned no JSON object")
		return map[string]string{}
	}

	var names map[string]string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		s.logger.Warn("speaker name mapping is not valid JSON", zap.Error(err))
		return map[string]string{}
	}
	return names
}

// ApplyNameMap rewrites speaker labels in place using the resolved name
// mapping. Labels with an empty or missing mapping keep their original value.
func ApplyNameMap(utterances []entities.Utterance, names map[string]string) {
	for i := range utterances {
		if name, ok := names[utterances[i].Speaker]; ok && strings.TrimSpace(name) != "" {
			utterances[i].Speaker = name
		}
	}
}
