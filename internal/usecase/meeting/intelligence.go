package meeting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/domain/entities"
)

const intelligenceSystem = "You are a meeting intelligence JSON generator. Exclusively output valid JSON without formatting."

const intelligencePrompt = "Analyze this meeting transcript and return a structured JSON object with exactly these three keys:\n" +
	"1. \"missed_signals\": A list of strings. Identify: Unanswered questions, Repeated concerns not resolved, Vague commitments (e.g., \"we'll see\", \"soon\"), Conflicts or disagreements without resolution, Decisions without clear ownership.\n" +
	"2. \"health\": An object with \"score\" (number from 1.0 to 10.0), \"strengths\" (list of strings), and \"weaknesses\" (list of strings).\n" +
	"3. \"action_items\": A list of objects. Extract: \"task\" (Task description), \"owner\" (if mentioned, else null), \"deadline\" (if mentioned, else null), \"risk_level\" (Low/Medium/High), and \"risk_reason\" (Why risk was assigned).\n\n" +
	"Return ONLY valid JSON. Do not use markdown blocks like `json`.\n\n" +
	"Transcript:\n%s"

// extractIntelligence requests the structured intelligence report and parses
// it with tolerance for model formatting quirks. The report is optional: any
// request, parse, or validation failure yields nil so the rest of the
// pipeline result still ships.
func (s *Service) extractIntelligence(ctx context.Context, transcript string) *entities.MeetingIntelligence {
	content, err := s.groq.ChatCompletion(ctx,
		s.cfg.Groq.AnalysisModel,
		0.2,
		intelligenceSystem,
		fmt.Sprintf(intelligencePrompt, transcript),
	)
	if err != nil {
		s.logger.Warn("intelligence extraction failed", zap.Error(err))
		return nil
	}

	intel, err := parseIntelligence(content)
	if err != nil {
		s.logger.Warn("intelligence payload rejected", zap.Error(err))
		return nil
	}
	return intel
}

func parseIntelligence(content string) (*entities.MeetingIntelligence, error) {
	raw, ok := ExtractJSONObject(content)
	if !ok {
		// No object span found; the whole payload may still be bare JSON.
		raw = strings.TrimSpace(content)
	}

	var intel entities.MeetingIntelligence
	if err := json.Unmarshal([]byte(raw), &intel); err != nil {
		return nil, fmt.Errorf("failed to decode intelligence JSON: %w", err)
	}
	if err := validateIntelligence(&intel); err != nil {
		return nil, err
	}
	return &intel, nil
}

// validateIntelligence enforces the schema contract the prompt asks for.
// Models occasionally drift outside it; a report with an impossible health
// score or an unknown risk level is rejected wholesale rather than shipped
// half-broken.
func validateIntelligence(intel *entities.MeetingIntelligence) error {
	if intel.Health.Score < 1.0 || intel.Health.Score > 10.0 {
		return fmt.Errorf("health score %.2f outside [1.0, 10.0]", intel.Health.Score)
	}
	for i, item := range intel.ActionItems {
		switch item.RiskLevel {
		case entities.RiskLevelLow, entities.RiskLevelMedium, entities.RiskLevelHigh:
		default:
			return fmt.Errorf("action item %d has unknown risk level %q", i, item.RiskLevel)
		}
	}
	if intel.MissedSignals == nil {
		intel.MissedSignals = []string{}
	}
	if intel.Health.Strengths == nil {
		intel.Health.Strengths = []string{}
	}
	if intel.Health.Weaknesses == nil {
		intel.Health.Weaknesses = []string{}
	}
	if intel.ActionItems == nil {
		intel.ActionItems = []entities.ActionItem{}
	}
	return nil
}
