package meeting

import (
	"fmt"
	"strings"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/domain/entities"
	pkgai "github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/ai"
)

// textCorrections fixes recurring transcription misrecognitions of product
// and tool names seen in real meetings. Matching is case-insensitive on the
// literal substring; replacements run in order before any other processing.
var textCorrections = []struct {
	from string
	to   string
}{
	{"assembly ai", "AssemblyAI"},
	{"grok", "Groq"},
	{"click up", "ClickUp"},
	{"jeera", "Jira"},
	{"git hub", "GitHub"},
}

// NormalizeUtterances maps raw provider utterances into canonical records:
// the bare speaker tag becomes a "Speaker A" style label and the known-term
// correction table is applied to the text. Ordering and timestamps are
// preserved exactly.
func NormalizeUtterances(raw []pkgai.RawUtterance) []entities.Utterance {
	utterances := make([]entities.Utterance, 0, len(raw))
	for _, u := range raw {
		utterances = append(utterances, entities.Utterance{
			Speaker: fmt.Sprintf("Speaker %s", u.Speaker),
			Text:    correctText(u.Text),
			StartMs: u.StartMs,
			EndMs:   u.EndMs,
		})
	}
	return utterances
}

// NormalizeChapters maps provider chapters into the response shape unchanged
func NormalizeChapters(raw []pkgai.RawChapter) []entities.Chapter {
	chapters := make([]entities.Chapter, 0, len(raw))
	for _, ch := range raw {
		chapters = append(chapters, entities.Chapter{
			Gist:     ch.Gist,
			Headline: ch.Headline,
			Summary:  ch.Summary,
			StartMs:  ch.StartMs,
			EndMs:    ch.EndMs,
		})
	}
	return chapters
}

// RenderTranscript rebuilds the flattened "Speaker: text" document used as
// input to all generation requests.
func RenderTranscript(utterances []entities.Utterance) string {
	var sb strings.Builder
	for _, u := range utterances {
		sb.WriteString(u.Speaker)
		sb.WriteString(": ")
		sb.WriteString(u.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func correctText(text string) string {
	for _, c := range textCorrections {
		text = replaceFold(text, c.from, c.to)
	}
	return text
}

// replaceFold replaces every case-insensitive occurrence of old in s with new.
// The correction table is ASCII, so byte-wise lowering is safe here.
func replaceFold(s, old, new string) string {
	if old == "" {
		return s
	}
	lower := strings.ToLower(s)
	lowerOld := strings.ToLower(old)

	var sb strings.Builder
	for {
		i := strings.Index(lower, lowerOld)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:i])
		sb.WriteString(new)
		s = s[i+len(old):]
		lower = lower[i+len(lowerOld):]
	}
}
