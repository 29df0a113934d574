package meeting

import (
	"math"
	"sort"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/domain/entities"
)

// ComputeSpeakerMetrics derives per-speaker talk time, share percentage,
// longest monologue and interruption count from the ordered utterance list.
// Pure function, no external calls.
//
// An interruption is an utterance whose speaker differs from the previous
// one and whose start lies before the running maximum of all end times seen
// so far, so overlapping chains are tracked against the outermost still-open
// utterance rather than just the immediately prior one. The running maximum
// advances regardless of whether the utterance counted as an interruption.
//
// Percentages use round-half-away-from-zero and are not re-normalized, so
// their sum may drift from 100 by cumulative rounding error.
func ComputeSpeakerMetrics(utterances []entities.Utterance) entities.SpeakerMetrics {
	type accumulator struct {
		totalMs   int
		longestMs int
	}

	stats := make(map[string]*accumulator)
	order := make([]string, 0)
	interruptions := make([]entities.Interruption, 0)

	totalSpokenMs := 0
	previousEnd := 0
	previousSpeaker := ""

	for _, u := range utterances {
		duration := u.DurationMs()

		acc := stats[u.Speaker]
		if acc == nil {
			acc = &accumulator{}
			stats[u.Speaker] = acc
			order = append(order, u.Speaker)
		}

		acc.totalMs += duration
		totalSpokenMs += duration
		if duration > acc.longestMs {
			acc.longestMs = duration
		}

		if previousSpeaker != "" && previousSpeaker != u.Speaker && u.StartMs < previousEnd {
			interruptions = append(interruptions, entities.Interruption{
				Interrupter: u.Speaker,
				Interrupted: previousSpeaker,
				TimeMs:      u.StartMs,
			})
		}

		if u.EndMs > previousEnd {
			previousEnd = u.EndMs
		}
		previousSpeaker = u.Speaker
	}

	speakers := make([]entities.SpeakerStat, 0, len(order))
	for _, name := range order {
		acc := stats[name]
		pct := 0
		if totalSpokenMs > 0 {
			pct = int(math.Round(float64(acc.totalMs) / float64(totalSpokenMs) * 100))
		}
		speakers = append(speakers, entities.SpeakerStat{
			Name:               name,
			TotalTimeMs:        acc.totalMs,
			Percentage:         pct,
			LongestMonologueMs: acc.longestMs,
		})
	}

	// Descending by share; stable keeps encounter order on ties
	sort.SliceStable(speakers, func(i, j int) bool {
		return speakers[i].Percentage > speakers[j].Percentage
	})

	return entities.SpeakerMetrics{
		TotalSpokenTimeMs: totalSpokenMs,
		Speakers:          speakers,
		Interruptions:     len(interruptions),
	}
}
