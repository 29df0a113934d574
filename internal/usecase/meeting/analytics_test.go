package meeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/domain/entities"
)

func TestComputeSpeakerMetrics_OverlapCountsAsInterruption(t *testing.T) {
	utterances := []entities.Utterance{
		{Speaker: "A", Text: "intro", StartMs: 0, EndMs: 2000},
		{Speaker: "B", Text: "overlap", StartMs: 1500, EndMs: 3000},
		{Speaker: "A", Text: "reply", StartMs: 3000, EndMs: 4000},
	}

	m := ComputeSpeakerMetrics(utterances)

	assert.Equal(t, 4500, m.TotalSpokenTimeMs)
	assert.Equal(t, 1, m.Interruptions)

	require.Len(t, m.Speakers, 2)
	assert.Equal(t, "A", m.Speakers[0].Name)
	assert.Equal(t, 3000, m.Speakers[0].TotalTimeMs)
	assert.Equal(t, 67, m.Speakers[0].Percentage)
	assert.Equal(t, 2000, m.Speakers[0].LongestMonologueMs)

	assert.Equal(t, "B", m.Speakers[1].Name)
	assert.Equal(t, 1500, m.Speakers[1].TotalTimeMs)
	assert.Equal(t, 33, m.Speakers[1].Percentage)
	assert.Equal(t, 1500, m.Speakers[1].LongestMonologueMs)
}

func TestComputeSpeakerMetrics_Empty(t *testing.T) {
	m := ComputeSpeakerMetrics(nil)

	assert.Equal(t, 0, m.TotalSpokenTimeMs)
	assert.Empty(t, m.Speakers)
	assert.Equal(t, 0, m.Interruptions)
}

func TestComputeSpeakerMetrics_ZeroDurationUtterances(t *testing.T) {
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 100, EndMs: 100},
		{Speaker: "B", StartMs: 200, EndMs: 200},
	}

	m := ComputeSpeakerMetrics(utterances)

	assert.Equal(t, 0, m.TotalSpokenTimeMs)
	require.Len(t, m.Speakers, 2)
	for _, s := range m.Speakers {
		assert.Equal(t, 0, s.Percentage)
		assert.Equal(t, 0, s.TotalTimeMs)
		assert.Equal(t, 0, s.LongestMonologueMs)
	}
}

func TestComputeSpeakerMetrics_NegativeDurationClamped(t *testing.T) {
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 500, EndMs: 200},
		{Speaker: "B", StartMs: 600, EndMs: 1600},
	}

	m := ComputeSpeakerMetrics(utterances)

	assert.Equal(t, 1000, m.TotalSpokenTimeMs)
	require.Len(t, m.Speakers, 2)
	assert.Equal(t, "B", m.Speakers[0].Name)
	assert.Equal(t, 100, m.Speakers[0].Percentage)
	assert.Equal(t, "A", m.Speakers[1].Name)
	assert.Equal(t, 0, m.Speakers[1].TotalTimeMs)
}

func TestComputeSpeakerMetrics_BackToBackIsNotInterruption(t *testing.T) {
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 0, EndMs: 1000},
		{Speaker: "B", StartMs: 1000, EndMs: 2000},
		{Speaker: "A", StartMs: 2500, EndMs: 3000},
	}

	m := ComputeSpeakerMetrics(utterances)
	assert.Equal(t, 0, m.Interruptions)
}

func TestComputeSpeakerMetrics_SameSpeakerOverlapIgnored(t *testing.T) {
	// Diarization sometimes splits one speaker into overlapping segments;
	// those are not interruptions.
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 0, EndMs: 2000},
		{Speaker: "A", StartMs: 1000, EndMs: 3000},
	}

	m := ComputeSpeakerMetrics(utterances)
	assert.Equal(t, 0, m.Interruptions)
}

func TestComputeSpeakerMetrics_RunningEndEnvelope(t *testing.T) {
	// B starts after A's long segment still runs, C starts inside B's
	// segment but also before A's end: both count against the envelope.
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 0, EndMs: 10000},
		{Speaker: "B", StartMs: 4000, EndMs: 5000},
		{Speaker: "C", StartMs: 6000, EndMs: 7000},
	}

	m := ComputeSpeakerMetrics(utterances)
	assert.Equal(t, 2, m.Interruptions)
}

func TestComputeSpeakerMetrics_PercentageSumMayDrift(t *testing.T) {
	// Three equal speakers round to 33+33+33; the sum is not re-normalized.
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 0, EndMs: 1000},
		{Speaker: "B", StartMs: 1000, EndMs: 2000},
		{Speaker: "C", StartMs: 2000, EndMs: 3000},
	}

	m := ComputeSpeakerMetrics(utterances)

	sum := 0
	for _, s := range m.Speakers {
		assert.GreaterOrEqual(t, s.Percentage, 0)
		assert.LessOrEqual(t, s.Percentage, 100)
		sum += s.Percentage
	}
	assert.Equal(t, 99, sum)
}

func TestComputeSpeakerMetrics_SortedByShareStable(t *testing.T) {
	utterances := []entities.Utterance{
		{Speaker: "A", StartMs: 0, EndMs: 1000},
		{Speaker: "B", StartMs: 1000, EndMs: 4000},
		{Speaker: "C", StartMs: 4000, EndMs: 5000},
	}

	m := ComputeSpeakerMetrics(utterances)

	require.Len(t, m.Speakers, 3)
	assert.Equal(t, "B", m.Speakers[0].Name)
	// A and C tie at 20%; encounter order breaks the tie.
	assert.Equal(t, "A", m.Speakers[1].Name)
	assert.Equal(t, "C", m.Speakers[2].Name)
}
