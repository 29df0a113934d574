package meeting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateSummary_StripsResidualMarkdown(t *testing.T) {
	gen := &fakeGenerator{fn: func(model string, temperature float64, system, user string) (string, error) {
		return "# Key points\n* decided to ship Friday\n* owner: Rahul", nil
	}}
	svc := NewService(nil, gen, nil, testConfig(), zap.NewNop())

	got, err := svc.generateSummary(context.Background(), summaryVariants[0], "Speaker A: hi\n")
	require.NoError(t, err)

	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "#")
	assert.Contains(t, got, "decided to ship Friday")
}

func TestGenerateSummary_UsesAnalysisModelAndTranscript(t *testing.T) {
	gen := &fakeGenerator{fn: func(model string, temperature float64, system, user string) (string, error) {
		return "ok", nil
	}}
	svc := NewService(nil, gen, nil, testConfig(), zap.NewNop())

	_, err := svc.generateSummary(context.Background(), summaryVariants[2], "Speaker A: standup notes\n")
	require.NoError(t, err)

	require.Len(t, gen.calls, 1)
	call := gen.calls[0]
	assert.Equal(t, "llama-3.3-70b-versatile", call.model)
	assert.Contains(t, call.system, "grouping the summary by each individual speaker")
	assert.Contains(t, call.user, "Speaker A: standup notes")
}

func TestGenerateSummary_PropagatesError(t *testing.T) {
	gen := &fakeGenerator{fn: func(model string, temperature float64, system, user string) (string, error) {
		return "", errors.New("upstream down")
	}}
	svc := NewService(nil, gen, nil, testConfig(), zap.NewNop())

	_, err := svc.generateSummary(context.Background(), summaryVariants[0], "t")
	assert.Error(t, err)
}

func TestSummaryVariants_DistinctPersonas(t *testing.T) {
	seen := make(map[string]bool)
	for _, v := range summaryVariants {
		assert.False(t, seen[v.system], "duplicate persona for %s", v.name)
		seen[v.system] = true
		assert.True(t, strings.Contains(v.prompt, "%s"), "prompt for %s must take the transcript", v.name)
	}
}
