package ai

import (
	"context"
	"fmt"
	"io"
	"os"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/config"
)

// AssemblyAIClient wraps the official SDK for diarized meeting transcription
type AssemblyAIClient struct {
	client      *aai.Client
	speechModel string
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, speechModel string
	if cfg != nil {
		apiKey = cfg.APIKey
		speechModel = cfg.SpeechModel
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	if speechModel == "" {
		speechModel = "universal"
	}
	return &AssemblyAIClient{
		client:      aai.NewClient(apiKey),
		speechModel: speechModel,
	}
}

// TranscriptRejectedError reports that the provider processed the request
// and returned an error status for the transcript itself. Unlike a transport
// failure, resubmitting the same media will not change the outcome.
type TranscriptRejectedError struct {
	Reason string
}

func (e *TranscriptRejectedError) Error() string {
	return fmt.Sprintf("assemblyai reported error: %s", e.Reason)
}

// RawUtterance is one diarized speaker segment as reported by the provider.
// Speaker carries the provider's bare tag ("A", "B", ...).
type RawUtterance struct {
	Speaker string
	Text    string
	StartMs int
	EndMs   int
}

// RawChapter is one auto-generated chapter as reported by the provider
type RawChapter struct {
	Gist     string
	Headline string
	Summary  string
	StartMs  int
	EndMs    int
}

// TranscriptionResult is the provider output consumed by the pipeline
type TranscriptionResult struct {
	Utterances   []RawUtterance
	Chapters     []RawChapter
	LanguageCode string
}

// Transcribe uploads the media stream and blocks until the transcript is
// ready. Speaker diarization, auto chapters and language detection are
// always requested. A provider error status is returned as an error.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, media io.Reader) (*TranscriptionResult, error) {
	uploadURL, err := c.client.Upload(ctx, media)
	if err != nil {
		return nil, fmt.Errorf("failed to upload media to AssemblyAI: %w", err)
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels:     aai.Bool(true),
		AutoChapters:      aai.Bool(true),
		LanguageDetection: aai.Bool(true),
		SpeechModel:       aai.SpeechModel(c.speechModel),
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("transcription request failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "unknown transcription error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, &TranscriptRejectedError{Reason: msg}
	}

	result := &TranscriptionResult{
		LanguageCode: string(transcript.LanguageCode),
	}

	for _, utt := range transcript.Utterances {
		raw := RawUtterance{}
		if utt.Speaker != nil {
			raw.Speaker = *utt.Speaker
		}
		if utt.Text != nil {
			raw.Text = *utt.Text
		}
		if utt.Start != nil {
			raw.StartMs = int(*utt.Start)
		}
		if utt.End != nil {
			raw.EndMs = int(*utt.End)
		}
		result.Utterances = append(result.Utterances, raw)
	}

	for _, ch := range transcript.Chapters {
		raw := RawChapter{}
		if ch.Gist != nil {
			raw.Gist = *ch.Gist
		}
		if ch.Headline != nil {
			raw.Headline = *ch.Headline
		}
		if ch.Summary != nil {
			raw.Summary = *ch.Summary
		}
		if ch.Start != nil {
			raw.StartMs = int(*ch.Start)
		}
		if ch.End != nil {
			raw.EndMs = int(*ch.End)
		}
		result.Chapters = append(result.Chapters, raw)
	}

	return result, nil
}
