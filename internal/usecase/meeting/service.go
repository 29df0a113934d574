package meeting

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/Rahul-Patel0907/Hack-A-Tron-Backend/errors"
	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/domain/entities"
	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/internal/infrastructure/storage"
	pkgai "github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/ai"
	"github.com/Rahul-Patel0907/Hack-A-Tron-Backend/pkg/config"
)

// Transcriber produces a diarized transcript from a media stream
type Transcriber interface {
	Transcribe(ctx context.Context, media io.Reader) (*pkgai.TranscriptionResult, error)
}

// Generator issues a single chat-completion exchange with the generative
// text provider.
type Generator interface {
	ChatCompletion(ctx context.Context, model string, temperature float64, system, user string) (string, error)
}

// Service runs the transcript-to-intelligence pipeline and answers
// follow-up questions.
type Service struct {
	transcriber Transcriber
	groq        Generator
	artifacts   storage.ArtifactStore
	cfg         *config.Config
	logger      *zap.Logger
}

// NewService constructs the meeting service. All collaborators are injected;
// no global client state.
func NewService(
	transcriber Transcriber,
	groq Generator,
	artifacts storage.ArtifactStore,
	cfg *config.Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		transcriber: transcriber,
		groq:        groq,
		artifacts:   artifacts,
		cfg:         cfg,
		logger:      logger,
	}
}

// ProcessMeeting runs the full pipeline for one uploaded recording:
// transcribe, normalize, resolve speaker names, generate the four summary
// variants and the intelligence report, compute speaker analytics, and
// assemble the response. The media artifact is stored under a request-scoped
// key and removed exactly once on every exit path.
func (s *Service) ProcessMeeting(ctx context.Context, filename string, media io.Reader, size int64, contentType string) (*entities.MeetingResult, error) {
	key := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename))

	if err := s.artifacts.Put(ctx, key, media, size, contentType); err != nil {
		return nil, apperrors.ErrStorageFailed("put", err)
	}
	defer func() {
		// Cleanup must run regardless of which stage failed. Remove is
		// idempotent, and a fresh context survives request cancellation.
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.artifacts.Remove(cleanupCtx, key); err != nil {
			s.logger.Warn("failed to remove media artifact",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}()

	s.logger.Info("starting transcription",
		zap.String("artifact", key),
		zap.Int64("size", size),
	)

	transcription, err := s.transcribeArtifact(ctx, key)
	if err != nil {
		s.logger.Error("transcription failed", zap.String("artifact", key), zap.Error(err))
		return nil, apperrors.ErrTranscriptionFailed(err)
	}

	utterances := NormalizeUtterances(transcription.Utterances)
	transcript := RenderTranscript(utterances)

	s.logger.Info("transcript ready",
		zap.Int("utterance_count", len(utterances)),
		zap.String("language", transcription.LanguageCode),
	)

	// Resolve real speaker names, then rebuild the document from scratch so
	// every downstream request sees a consistent transcript.
	names := s.resolveSpeakerNames(ctx, transcript)
	if len(names) > 0 {
		ApplyNameMap(utterances, names)
		transcript = RenderTranscript(utterances)
	}

	// The summary variants and the intelligence extraction are mutually
	// independent reads of the immutable transcript; issue them in parallel
	// with a per-call timeout and join before assembly.
	var (
		wg           sync.WaitGroup
		summaries    [len(summaryVariants)]string
		intelligence *entities.MeetingIntelligence
	)

	for i := range summaryVariants {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, s.cfg.Groq.RequestTimeout)
			defer cancel()

			text, err := s.generateSummary(callCtx, summaryVariants[i], transcript)
			if err != nil {
				// One failed variant must not take down the others.
				s.logger.Warn("summary variant failed",
					zap.String("variant", summaryVariants[i].name),
					zap.Error(err),
				)
				return
			}
			summaries[i] = text
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Groq.RequestTimeout)
		defer cancel()
		intelligence = s.extractIntelligence(callCtx, transcript)
	}()

	wg.Wait()

	metrics := ComputeSpeakerMetrics(utterances)
	if intelligence != nil {
		intelligence.SpeakerMetrics = &metrics
	}

	result := &entities.MeetingResult{
		Transcript:              utterances,
		Chapters:                NormalizeChapters(transcription.Chapters),
		Summary:                 summaries[0],
		SummaryHinglish:         summaries[1],
		SummarySpeakers:         summaries[2],
		SummarySpeakersHinglish: summaries[3],
		Intelligence:            intelligence,
	}

	s.logger.Info("meeting processed",
		zap.String("artifact", key),
		zap.Int("speaker_count", len(metrics.Speakers)),
		zap.Int("interruptions", metrics.Interruptions),
		zap.Bool("intelligence", intelligence != nil),
	)

	return result, nil
}

// transcribeArtifact submits the stored artifact to the transcription
// provider, retrying transient failures with exponential backoff. Each
// attempt re-opens the artifact so the stream starts from the beginning.
func (s *Service) transcribeArtifact(ctx context.Context, key string) (*pkgai.TranscriptionResult, error) {
	waitCtx, cancel := context.WithTimeout(ctx, s.cfg.Assembly.MaxWait)
	defer cancel()

	var result *pkgai.TranscriptionResult
	submit := func() error {
		media, err := s.artifacts.Open(waitCtx, key)
		if err != nil {
			return fmt.Errorf("failed to open artifact: %w", err)
		}
		defer media.Close()

		result, err = s.transcriber.Transcribe(waitCtx, media)
		// A provider error status is deterministic: resubmitting the same
		// media cannot succeed, so don't burn the retry budget on it.
		var rejected *pkgai.TranscriptRejectedError
		if errors.As(err, &rejected) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = s.cfg.Assembly.MaxWait

	if err := backoff.Retry(submit, backoff.WithContext(bo, waitCtx)); err != nil {
		return nil, err
	}
	return result, nil
}
