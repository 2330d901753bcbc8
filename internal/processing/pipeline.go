package processing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/cleaning"
	"github.com/spacesedan/commentlens/internal/clients"
	"github.com/spacesedan/commentlens/internal/language"
	"github.com/spacesedan/commentlens/internal/models"
	"github.com/spacesedan/commentlens/internal/sentiment"
	"github.com/spacesedan/commentlens/internal/videoref"
)

const NO_COMMENTS_MESSAGE = "No comments found for this video."

// Pipeline runs resolve -> fetch -> classify/normalize/score -> aggregate for
// one video reference. A Pipeline is not shared between concurrent runs.
type Pipeline struct {
	Fetcher    *Fetcher
	Classifier language.Classifier
	Scorer     *sentiment.Scorer
	TopK       int
}

func NewPipeline(fetcher *Fetcher, classifier language.Classifier, scorer *sentiment.Scorer, topK int) *Pipeline {
	if topK <= 0 {
		topK = DEFAULT_TOP_K
	}
	return &Pipeline{
		Fetcher:    fetcher,
		Classifier: classifier,
		Scorer:     scorer,
		TopK:       topK,
	}
}

// NewPipelineFromConfig wires a fresh YouTube client and fetcher. cache may be
// nil.
func NewPipelineFromConfig(cfg *config.Config, cache CommentCache) *Pipeline {
	fetcher := NewFetcher(clients.NewYouTubeClientFromConfig(cfg), cfg.MaxComments, cfg.PageSize)
	if cache != nil {
		fetcher.WithCache(cache)
	}
	return NewPipeline(
		fetcher,
		language.NewClassifier(cfg.ScriptRatioThreshold),
		sentiment.NewVADERScorer(),
		cfg.TopK,
	)
}

// Run analyzes the comments of the referenced video. The only error it
// returns is videoref.ErrUnresolvableReference; fetch and scoring failures
// are reported as notices on the result.
func (p *Pipeline) Run(ctx context.Context, reference string) (*models.AnalysisResult, error) {
	videoID, err := videoref.Resolve(reference)
	if err != nil {
		slog.WarnContext(ctx, "[Pipeline] Could not resolve video reference",
			slog.String("reference", reference),
			slog.String("error", err.Error()))
		return nil, err
	}
	if !videoref.IsLikelyVideoID(videoID) {
		slog.WarnContext(ctx, "[Pipeline] Reference does not look like a video ID, using it as is",
			slog.String("video_id", videoID))
	}

	result := &models.AnalysisResult{
		RunID:    uuid.NewString(),
		VideoID:  videoID,
		Comments: []models.AnalyzedComment{},
	}
	logger := slog.With(slog.String("run_id", result.RunID), slog.String("video_id", videoID))
	start := time.Now()

	comments, err := p.Fetcher.FetchComments(ctx, videoID)
	if err != nil {
		logger.Warn("[Pipeline] Fetch failed, continuing with no comments",
			slog.String("error", err.Error()))
		result.Notices = append(result.Notices, models.Notice{
			Kind:    models.NoticeFetchFailure,
			Message: fmt.Sprintf("Error fetching comments: %s", fetchReason(err)),
		})
		comments = nil
	}

	for i, c := range comments {
		lang := p.Classifier.Classify(c.Text)
		cleaned := cleaning.Normalize(c.Text, lang)

		score, err := p.Scorer.ScoreOrNeutral(cleaned, lang)
		if err != nil {
			index := i
			result.Notices = append(result.Notices, models.Notice{
				Kind:         models.NoticeScoringFailure,
				Message:      fmt.Sprintf("Sentiment analysis failed for comment %d, defaulted to Neutral", i+1),
				CommentIndex: &index,
			})
		}

		result.Comments = append(result.Comments, models.AnalyzedComment{
			Index:        i,
			OriginalText: c.Text,
			Language:     lang,
			CleanedText:  cleaned,
			Sentiment:    score.Label,
			Polarity:     score.Polarity,
		})
	}

	if result.Empty() {
		result.Notices = append(result.Notices, models.Notice{
			Kind:    models.NoticeNoComments,
			Message: NO_COMMENTS_MESSAGE,
		})
	}

	agg := Aggregate(result.Comments, p.TopK)
	result.LanguageHistogram = agg.LanguageHistogram
	result.SentimentHistogram = agg.SentimentHistogram
	result.TopPositive = agg.TopPositive
	result.TopNegative = agg.TopNegative

	logger.Info("[Pipeline] Analysis complete",
		slog.Int("comments", len(result.Comments)),
		slog.Int("notices", len(result.Notices)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// fetchReason turns a fetch error into a short user-facing reason.
func fetchReason(err error) string {
	switch {
	case errors.Is(err, clients.ErrUnauthorized), errors.Is(err, clients.ErrForbidden):
		return "the API key was rejected"
	case errors.Is(err, clients.ErrQuotaExceeded):
		return "the API quota is exhausted"
	case errors.Is(err, clients.ErrCommentsDisabled):
		return "comments are disabled for this video"
	case errors.Is(err, clients.ErrVideoNotFound):
		return "the video was not found"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "the request timed out"
	default:
		return err.Error()
	}
}
