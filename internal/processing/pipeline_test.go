package processing

import (
	"context"
	"strings"
	"testing"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/clients"
	"github.com/spacesedan/commentlens/internal/language"
	"github.com/spacesedan/commentlens/internal/models"
	"github.com/spacesedan/commentlens/internal/sentiment"
	"github.com/spacesedan/commentlens/internal/videoref"
	"github.com/stretchr/testify/require"
)

// staticSource serves texts as a single page.
func staticSource(texts ...string) *fakeSource {
	return &fakeSource{serve: func(int, clients.PageRequest) (*clients.CommentPage, error) {
		page := &clients.CommentPage{}
		for _, text := range texts {
			page.Comments = append(page.Comments, models.Comment{Text: text})
		}
		return page, nil
	}}
}

// keywordAnalyzer scores +0.8 for "good", -0.6 for "bad", panics on "boom".
var keywordAnalyzer = sentiment.AnalyzerFunc(func(text string) float64 {
	switch {
	case strings.Contains(text, "boom"):
		panic("analyzer exploded")
	case strings.Contains(text, "good"):
		return 0.8
	case strings.Contains(text, "bad"):
		return -0.6
	default:
		return 0
	}
})

func newTestPipeline(src CommentSource) *Pipeline {
	return NewPipeline(
		NewFetcher(src, 300, 100),
		language.NewClassifier(language.DEFAULT_SCRIPT_RATIO_THRESHOLD),
		sentiment.NewScorer(keywordAnalyzer),
		2,
	)
}

func TestPipelineRun_UnresolvableReference(t *testing.T) {
	src := staticSource("good")
	result, err := newTestPipeline(src).Run(context.Background(), "   ")

	require.ErrorIs(t, err, videoref.ErrUnresolvableReference)
	require.Nil(t, result)
	require.Empty(t, src.requests)
}

func TestPipelineRun_AnalyzesComments(t *testing.T) {
	src := staticSource(
		"This is GOOD https://x.co",
		"bad take @someone",
		"नमस्ते दोस्तों",
		"meh",
		"good good",
	)

	result, err := newTestPipeline(src).Run(context.Background(), "https://www.youtube.com/watch?v=abc123&t=5s")
	require.NoError(t, err)

	require.Equal(t, "abc123", result.VideoID)
	require.Equal(t, "abc123", src.requests[0].VideoID)
	require.NotEmpty(t, result.RunID)
	require.Empty(t, result.Notices)
	require.Len(t, result.Comments, 5)

	first := result.Comments[0]
	require.Equal(t, "This is GOOD https://x.co", first.OriginalText)
	require.Equal(t, "this is good ", first.CleanedText)
	require.Equal(t, models.LanguageOther, first.Language)
	require.Equal(t, models.SentimentPositive, first.Sentiment)

	require.Equal(t, models.LanguagePrimaryScript, result.Comments[2].Language)
	require.Equal(t, models.SentimentNegative, result.Comments[1].Sentiment)

	for i, c := range result.Comments {
		require.Equal(t, i, c.Index)
		require.Equal(t, models.LabelForPolarity(c.Polarity), c.Sentiment)
	}

	require.Equal(t, 1, result.LanguageHistogram.Count("Hindi/Marathi"))
	require.Equal(t, 4, result.LanguageHistogram.Count("English"))
	require.Equal(t, 2, result.SentimentHistogram.Count("Positive"))
	require.Equal(t, 1, result.SentimentHistogram.Count("Negative"))
	require.Equal(t, 2, result.SentimentHistogram.Count("Neutral"))

	require.Equal(t, []int{0, 4}, indexes(result.TopPositive))
	require.Equal(t, []int{1, 2}, indexes(result.TopNegative))
}

func TestPipelineRun_FetchFailureYieldsEmptyResult(t *testing.T) {
	src := &fakeSource{serve: func(int, clients.PageRequest) (*clients.CommentPage, error) {
		return nil, clients.ErrCommentsDisabled
	}}

	result, err := newTestPipeline(src).Run(context.Background(), "abc123")
	require.NoError(t, err)
	require.True(t, result.Empty())
	require.True(t, result.HasNotice(models.NoticeFetchFailure))
	require.True(t, result.HasNotice(models.NoticeNoComments))
	require.Contains(t, result.Notices[0].Message, "comments are disabled")
	require.Zero(t, result.SentimentHistogram.Total())
	require.Empty(t, result.TopPositive)
}

func TestPipelineRun_NoComments(t *testing.T) {
	result, err := newTestPipeline(staticSource()).Run(context.Background(), "abc123")
	require.NoError(t, err)
	require.True(t, result.Empty())
	require.Equal(t, []models.Notice{{Kind: models.NoticeNoComments, Message: NO_COMMENTS_MESSAGE}}, result.Notices)
}

func TestPipelineRun_ScoringFailureDefaultsToNeutral(t *testing.T) {
	src := staticSource("good one", "boom", "bad one")

	result, err := newTestPipeline(src).Run(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, result.Comments, 3)

	failed := result.Comments[1]
	require.Equal(t, models.SentimentNeutral, failed.Sentiment)
	require.Zero(t, failed.Polarity)

	require.Len(t, result.Notices, 1)
	notice := result.Notices[0]
	require.Equal(t, models.NoticeScoringFailure, notice.Kind)
	require.NotNil(t, notice.CommentIndex)
	require.Equal(t, 1, *notice.CommentIndex)

	require.Equal(t, models.SentimentPositive, result.Comments[0].Sentiment)
	require.Equal(t, models.SentimentNegative, result.Comments[2].Sentiment)
}

func TestPipelineRun_RunsAreIndependent(t *testing.T) {
	p := newTestPipeline(staticSource("good"))
	a, err := p.Run(context.Background(), "abc123")
	require.NoError(t, err)
	b, err := p.Run(context.Background(), "abc123")
	require.NoError(t, err)

	require.NotEqual(t, a.RunID, b.RunID)
	require.Len(t, b.Comments, 1)
}

func TestNewPipelineFromConfig(t *testing.T) {
	cfg := &config.Config{
		YouTubeAPIKey:        "key",
		YouTubeBaseURL:       "http://localhost:1",
		MaxComments:          50,
		PageSize:             20,
		ScriptRatioThreshold: 0.4,
		TopK:                 3,
	}
	p := NewPipelineFromConfig(cfg, nil)

	require.Equal(t, 50, p.Fetcher.MaxComments)
	require.Equal(t, 20, p.Fetcher.PageSize)
	require.Nil(t, p.Fetcher.Cache)
	require.Equal(t, 0.4, p.Classifier.Threshold)
	require.Equal(t, 3, p.TopK)
	require.IsType(t, &clients.YouTubeClient{}, p.Fetcher.Source)
}
