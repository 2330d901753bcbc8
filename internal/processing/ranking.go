package processing

import (
	"slices"

	"github.com/spacesedan/commentlens/internal/models"
)

const DEFAULT_TOP_K = 5

// Aggregates are the derived views over one run's analyzed comments.
type Aggregates struct {
	LanguageHistogram  models.Histogram
	SentimentHistogram models.Histogram
	TopPositive        []models.AnalyzedComment
	TopNegative        []models.AnalyzedComment
}

// Aggregate builds both histograms and the top-K lists. The input slice is
// never reordered; top-K lists are stable sorts over copies, so equal
// polarities keep fetch order.
func Aggregate(comments []models.AnalyzedComment, topK int) Aggregates {
	if topK <= 0 {
		topK = DEFAULT_TOP_K
	}

	return Aggregates{
		LanguageHistogram:  languageHistogram(comments),
		SentimentHistogram: sentimentHistogram(comments),
		TopPositive:        rank(comments, topK, func(a, b float64) int { return cmpFloat(b, a) }),
		TopNegative:        rank(comments, topK, cmpFloat),
	}
}

func languageHistogram(comments []models.AnalyzedComment) models.Histogram {
	counts := make(map[models.Language]int, len(models.Languages))
	for _, c := range comments {
		counts[c.Language]++
	}
	hist := make(models.Histogram, 0, len(models.Languages))
	for _, lang := range models.Languages {
		hist = append(hist, models.HistogramBucket{Label: lang.String(), Count: counts[lang]})
	}
	return hist
}

func sentimentHistogram(comments []models.AnalyzedComment) models.Histogram {
	counts := make(map[models.SentimentLabel]int, len(models.SentimentLabels))
	for _, c := range comments {
		counts[c.Sentiment]++
	}
	hist := make(models.Histogram, 0, len(models.SentimentLabels))
	for _, label := range models.SentimentLabels {
		hist = append(hist, models.HistogramBucket{Label: label.String(), Count: counts[label]})
	}
	return hist
}

func rank(comments []models.AnalyzedComment, topK int, cmp func(a, b float64) int) []models.AnalyzedComment {
	sorted := slices.Clone(comments)
	slices.SortStableFunc(sorted, func(a, b models.AnalyzedComment) int {
		return cmp(a.Polarity, b.Polarity)
	})
	if len(sorted) > topK {
		sorted = sorted[:topK]
	}
	return sorted
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
