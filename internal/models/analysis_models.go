package models

// HistogramBucket is one bar of a distribution chart.
type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram keeps buckets in a fixed display order, zero counts included.
type Histogram []HistogramBucket

// Total sums all bucket counts.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h {
		total += b.Count
	}
	return total
}

// Count returns the count for label, or 0 when absent.
func (h Histogram) Count(label string) int {
	for _, b := range h {
		if b.Label == label {
			return b.Count
		}
	}
	return 0
}

type NoticeKind string

const (
	NoticeFetchFailure   NoticeKind = "fetch_failure"
	NoticeScoringFailure NoticeKind = "scoring_failure"
	NoticeNoComments     NoticeKind = "no_comments"
)

// Notice is a user-visible, non-fatal condition raised during a run.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
	// CommentIndex is set for per-comment notices.
	CommentIndex *int `json:"comment_index,omitempty"`
}

// AnalysisResult is everything one pipeline run produces.
type AnalysisResult struct {
	RunID              string            `json:"run_id"`
	VideoID            string            `json:"video_id"`
	Comments           []AnalyzedComment `json:"comments"`
	LanguageHistogram  Histogram         `json:"language_histogram"`
	SentimentHistogram Histogram         `json:"sentiment_histogram"`
	TopPositive        []AnalyzedComment `json:"top_positive"`
	TopNegative        []AnalyzedComment `json:"top_negative"`
	Notices            []Notice          `json:"notices,omitempty"`
}

// Empty reports the "no comments found" state.
func (r *AnalysisResult) Empty() bool {
	return len(r.Comments) == 0
}

// HasNotice reports whether a notice of the given kind was raised.
func (r *AnalysisResult) HasNotice(kind NoticeKind) bool {
	for _, n := range r.Notices {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

// Rows projects the per-comment table (text, language, sentiment).
func (r *AnalysisResult) Rows() []CommentRow {
	rows := make([]CommentRow, 0, len(r.Comments))
	for _, c := range r.Comments {
		rows = append(rows, CommentRow{
			Comment:   c.OriginalText,
			Language:  c.Language.String(),
			Sentiment: c.Sentiment.String(),
		})
	}
	return rows
}
