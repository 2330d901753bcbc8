package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/spacesedan/commentlens/internal/models"
)

const BAR_WIDTH = 30

func writeText(w io.Writer, result *models.AnalysisResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Comment analysis for %s\n", result.VideoID)
	fmt.Fprintf(&b, "Run %s, %s comment(s)\n", result.RunID, humanize.Comma(int64(len(result.Comments))))

	for _, n := range result.Notices {
		fmt.Fprintf(&b, "! %s\n", n.Message)
	}
	if result.Empty() {
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("\nLanguage distribution\n")
	writeHistogram(&b, result.LanguageHistogram)
	b.WriteString("\nSentiment distribution\n")
	writeHistogram(&b, result.SentimentHistogram)

	fmt.Fprintf(&b, "\nTop %d positive comments\n", len(result.TopPositive))
	writeRanked(&b, result.TopPositive)
	fmt.Fprintf(&b, "\nTop %d negative comments\n", len(result.TopNegative))
	writeRanked(&b, result.TopNegative)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeHistogram(w io.Writer, h models.Histogram) {
	total := h.Total()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, bucket := range h {
		bar := 0
		if total > 0 {
			bar = bucket.Count * BAR_WIDTH / total
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
			bucket.Label,
			humanize.Comma(int64(bucket.Count)),
			percent(bucket.Count, total),
			strings.Repeat("#", bar))
	}
	tw.Flush()
}

func writeRanked(w io.Writer, comments []models.AnalyzedComment) {
	for i, c := range comments {
		fmt.Fprintf(w, "  %d. %s (%+.3f)\n", i+1, singleLine(c.OriginalText), c.Polarity)
	}
}
