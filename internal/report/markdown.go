package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/commentlens/internal/models"
)

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.SpaceHeadings | blackfriday.NoEmptyLineBeforeBlock
	policy       = bluemonday.UGCPolicy()

	// comment text is user content; neutralize anything markdown would act on
	markdownEscaper = strings.NewReplacer(
		`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`,
		`[`, `\[`, `]`, `\]`, `<`, `&lt;`, `>`, `&gt;`,
		`#`, `\#`, `|`, `\|`, `!`, `\!`,
	)
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(singleLine(s))
}

// Markdown renders the full report as a markdown document.
func Markdown(result *models.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Comment analysis for `%s`\n\n", result.VideoID)
	fmt.Fprintf(&b, "Run `%s`, %s comment(s).\n\n", result.RunID, humanize.Comma(int64(len(result.Comments))))

	for _, n := range result.Notices {
		fmt.Fprintf(&b, "> **%s**: %s\n>\n", n.Kind, escapeMarkdown(n.Message))
	}
	if len(result.Notices) > 0 {
		b.WriteString("\n")
	}
	if result.Empty() {
		return b.String()
	}

	b.WriteString("## Language distribution\n\n")
	writeMarkdownHistogram(&b, result.LanguageHistogram)
	b.WriteString("## Sentiment distribution\n\n")
	writeMarkdownHistogram(&b, result.SentimentHistogram)

	fmt.Fprintf(&b, "## Top %d positive comments\n\n", len(result.TopPositive))
	writeMarkdownRanked(&b, result.TopPositive)
	fmt.Fprintf(&b, "## Top %d negative comments\n\n", len(result.TopNegative))
	writeMarkdownRanked(&b, result.TopNegative)

	b.WriteString("## Comments\n\n")
	b.WriteString("| # | Comment | Language | Sentiment |\n")
	b.WriteString("|---|---|---|---|\n")
	for i, row := range result.Rows() {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, escapeMarkdown(row.Comment), row.Language, row.Sentiment)
	}

	return b.String()
}

func writeMarkdownHistogram(b *strings.Builder, h models.Histogram) {
	total := h.Total()
	b.WriteString("| Label | Count | Share |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, bucket := range h {
		fmt.Fprintf(b, "| %s | %s | %s |\n", bucket.Label, humanize.Comma(int64(bucket.Count)), percent(bucket.Count, total))
	}
	b.WriteString("\n")
}

func writeMarkdownRanked(b *strings.Builder, comments []models.AnalyzedComment) {
	for i, c := range comments {
		fmt.Fprintf(b, "%d. %s (%+.3f)\n", i+1, escapeMarkdown(c.OriginalText), c.Polarity)
	}
	b.WriteString("\n")
}

// HTML renders the markdown report and sanitizes the output.
func HTML(result *models.AnalysisResult) []byte {
	unsafe := blackfriday.Run([]byte(Markdown(result)),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	return policy.SanitizeBytes(unsafe)
}
