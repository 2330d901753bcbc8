// Package report renders an AnalysisResult for people: a terminal summary,
// a markdown document, sanitized HTML built from that markdown, or JSON.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/spacesedan/commentlens/internal/models"
)

type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

var Formats = []Format{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

var ErrUnknownFormat = errors.New("[Report] unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown, FormatHTML, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render writes result to w in the requested format.
func Render(w io.Writer, result *models.AnalysisResult, format Format) error {
	var err error
	switch format {
	case FormatText:
		err = writeText(w, result)
	case FormatMarkdown:
		_, err = io.WriteString(w, Markdown(result))
	case FormatHTML:
		_, err = w.Write(HTML(result))
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(result)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("[Report] render %s: %w", format, err)
	}
	return nil
}

// percent formats count/total with one decimal, "0%" for an empty total.
func percent(count, total int) string {
	if total == 0 {
		return "0%"
	}
	return humanize.FtoaWithDigits(float64(count)*100/float64(total), 1) + "%"
}

// singleLine folds comment text onto one line for lists and tables.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
