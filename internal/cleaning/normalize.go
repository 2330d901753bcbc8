// Package cleaning prepares comment text for scoring.
package cleaning

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spacesedan/commentlens/internal/models"
)

var (
	// \s alone is ASCII-only; \p{Z} adds NBSP and the other Unicode spaces.
	urlPattern     = regexp.MustCompile(`http[^\s\p{Z}]+|www[^\s\p{Z}]+|https[^\s\p{Z}]+`)
	mentionPattern = regexp.MustCompile(`@[\p{L}\p{N}_]+|#`)

	// Keep the Devanagari block and whitespace only.
	primaryScriptFilter = regexp.MustCompile(`[^\x{0900}-\x{097F}\s\p{Z}]`)
	// Keep word characters and whitespace only.
	punctuationFilter = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}]`)

	whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)
)

// Normalize strips links, mentions and hashes, applies the bucket filter,
// lowercases and collapses whitespace. It never fails and may return "".
func Normalize(text string, lang models.Language) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = filterBucket(text, lang)

	// Casers carry state, so one per call.
	text = cases.Lower(language.Und).String(text)

	// Lowercasing can emit combining marks ("İ" -> "i" + U+0307) that the
	// filter drops, and filtering can assemble a new link token ("HT.TP://x").
	text = filterBucket(text, lang)
	text = urlPattern.ReplaceAllString(text, "")

	return whitespaceRun.ReplaceAllString(text, " ")
}

func filterBucket(text string, lang models.Language) string {
	switch lang {
	case models.LanguagePrimaryScript:
		return primaryScriptFilter.ReplaceAllString(text, "")
	case models.LanguageOther:
		return punctuationFilter.ReplaceAllString(text, "")
	}
	return text
}
