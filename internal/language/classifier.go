// Package language assigns comments to a language bucket by script composition.
package language

import (
	"github.com/spacesedan/commentlens/internal/models"
)

// Devanagari block bounds, inclusive.
const (
	PrimaryScriptFirst = '\u0900'
	PrimaryScriptLast  = '\u097F'
)

const DEFAULT_SCRIPT_RATIO_THRESHOLD = 0.3

// Classifier buckets text as PrimaryScript when the share of Devanagari runes
// strictly exceeds Threshold.
type Classifier struct {
	Threshold float64
}

func NewClassifier(threshold float64) Classifier {
	return Classifier{Threshold: threshold}
}

// InPrimaryScript reports whether r falls in the Devanagari block.
func InPrimaryScript(r rune) bool {
	return r >= PrimaryScriptFirst && r <= PrimaryScriptLast
}

// Classify never fails. Empty text is LanguageOther.
func (c Classifier) Classify(text string) models.Language {
	total, inScript := 0, 0
	for _, r := range text {
		total++
		if InPrimaryScript(r) {
			inScript++
		}
	}

	if total == 0 || inScript == 0 {
		return models.LanguageOther
	}
	if float64(inScript)/float64(total) > c.Threshold {
		return models.LanguagePrimaryScript
	}
	return models.LanguageOther
}
