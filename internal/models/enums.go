package models

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is the bucket a comment is classified into. It is a closed set:
// every switch over it must handle both variants.
type Language int

const (
	LanguageOther Language = iota
	LanguagePrimaryScript
)

// Languages lists every bucket in display order.
var Languages = []Language{LanguagePrimaryScript, LanguageOther}

func (l Language) String() string {
	switch l {
	case LanguagePrimaryScript:
		return "Hindi/Marathi"
	case LanguageOther:
		return "English"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// Tag returns the BCP 47 tag used when rendering the bucket.
func (l Language) Tag() language.Tag {
	switch l {
	case LanguagePrimaryScript:
		return language.Hindi
	case LanguageOther:
		return language.English
	default:
		return language.Und
	}
}

func (l Language) MarshalText() ([]byte, error) {
	switch l {
	case LanguagePrimaryScript, LanguageOther:
		return []byte(l.String()), nil
	default:
		return nil, fmt.Errorf("[Models] unknown language %d", int(l))
	}
}

func (l *Language) UnmarshalText(b []byte) error {
	switch string(b) {
	case LanguagePrimaryScript.String():
		*l = LanguagePrimaryScript
	case LanguageOther.String():
		*l = LanguageOther
	default:
		return fmt.Errorf("[Models] unknown language %q", string(b))
	}
	return nil
}

// SentimentLabel is the three-way categorical sentiment.
type SentimentLabel int

const (
	SentimentNeutral SentimentLabel = iota
	SentimentPositive
	SentimentNegative
)

// SentimentLabels lists every label in display order.
var SentimentLabels = []SentimentLabel{SentimentPositive, SentimentNegative, SentimentNeutral}

func (s SentimentLabel) String() string {
	switch s {
	case SentimentPositive:
		return "Positive"
	case SentimentNegative:
		return "Negative"
	case SentimentNeutral:
		return "Neutral"
	default:
		return fmt.Sprintf("SentimentLabel(%d)", int(s))
	}
}

func (s SentimentLabel) MarshalText() ([]byte, error) {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("[Models] unknown sentiment label %d", int(s))
	}
}

func (s *SentimentLabel) UnmarshalText(b []byte) error {
	for _, label := range SentimentLabels {
		if label.String() == string(b) {
			*s = label
			return nil
		}
	}
	return fmt.Errorf("[Models] unknown sentiment label %q", string(b))
}

// LabelForPolarity is the only mapping from polarity to label:
// strictly positive is Positive, strictly negative is Negative, zero is Neutral.
func LabelForPolarity(polarity float64) SentimentLabel {
	switch {
	case polarity > 0:
		return SentimentPositive
	case polarity < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
