package sentiment

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/jonreiter/govader"
	"golang.org/x/text/unicode/norm"

	"github.com/spacesedan/commentlens/internal/models"
)

var (
	vaderAnalyzer *govader.SentimentIntensityAnalyzer
	vaderOnce     sync.Once
)

// getVaderAnalyzer builds the shared analyzer once. It is read-only afterwards.
func getVaderAnalyzer() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() {
		vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()
		added := injectLexicon(vaderAnalyzer.Lexicon, devanagariLexicon)
		slog.Debug("[Sentiment] VADER analyzer initialized",
			slog.Int("devanagari_entries", added))
	})
	return vaderAnalyzer
}

// injectLexicon copies non-ASCII entries into lexicon without overriding
// anything VADER already knows. Keys are stored in NFC.
func injectLexicon(lexicon map[string]float64, entries map[string]float64) int {
	added := 0
	for word, valence := range entries {
		if isASCIIOnly(word) {
			continue
		}
		key := norm.NFC.String(word)
		if _, exists := lexicon[key]; exists {
			continue
		}
		lexicon[key] = valence
		added++
	}
	return added
}

func isASCIIOnly(s string) bool {
	for i := range len(s) {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

// Analyzer computes a polarity in [-1, 1] for cleaned text. Any function
// with this shape can stand in for VADER.
type Analyzer interface {
	Polarity(text string) float64
}

// AnalyzerFunc adapts a plain function to Analyzer.
type AnalyzerFunc func(text string) float64

func (f AnalyzerFunc) Polarity(text string) float64 { return f(text) }

// VADERAnalyzer scores with VADER's compound score.
type VADERAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

func NewVADERAnalyzer() VADERAnalyzer {
	return VADERAnalyzer{sia: getVaderAnalyzer()}
}

func (v VADERAnalyzer) Polarity(text string) float64 {
	return v.sia.PolarityScores(text).Compound
}

// Score is the outcome of scoring one comment.
type Score struct {
	Polarity float64
	Label    models.SentimentLabel
}

// NeutralScore is substituted when the analyzer fails.
var NeutralScore = Score{Polarity: 0, Label: models.SentimentNeutral}

// ScoringError reports an analyzer failure on a single text.
type ScoringError struct {
	Text  string
	Cause error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("[Sentiment] scoring failed: %v", e.Cause)
}

func (e *ScoringError) Unwrap() error { return e.Cause }

type Scorer struct {
	analyzer Analyzer
}

func NewScorer(analyzer Analyzer) *Scorer {
	return &Scorer{analyzer: analyzer}
}

// NewVADERScorer returns a Scorer backed by the shared VADER analyzer.
func NewVADERScorer() *Scorer {
	return NewScorer(NewVADERAnalyzer())
}

// Score returns the polarity and label for cleaned text. The label is always
// models.LabelForPolarity of the returned polarity.
func (s *Scorer) Score(text string, lang models.Language) (Score, error) {
	switch lang {
	case models.LanguagePrimaryScript:
		// Lexicon keys are NFC; nukta letters arrive in either form.
		text = norm.NFC.String(text)
	case models.LanguageOther:
	}

	polarity, err := s.safePolarity(text)
	if err != nil {
		return Score{}, &ScoringError{Text: text, Cause: err}
	}

	polarity = math.Max(-1, math.Min(1, polarity))
	return Score{Polarity: polarity, Label: models.LabelForPolarity(polarity)}, nil
}

// ScoreOrNeutral never fails: on error it logs a warning and returns
// NeutralScore together with the error so the caller can surface it.
func (s *Scorer) ScoreOrNeutral(text string, lang models.Language) (Score, error) {
	score, err := s.Score(text, lang)
	if err != nil {
		slog.Warn("[Sentiment] Sentiment analysis failed, defaulting to neutral",
			slog.String("language", lang.String()),
			slog.String("error", err.Error()))
		return NeutralScore, err
	}
	return score, nil
}

func (s *Scorer) safePolarity(text string) (polarity float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analyzer panic: %v", r)
		}
	}()

	polarity = s.analyzer.Polarity(text)
	if math.IsNaN(polarity) {
		return 0, fmt.Errorf("analyzer returned NaN")
	}
	return polarity, nil
}
