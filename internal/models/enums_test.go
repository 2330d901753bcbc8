package models

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelForPolarity_MatchesSign(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10_000; i++ {
		p := rng.Float64()*2 - 1
		got := LabelForPolarity(p)
		switch {
		case p > 0:
			require.Equal(t, SentimentPositive, got, "polarity %v", p)
		case p < 0:
			require.Equal(t, SentimentNegative, got, "polarity %v", p)
		default:
			require.Equal(t, SentimentNeutral, got, "polarity %v", p)
		}
	}
}

func TestLabelForPolarity_Boundaries(t *testing.T) {
	require.Equal(t, SentimentNeutral, LabelForPolarity(0))
	require.Equal(t, SentimentNeutral, LabelForPolarity(math.Copysign(0, -1)))
	require.Equal(t, SentimentPositive, LabelForPolarity(math.SmallestNonzeroFloat64))
	require.Equal(t, SentimentNegative, LabelForPolarity(-math.SmallestNonzeroFloat64))
	require.Equal(t, SentimentPositive, LabelForPolarity(1))
	require.Equal(t, SentimentNegative, LabelForPolarity(-1))
}

func TestAnalyzedComment_JSONUsesDisplayNames(t *testing.T) {
	c := AnalyzedComment{
		Index:        3,
		OriginalText: "बहुत अच्छा",
		Language:     LanguagePrimaryScript,
		CleanedText:  "बहुत अच्छा",
		Sentiment:    SentimentPositive,
		Polarity:     0.5,
	}
	b, err := json.Marshal(c)
	require.NoError(t, err)
	require.Contains(t, string(b), `"language":"Hindi/Marathi"`)
	require.Contains(t, string(b), `"sentiment":"Positive"`)

	var back AnalyzedComment
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, c, back)
}

func TestLanguage_UnknownValueFailsToMarshal(t *testing.T) {
	_, err := Language(7).MarshalText()
	require.Error(t, err)

	var l Language
	require.Error(t, l.UnmarshalText([]byte("Klingon")))
}

func TestLanguage_Tag(t *testing.T) {
	require.Equal(t, "hi", LanguagePrimaryScript.Tag().String())
	require.Equal(t, "en", LanguageOther.Tag().String())
}

func TestAnalysisResult_Rows(t *testing.T) {
	r := &AnalysisResult{Comments: []AnalyzedComment{
		{OriginalText: "great video", Language: LanguageOther, Sentiment: SentimentPositive},
		{OriginalText: "बेकार", Language: LanguagePrimaryScript, Sentiment: SentimentNegative},
	}}

	require.Equal(t, []CommentRow{
		{Comment: "great video", Language: "English", Sentiment: "Positive"},
		{Comment: "बेकार", Language: "Hindi/Marathi", Sentiment: "Negative"},
	}, r.Rows())
	require.False(t, r.Empty())
}

func TestHistogram_TotalAndCount(t *testing.T) {
	h := Histogram{{Label: "Positive", Count: 2}, {Label: "Negative", Count: 0}, {Label: "Neutral", Count: 5}}
	require.Equal(t, 7, h.Total())
	require.Equal(t, 5, h.Count("Neutral"))
	require.Equal(t, 0, h.Count("Missing"))
}
