package cleaning

import (
	"testing"

	"github.com/spacesedan/commentlens/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DefaultBucketExample(t *testing.T) {
	got := Normalize("Check this out http://x.co #great @user", models.LanguageOther)
	require.Equal(t, "check this out great ", got)
}

func TestNormalize_DefaultBucket(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation", "Wow!!! This is, like, AMAZING...", "wow this is like amazing"},
		{"www link", "see www.example.com/page?x=1 now", "see now"},
		{"https link", "https://youtu.be/abc?t=1 lol", " lol"},
		{"mention with digits", "@john_doe99 you rock", " you rock"},
		{"hash only", "#1 fan", "1 fan"},
		{"emoji", "love it ❤️🔥", "love it "},
		{"accents kept", "Café Crème", "café crème"},
		{"underscore kept", "snake_case", "snake_case"},
		{"newlines collapse", "first\n\nsecond\tthird", "first second third"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
		{"nbsp separates words", "good\u00a0video", "good video"},
		{"nbsp ends a link", "see http://x.co\u00a0great video", "see great video"},
		{"unicode spaces", "wide\u3000gap\u2009thin", "wide gap thin"},
		{"dotted capital i", "İstanbul", "istanbul"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Normalize(tt.in, models.LanguageOther))
		})
	}
}

func TestNormalize_PrimaryScriptBucket(t *testing.T) {
	got := Normalize("बहुत अच्छा वीडियो!! 👍 great https://x.co @fan", models.LanguagePrimaryScript)
	require.Equal(t, "बहुत अच्छा वीडियो ", got)

	got = Normalize("भाई, मज़ा आ गया।", models.LanguagePrimaryScript)
	require.Equal(t, "भाई मज़ा आ गया।", got)

	got = Normalize("अच्छा\u00a0वीडियो", models.LanguagePrimaryScript)
	require.Equal(t, "अच्छा वीडियो", got)

	got = Normalize("देखो https://x.co\u00a0शानदार", models.LanguagePrimaryScript)
	require.Equal(t, "देखो शानदार", got)
}

func TestNormalize_IdempotentDefaultBucket(t *testing.T) {
	inputs := []string{
		"Check this out http://x.co #great @user",
		"www.a.com www.b.com @@x ##y",
		"Hello, WORLD! Visit https://example.com/?q=1&r=2 — it's great :)",
		"@a@b#c http://x",
		"ΣΊΣΥΦΟΣ final sigma",
		"HT.TP://sneaky.link and W.W.W.example",
		"ht-tps://x y",
		"İstanbul",
		"good\u00a0video http://x.co\u00a0great",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in, models.LanguageOther)
		twice := Normalize(once, models.LanguageOther)
		require.Equal(t, once, twice, "input %q", in)
		require.NotContains(t, once, "http")
		require.NotContains(t, once, "@")
		require.NotContains(t, once, "#")
	}
}

func TestNormalize_IdempotentPrimaryScriptBucket(t *testing.T) {
	for _, in := range []string{"नमस्ते दोस्तों!!! @raj", "क ख   ग", "abc", "अच्छा\u00a0वीडियो\u2003!"} {
		once := Normalize(in, models.LanguagePrimaryScript)
		require.Equal(t, once, Normalize(once, models.LanguagePrimaryScript))
	}
}
