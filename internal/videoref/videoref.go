// Package videoref turns user input into a YouTube video ID.
package videoref

import (
	"errors"
	"regexp"
	"strings"
)

var ErrUnresolvableReference = errors.New("[VideoRef] invalid YouTube URL or video ID")

// Accepted URL shapes in priority order: watch page, embed, short link.
// The ID is the maximal run of characters that are not '&' or whitespace.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&\s]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^&\s]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^&\s]+)`),
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Resolve returns the video ID for input. When no URL shape matches, the
// trimmed input itself is taken as the ID.
func Resolve(input string) (string, error) {
	if id, ok := matchURL(input); ok {
		return id, nil
	}

	id := strings.TrimSpace(input)
	if id == "" {
		return "", ErrUnresolvableReference
	}
	return id, nil
}

func matchURL(input string) (string, bool) {
	for _, p := range referencePatterns {
		if m := p.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsLikelyVideoID reports whether id has the 11 character shape YouTube uses.
// It is advisory only; Resolve never rejects on shape.
func IsLikelyVideoID(id string) bool {
	return videoIDPattern.MatchString(id)
}
