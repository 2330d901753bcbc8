package models

import "time"

// Comment is a top-level comment as returned by the comment source.
// Text is kept verbatim; cleaning happens downstream.
type Comment struct {
	ID          string    `json:"id,omitempty"`
	Author      string    `json:"author,omitempty"`
	Text        string    `json:"text"`
	LikeCount   int64     `json:"like_count,omitempty"`
	PublishedAt time.Time `json:"published_at,omitzero"`
}

// AnalyzedComment is derived once per Comment and never mutated afterwards.
type AnalyzedComment struct {
	// Index is the zero-based position of the comment in fetch order.
	Index        int            `json:"index"`
	OriginalText string         `json:"original_text"`
	Language     Language       `json:"language"`
	CleanedText  string         `json:"cleaned_text"`
	Sentiment    SentimentLabel `json:"sentiment"`
	Polarity     float64        `json:"polarity"`
}

// CommentRow is one line of the per-comment table.
type CommentRow struct {
	Comment   string `json:"comment"`
	Language  string `json:"language"`
	Sentiment string `json:"sentiment"`
}
