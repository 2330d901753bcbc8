package models

import "time"

// CommentThreadListResponse mirrors the commentThreads.list response of the
// YouTube Data API v3. Only the fields we read are declared.
type CommentThreadListResponse struct {
	Items         []CommentThread `json:"items"`
	NextPageToken string          `json:"nextPageToken,omitempty"`
	PageInfo      struct {
		TotalResults   int `json:"totalResults"`
		ResultsPerPage int `json:"resultsPerPage"`
	} `json:"pageInfo"`
}

type CommentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		VideoID         string          `json:"videoId"`
		TopLevelComment TopLevelComment `json:"topLevelComment"`
		TotalReplyCount int             `json:"totalReplyCount"`
	} `json:"snippet"`
}

type TopLevelComment struct {
	ID      string `json:"id"`
	Snippet struct {
		TextDisplay       string    `json:"textDisplay"`
		TextOriginal      string    `json:"textOriginal"`
		AuthorDisplayName string    `json:"authorDisplayName"`
		LikeCount         int64     `json:"likeCount"`
		PublishedAt       time.Time `json:"publishedAt"`
	} `json:"snippet"`
}

// YouTubeErrorResponse is the error envelope returned with non-2xx statuses.
type YouTubeErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason  string `json:"reason"`
			Domain  string `json:"domain"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"error"`
}

// Reason returns the first machine-readable reason, if any.
func (r YouTubeErrorResponse) Reason() string {
	if len(r.Error.Errors) == 0 {
		return ""
	}
	return r.Error.Errors[0].Reason
}

// ToComment flattens a thread into the pipeline's Comment record.
func (t CommentThread) ToComment() Comment {
	s := t.Snippet.TopLevelComment.Snippet
	return Comment{
		ID:          t.Snippet.TopLevelComment.ID,
		Author:      s.AuthorDisplayName,
		Text:        s.TextDisplay,
		LikeCount:   s.LikeCount,
		PublishedAt: s.PublishedAt,
	}
}
