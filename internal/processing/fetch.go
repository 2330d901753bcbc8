package processing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/commentlens/internal/clients"
	"github.com/spacesedan/commentlens/internal/models"
)

const (
	DEFAULT_MAX_COMMENTS = 300
	MAX_PAGE_SIZE        = clients.YOUTUBE_MAX_PAGE_SIZE
)

// CommentSource serves one page of comments per call.
type CommentSource interface {
	FetchCommentPage(ctx context.Context, req clients.PageRequest) (*clients.CommentPage, error)
}

// CommentCache stores complete fetch results. Implementations must be safe
// for concurrent use.
type CommentCache interface {
	GetComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, bool)
	PutComments(ctx context.Context, videoID string, maxComments int, comments []models.Comment) error
}

// FetchError is returned when pagination aborts. Pages retrieved before the
// failure are discarded.
type FetchError struct {
	VideoID string
	Pages   int
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("[Fetcher] error fetching comments for %s after %d page(s): %v", e.VideoID, e.Pages, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher pages through comments until MaxComments is reached or the source
// runs out. It owns its source for the duration of one run.
type Fetcher struct {
	Source      CommentSource
	Cache       CommentCache
	MaxComments int
	PageSize    int
}

func NewFetcher(source CommentSource, maxComments, pageSize int) *Fetcher {
	if maxComments <= 0 {
		maxComments = DEFAULT_MAX_COMMENTS
	}
	if pageSize <= 0 || pageSize > MAX_PAGE_SIZE {
		pageSize = MAX_PAGE_SIZE
	}
	return &Fetcher{
		Source:      source,
		MaxComments: maxComments,
		PageSize:    pageSize,
	}
}

// WithCache enables the optional result cache.
func (f *Fetcher) WithCache(cache CommentCache) *Fetcher {
	f.Cache = cache
	return f
}

// FetchComments returns at most MaxComments comments in fetch order, or nil
// and a *FetchError. It never retries.
func (f *Fetcher) FetchComments(ctx context.Context, videoID string) ([]models.Comment, error) {
	if f.Cache != nil {
		if cached, ok := f.Cache.GetComments(ctx, videoID, f.MaxComments); ok {
			slog.Info("[Fetcher] Serving comments from cache",
				slog.String("video_id", videoID),
				slog.Int("count", len(cached)))
			return cached, nil
		}
	}

	start := time.Now()
	comments := make([]models.Comment, 0, min(f.MaxComments, f.PageSize))
	pageToken := ""
	pages := 0

	for len(comments) < f.MaxComments {
		remaining := f.MaxComments - len(comments)
		page, err := f.Source.FetchCommentPage(ctx, clients.PageRequest{
			VideoID:   videoID,
			PageSize:  min(f.PageSize, remaining),
			PageToken: pageToken,
		})
		if err != nil {
			slog.Warn("[Fetcher] Failed to fetch comment page, discarding partial results",
				slog.String("video_id", videoID),
				slog.Int("pages", pages),
				slog.Int("discarded", len(comments)),
				slog.String("error", err.Error()))
			return nil, &FetchError{VideoID: videoID, Pages: pages, Err: err}
		}
		pages++

		items := page.Comments
		if len(items) > remaining {
			items = items[:remaining]
		}
		comments = append(comments, items...)

		// stop paginating when there are no more results
		if page.NextPageToken == "" {
			break
		}
		if len(page.Comments) == 0 && page.NextPageToken == pageToken {
			slog.Warn("[Fetcher] Source returned an empty page with an unchanged cursor, stopping",
				slog.String("video_id", videoID))
			break
		}
		pageToken = page.NextPageToken
	}

	slog.Info("[Fetcher] Fetched comments",
		slog.String("video_id", videoID),
		slog.Int("count", len(comments)),
		slog.Int("pages", pages),
		slog.Duration("duration", time.Since(start)))

	if f.Cache != nil {
		if err := f.Cache.PutComments(ctx, videoID, f.MaxComments, comments); err != nil {
			slog.Warn("[Fetcher] Failed to cache comments",
				slog.String("video_id", videoID),
				slog.String("error", err.Error()))
		}
	}

	return comments, nil
}
