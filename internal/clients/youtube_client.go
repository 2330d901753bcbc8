package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/models"
)

var (
	ErrBadRequest       = errors.New("[YouTubeClient] bad request")
	ErrUnauthorized     = errors.New("[YouTubeClient] invalid API key")
	ErrForbidden        = errors.New("[YouTubeClient] access forbidden")
	ErrQuotaExceeded    = errors.New("[YouTubeClient] quota exceeded")
	ErrCommentsDisabled = errors.New("[YouTubeClient] comments are disabled for this video")
	ErrVideoNotFound    = errors.New("[YouTubeClient] video not found")
	ErrUpstream         = errors.New("[YouTubeClient] upstream error")
)

// PageRequest asks for one page of top-level comments.
type PageRequest struct {
	VideoID   string
	PageSize  int
	PageToken string
}

// CommentPage is one page of comments plus the cursor for the next one.
// An empty NextPageToken means there is no more data.
type CommentPage struct {
	Comments      []models.Comment
	NextPageToken string
}

// YouTubeClient calls commentThreads.list with a static API key. It holds no
// state between calls and never retries.
type YouTubeClient struct {
	Client  *http.Client
	APIKey  string
	BaseURL string
	// Limiter paces page requests; nil disables pacing.
	Limiter *rate.Limiter
}

func NewYouTubeClient(apiKey, baseURL string, timeout time.Duration) *YouTubeClient {
	if baseURL == "" {
		baseURL = YOUTUBE_API_BASE_URL
	}
	if timeout <= 0 {
		timeout = DEFAULT_REQUEST_TIMEOUT
	}
	return &YouTubeClient{
		Client:  &http.Client{Timeout: timeout},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Limiter: rate.NewLimiter(rate.Limit(YOUTUBE_REQUESTS_PER_SECOND), 1),
	}
}

// NewYouTubeClientFromConfig builds a client owned by a single pipeline run.
func NewYouTubeClientFromConfig(cfg *config.Config) *YouTubeClient {
	return NewYouTubeClient(cfg.YouTubeAPIKey, cfg.YouTubeBaseURL, cfg.RequestTimeout)
}

func (y *YouTubeClient) FetchCommentPage(ctx context.Context, pr PageRequest) (*CommentPage, error) {
	if y.APIKey == "" {
		slog.Error("[YouTubeClient] API key is missing")
		return nil, config.ErrMissingCredential
	}

	pageSize := pr.PageSize
	if pageSize <= 0 || pageSize > YOUTUBE_MAX_PAGE_SIZE {
		pageSize = YOUTUBE_MAX_PAGE_SIZE
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", pr.VideoID)
	params.Set("maxResults", strconv.Itoa(pageSize))
	params.Set("textFormat", "plainText")
	params.Set("key", y.APIKey)
	if pr.PageToken != "" {
		params.Set("pageToken", pr.PageToken)
	}

	if y.Limiter != nil {
		if err := y.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("[YouTubeClient] waiting for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.BaseURL+"/commentThreads?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("[YouTubeClient] failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	slog.Debug("[YouTubeClient] Fetching comment page",
		slog.String("video_id", pr.VideoID),
		slog.Int("page_size", pageSize),
		slog.Bool("has_page_token", pr.PageToken != ""))

	res, err := y.Client.Do(req)
	if err != nil {
		slog.Error("[YouTubeClient] Request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("[YouTubeClient] request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		slog.Error("[YouTubeClient] Failed to read response body", slog.String("error", err.Error()))
		return nil, fmt.Errorf("[YouTubeClient] failed to read response body: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, statusError(res.StatusCode, body)
	}

	var response models.CommentThreadListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		slog.Error("[YouTubeClient] Failed to parse JSON response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("[YouTubeClient] failed to parse response: %w", err)
	}

	page := &CommentPage{
		Comments:      make([]models.Comment, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		page.Comments = append(page.Comments, item.ToComment())
	}
	return page, nil
}

// statusError maps a non-200 response onto one of the sentinel errors.
func statusError(status int, body []byte) error {
	var apiErr models.YouTubeErrorResponse
	_ = json.Unmarshal(body, &apiErr)
	reason := apiErr.Reason()
	message := apiErr.Error.Message
	if message == "" {
		message = http.StatusText(status)
	}

	var sentinel error
	switch status {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		switch reason {
		case "quotaExceeded", "dailyLimitExceeded", "rateLimitExceeded", "userRateLimitExceeded":
			sentinel = ErrQuotaExceeded
		case "commentsDisabled":
			sentinel = ErrCommentsDisabled
		default:
			sentinel = ErrForbidden
		}
	case http.StatusNotFound:
		sentinel = ErrVideoNotFound
	case http.StatusTooManyRequests:
		sentinel = ErrQuotaExceeded
	default:
		sentinel = ErrUpstream
	}

	slog.Warn("[YouTubeClient] Unexpected response",
		slog.Int("status_code", status),
		slog.String("reason", reason),
		slog.String("message", message))

	return fmt.Errorf("%w: status %d: %s", sentinel, status, message)
}
