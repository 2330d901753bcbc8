package clients

import "time"

const (
	YOUTUBE_API_BASE_URL    = "https://www.googleapis.com/youtube/v3"
	YOUTUBE_MAX_PAGE_SIZE   = 100
	DEFAULT_REQUEST_TIMEOUT = 15 * time.Second
	USER_AGENT              = "commentlens-client/1.0 (+https://github.com/spacesedan/commentlens)"

	// pacing between page requests of one client; bursts are not allowed
	YOUTUBE_REQUESTS_PER_SECOND = 10
)
