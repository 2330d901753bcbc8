package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/models"
)

const VALKEY_COMMENTS_KEY_PREFIX = "commentlens:comments"

// ValkeyCommentCache keeps complete fetch results for a short TTL so repeated
// analyses of the same video do not spend API quota.
type ValkeyCommentCache struct {
	Client valkey.Client
	TTL    time.Duration
}

func NewValkeyCommentCache(ctx context.Context, cfg config.CacheConfig) (*ValkeyCommentCache, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err)
	}

	vc := &ValkeyCommentCache{Client: client, TTL: cfg.TTL}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := vc.Ping(pingCtx); err != nil {
		client.Close()
		return nil, err
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey",
		slog.String("address", cfg.Address),
		slog.Duration("ttl", cfg.TTL))

	return vc, nil
}

// Ping checks that the server answers.
func (vc *ValkeyCommentCache) Ping(ctx context.Context) error {
	if err := vc.Client.Do(ctx, vc.Client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return nil
}

func (vc *ValkeyCommentCache) Close() {
	if vc != nil && vc.Client != nil {
		vc.Client.Close()
	}
}

// commentsKey scopes entries by the fetch bound so a cached 300-comment run is
// never served for a 500-comment request.
func commentsKey(videoID string, maxComments int) string {
	return fmt.Sprintf("%s:%s:%d", VALKEY_COMMENTS_KEY_PREFIX, videoID, maxComments)
}

// GetComments returns the cached comments and true on a hit. Misses and
// cache errors both report false.
func (vc *ValkeyCommentCache) GetComments(ctx context.Context, videoID string, maxComments int) ([]models.Comment, bool) {
	key := commentsKey(videoID, maxComments)
	raw, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[ValkeyClient] Get failed",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return nil, false
	}

	var comments []models.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		slog.Warn("[ValkeyClient] Dropping undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	return comments, true
}

// PutComments stores a complete fetch result with the configured TTL.
func (vc *ValkeyCommentCache) PutComments(ctx context.Context, videoID string, maxComments int, comments []models.Comment) error {
	key := commentsKey(videoID, maxComments)
	payload, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("[ValkeyClient] failed to encode comments: %w", err)
	}

	completed := []valkey.Completed{
		vc.Client.B().Set().Key(key).Value(string(payload)).Build(),
		vc.Client.B().Expire().Key(key).Seconds(max(int64(vc.TTL/time.Second), 1)).Build(),
	}

	for _, res := range vc.Client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("[ValkeyClient] failed to store comments: %w", err)
		}
	}

	slog.Debug("[ValkeyClient] Cached comments",
		slog.String("key", key),
		slog.Int("count", len(comments)))
	return nil
}
