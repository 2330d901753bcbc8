package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/models"
)

const youtubePage = `{
  "items": [
    {"id": "t1", "snippet": {"topLevelComment": {"id": "c1", "snippet": {"textDisplay": "I love this, great video"}}}},
    {"id": "t2", "snippet": {"topLevelComment": {"id": "c2", "snippet": {"textDisplay": "बहुत अच्छा गाना"}}}}
  ]
}`

func fakeYouTube(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T, status int, body string) *Server {
	t.Helper()
	yt := fakeYouTube(t, status, body)
	cfg := &config.Config{
		YouTubeAPIKey:        "test-key",
		YouTubeBaseURL:       yt.URL,
		RequestTimeout:       5 * time.Second,
		MaxComments:          300,
		PageSize:             100,
		ScriptRatioThreshold: 0.3,
		TopK:                 5,
	}
	return NewServer(cfg, nil)
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func analysisURL(video string, extra url.Values) string {
	q := url.Values{}
	for k, v := range extra {
		q[k] = v
	}
	q.Set("video", video)
	return "/api/v1/analysis?" + q.Encode()
}

func TestHealthz(t *testing.T) {
	s := testServer(t, http.StatusOK, youtubePage)

	rec := get(s, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok","cache":"disabled"}`, rec.Body.String())

	var healthy atomic.Bool
	s.WithCacheHealth(&healthy)
	require.JSONEq(t, `{"status":"ok","cache":"unavailable"}`, get(s, "/healthz").Body.String())

	healthy.Store(true)
	require.JSONEq(t, `{"status":"ok","cache":"ok"}`, get(s, "/healthz").Body.String())
}

func TestAnalysis_MissingVideo(t *testing.T) {
	s := testServer(t, http.StatusOK, youtubePage)

	require.Equal(t, http.StatusBadRequest, get(s, "/api/v1/analysis").Code)
	require.Equal(t, http.StatusBadRequest, get(s, analysisURL("   ", nil)).Code)
}

func TestAnalysis_UnknownFormat(t *testing.T) {
	rec := get(testServer(t, http.StatusOK, youtubePage), analysisURL("abc123", url.Values{"format": {"yaml"}}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysis_JSON(t *testing.T) {
	rec := get(testServer(t, http.StatusOK, youtubePage), analysisURL("https://youtu.be/abc123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, "abc123", result.VideoID)
	require.Len(t, result.Comments, 2)
	require.Equal(t, models.LanguageOther, result.Comments[0].Language)
	require.Equal(t, models.LanguagePrimaryScript, result.Comments[1].Language)
	require.Equal(t, models.SentimentPositive, result.Comments[0].Sentiment)
	require.Equal(t, 2, result.LanguageHistogram.Total())
	require.Empty(t, result.Notices)
}

func TestAnalysis_FetchFailureIsReportedNotFatal(t *testing.T) {
	body := `{"error": {"code": 403, "message": "disabled", "errors": [{"reason": "commentsDisabled"}]}}`
	rec := get(testServer(t, http.StatusForbidden, body), analysisURL("abc123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.True(t, result.Empty())
	require.True(t, result.HasNotice(models.NoticeFetchFailure))
	require.True(t, result.HasNotice(models.NoticeNoComments))
}

func TestAnalysis_RenderedFormats(t *testing.T) {
	s := testServer(t, http.StatusOK, youtubePage)

	rec := get(s, analysisURL("abc123", url.Values{"format": {"html"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "<h1>")

	rec = get(s, analysisURL("abc123", url.Values{"format": {"markdown"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "## Sentiment distribution")

	rec = get(s, analysisURL("abc123", url.Values{"format": {"text"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Comment analysis for abc123")
}

func TestAnalysis_ConcurrentRequests(t *testing.T) {
	s := testServer(t, http.StatusOK, youtubePage)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := get(s, analysisURL("abc123", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()
}
