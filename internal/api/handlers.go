package api

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"

	"github.com/spacesedan/commentlens/internal/report"
	"github.com/spacesedan/commentlens/internal/videoref"
)

// HandleHealth always answers 200 because the cache is optional; a down
// cache is reported as "unavailable".
func HandleHealth(cacheHealth func() *atomic.Bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		cache := "disabled"
		if h := cacheHealth(); h != nil {
			cache = "unavailable"
			if h.Load() {
				cache = "ok"
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "cache": cache})
	}
}

// HandleAnalysis runs one analysis for ?video=. The optional ?format= picks
// json (default), text, markdown or html.
func HandleAnalysis(newPipeline PipelineFactory) echo.HandlerFunc {
	return func(c echo.Context) error {
		reference := c.QueryParam("video")
		if strings.TrimSpace(reference) == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing video query parameter")
		}

		format := report.FormatJSON
		if raw := c.QueryParam("format"); raw != "" {
			f, err := report.ParseFormat(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			format = f
		}

		result, err := newPipeline().Run(c.Request().Context(), reference)
		if err != nil {
			if errors.Is(err, videoref.ErrUnresolvableReference) {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid YouTube URL or video ID")
			}
			slog.Error("[API] Analysis failed",
				slog.String("reference", reference),
				slog.String("error", err.Error()))
			return echo.NewHTTPError(http.StatusInternalServerError, "analysis failed")
		}

		switch format {
		case report.FormatJSON:
			return c.JSON(http.StatusOK, result)
		case report.FormatHTML:
			return c.HTMLBlob(http.StatusOK, report.HTML(result))
		case report.FormatMarkdown:
			return c.Blob(http.StatusOK, "text/markdown; charset=UTF-8", []byte(report.Markdown(result)))
		case report.FormatText:
			var buf bytes.Buffer
			if err := report.Render(&buf, result, report.FormatText); err != nil {
				return err
			}
			return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, buf.Bytes())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported format")
		}
	}
}
