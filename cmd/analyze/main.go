package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/clients"
	"github.com/spacesedan/commentlens/internal/language"
	"github.com/spacesedan/commentlens/internal/logging"
	"github.com/spacesedan/commentlens/internal/processing"
	"github.com/spacesedan/commentlens/internal/report"
	"github.com/spacesedan/commentlens/internal/videoref"
)

const (
	EXIT_OK           = 0
	EXIT_FAILURE      = 1
	EXIT_INVALID_ARGS = 2
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one analysis and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: analyze [flags] <youtube-url-or-video-id>\n\n")
		flags.PrintDefaults()
	}
	flags.Int("max", processing.DEFAULT_MAX_COMMENTS, "maximum number of comments to fetch (1-1000)")
	flags.Int("top-k", processing.DEFAULT_TOP_K, "number of top positive/negative comments to show")
	flags.Float64("threshold", language.DEFAULT_SCRIPT_RATIO_THRESHOLD, "Devanagari ratio above which a comment is Hindi/Marathi")
	formatFlag := flags.StringP("format", "f", string(report.FormatText), "output format: text, markdown, html, json")
	outputFlag := flags.StringP("output", "o", "", "write the report to a file instead of stdout")

	if err := flags.Parse(args); err != nil {
		return EXIT_INVALID_ARGS
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return EXIT_INVALID_ARGS
	}

	// flags override the environment when set
	_ = viper.BindPFlag("MAX_COMMENTS", flags.Lookup("max"))
	_ = viper.BindPFlag("TOP_K", flags.Lookup("top-k"))
	_ = viper.BindPFlag("SCRIPT_RATIO_THRESHOLD", flags.Lookup("threshold"))

	format, err := report.ParseFormat(*formatFlag)
	if err != nil {
		slog.Error("[Main] Invalid output format", slog.String("error", err.Error()))
		return EXIT_INVALID_ARGS
	}

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			slog.Error("[Main] YOUTUBE_API_KEY must be set before running an analysis")
		} else {
			slog.Error("[Main] Failed to load config", slog.String("error", err.Error()))
		}
		return EXIT_FAILURE
	}

	var cache processing.CommentCache
	if cfg.Cache.Enabled() {
		vc, err := clients.NewValkeyCommentCache(ctx, cfg.Cache)
		if err != nil {
			slog.Warn("[Main] Comment cache unavailable, continuing without it",
				slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			cache = vc
		}
	}

	result, err := processing.NewPipelineFromConfig(cfg, cache).Run(ctx, flags.Arg(0))
	if err != nil {
		if errors.Is(err, videoref.ErrUnresolvableReference) {
			fmt.Fprintln(stderr, "Invalid YouTube URL or video ID")
			return EXIT_INVALID_ARGS
		}
		slog.Error("[Main] Analysis failed", slog.String("error", err.Error()))
		return EXIT_FAILURE
	}

	out := stdout
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			slog.Error("[Main] Failed to create output file",
				slog.String("file", *outputFlag),
				slog.String("error", err.Error()))
			return EXIT_FAILURE
		}
		defer f.Close()
		out = f
	}

	if err := report.Render(out, result, format); err != nil {
		slog.Error("[Main] Failed to write report", slog.String("error", err.Error()))
		return EXIT_FAILURE
	}
	return EXIT_OK
}
