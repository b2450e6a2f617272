// Command newslens is the news artifact backend.
//
// Usage:
//
//	newslens -config newslens.yaml              # serve the API
//	newslens -crawl                             # crawl the portal, ingest, exit
//	newslens -articles article_data.json -press press_logo_set.json
//	                                            # ingest pre-scraped dumps, exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hcinews/newslens/artifact"
	"github.com/hcinews/newslens/config"
	"github.com/hcinews/newslens/dbopen"
	"github.com/hcinews/newslens/genai"
	"github.com/hcinews/newslens/ingest"
	"github.com/hcinews/newslens/observability"
	"github.com/hcinews/newslens/store"
	"github.com/hcinews/newslens/web"
)

func main() {
	configPath := flag.String("config", "", "path to newslens.yaml config file")
	crawl := flag.Bool("crawl", false, "crawl the portal, ingest and exit")
	articleDump := flag.String("articles", "", "ingest a pre-scraped article dump and exit")
	pressDump := flag.String("press", "", "press dump paired with -articles")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	// API keys live in .env in the deployment layout; absence is fine.
	_ = godotenv.Load()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *crawl, *articleDump, *pressDump); err != nil {
		logger.Error("newslens: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath string, crawl bool, articleDump, pressDump string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		cfg = loaded
	}
	if articleDump == "" {
		articleDump = cfg.Ingest.ArticleDump
	}
	if pressDump == "" {
		pressDump = cfg.Ingest.PressDump
	}

	db, err := dbopen.Open(cfg.DBPath,
		dbopen.WithMkdirAll(),
		dbopen.WithSchema(store.Schema),
		dbopen.WithSchema(observability.Schema))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	st := store.NewStore(db)

	if crawl {
		return crawlAndIngest(ctx, st, logger)
	}
	if articleDump != "" {
		return ingestDumps(ctx, st, articleDump, pressDump, logger)
	}

	gen := genai.NewGeneratorFromEnv()
	if gen == nil {
		return errors.New("no generator configured: set COHERE_API_KEY or API_KEY")
	}
	artifacts := artifact.NewService(st, gen, artifact.Config{
		Model:            cfg.Generator.Model,
		KeywordWindow:    cfg.Generator.KeywordWindow.Std(),
		VerifyHighlights: cfg.Generator.VerifyHighlights,
	}, logger)
	artifacts.SetEventLogger(observability.NewEventLogger(db, logger))

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           web.NewServer(st, artifacts, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("newslens: shutdown", "error", err)
		}
	}()

	logger.Info("newslens: serving", "addr", cfg.Listen, "db", cfg.DBPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// crawlAndIngest runs one live crawl of the ranking page and loads the
// results.
func crawlAndIngest(ctx context.Context, st *store.Store, logger *slog.Logger) error {
	browser, err := ingest.NewBrowser(logger)
	if err != nil {
		return fmt.Errorf("crawl: %w", err)
	}
	defer browser.Close()

	scraper := ingest.NewScraper(browser, logger)
	raws, presses, err := scraper.Crawl(ctx)
	if err != nil {
		return fmt.Errorf("crawl: %w", err)
	}
	n, err := ingest.Ingest(ctx, st, raws, presses, logger)
	if err != nil {
		return err
	}
	logger.Info("newslens: crawl complete", "articles", n)
	return nil
}

// ingestDumps loads pre-scraped JSON dumps instead of crawling.
func ingestDumps(ctx context.Context, st *store.Store, articlePath, pressPath string, logger *slog.Logger) error {
	raws, err := ingest.LoadArticles(articlePath)
	if err != nil {
		return err
	}
	var presses []ingest.PressRecord
	if pressPath != "" {
		presses, err = ingest.LoadPressRecords(pressPath)
		if err != nil {
			return err
		}
	}
	n, err := ingest.Ingest(ctx, st, raws, presses, logger)
	if err != nil {
		return err
	}
	logger.Info("newslens: dump ingested", "articles", n)
	return nil
}
