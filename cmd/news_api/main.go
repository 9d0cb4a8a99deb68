// Package main News Intel API: a stateless proxy over a search provider and
// a generation provider that curates topic feeds into a Korean newsletter
// digest.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/daye-lim/news-intel/internal/curation"
	"github.com/daye-lim/news-intel/internal/digest"
	"github.com/daye-lim/news-intel/internal/extract"
	"github.com/daye-lim/news-intel/internal/router"
	"github.com/daye-lim/news-intel/internal/search"
	"github.com/daye-lim/news-intel/internal/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	s := server.NewServer(echo.New(), cfg)

	topics := curation.NewTopicStore(cfg.DataDir)
	sources := curation.NewSourceStore(cfg.DataDir)
	insights := curation.NewInsightStore()

	// Missing credentials are not errors: search degrades to the demo
	// catalog, extraction to the local scraper, generation to the local
	// Markdown digest.
	var searcher search.Searcher
	var apiExtractor extract.Extractor
	var enrichExtractor extract.Extractor

	if cfg.TavilyAPIKey != "" {
		tavilySearch, err := search.NewTavilyClient(cfg.TavilyAPIKey)
		if err != nil {
			slog.Error("Failed to create search client", "error", err)
			os.Exit(1)
		}
		searcher = tavilySearch

		tavilyExtract, err := extract.NewTavilyClient(cfg.TavilyAPIKey)
		if err != nil {
			slog.Error("Failed to create extract client", "error", err)
			os.Exit(1)
		}
		apiExtractor = tavilyExtract
		enrichExtractor = tavilyExtract
	} else {
		slog.Info("TAVILY_API_KEY not set, serving demo results and scraping locally")
		enrichExtractor = extract.NewScraper()
	}

	var generator digest.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := digest.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			slog.Error("Failed to create Gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		generator = gemini
	} else {
		slog.Info("GEMINI_API_KEY not set, newsletters use the local fallback")
	}

	aggregator := search.NewAggregator(searcher)
	digestSvc := digest.NewService(enrichExtractor, generator)

	router.NewNewsRouter(s.Echo, aggregator, topics, sources).Bind()
	router.NewExtractRouter(s.Echo, apiExtractor).Bind()
	router.NewDigestRouter(s.Echo, digestSvc).Bind()
	router.NewCurationRouter(s.Echo, topics, sources, insights).Bind()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Intel API is running")
	})

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
