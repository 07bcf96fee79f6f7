// Package server wires the HTTP API: the chat resolution endpoint plus the
// quick-link services backing the portal's interactive widgets.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nyaya-ai/nyaya/config"
	"github.com/nyaya-ai/nyaya/internal/augment"
	"github.com/nyaya-ai/nyaya/internal/cache"
	"github.com/nyaya-ai/nyaya/internal/knowledge"
	"github.com/nyaya-ai/nyaya/internal/resolver"
	"github.com/nyaya-ai/nyaya/internal/telelaw"
	"github.com/nyaya-ai/nyaya/internal/telemetry"
	"github.com/nyaya-ai/nyaya/provider"
)

const version = "2.0.0"

// Run builds the full pipeline from configuration and serves until the
// listener fails.
func Run(cfg *config.Config) error {
	e := newEcho()

	ctx := context.Background()

	store, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("cache init: %w", err)
	}

	prov, err := provider.NewProvider(provider.Ollama, cfg.Ollama)
	if err != nil {
		return err
	}

	tele := telemetry.New(prometheus.DefaultRegisterer)

	corpus, err := knowledge.LoadCorpus(cfg.Knowledge.CorpusPath)
	if err != nil {
		return fmt.Errorf("loading knowledge corpus: %w", err)
	}
	index, err := knowledge.NewIndex(prov, cfg.Knowledge.ScoreThreshold, nil)
	if err != nil {
		return fmt.Errorf("building knowledge index: %w", err)
	}
	if err := index.Upsert(ctx, corpus.Documents()); err != nil {
		return fmt.Errorf("indexing knowledge corpus: %w", err)
	}
	log.Printf("indexed %d knowledge documents", index.Len())

	fetcher := augment.NewHTTPFetcher(cfg.Scrape.Timeout, cfg.Scrape.MaxItems)
	augmenter := augment.New(store, fetcher, tele, nil)

	res := resolver.New(index, augmenter, prov, cfg.Knowledge.TopK, tele, nil)

	h := &Handler{
		Resolver: res,
		Roster:   telelaw.NewRoster(),
		Probe:    prov.IsAvailable,
	}
	h.Register(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Printf("listening on %s", cfg.Server.Address)
	return e.Start(cfg.Server.Address)
}

// newEcho builds the echo instance with recovery, CORS and a unified JSON
// error handler.
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	baseLogger := log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		baseLogger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Cookie"},
		AllowCredentials: true,
	}))
	return e
}
