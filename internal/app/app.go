package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gecf-kip/insight/internal/config"
	"github.com/gecf-kip/insight/internal/core/insight_engine"
	"github.com/gecf-kip/insight/internal/core/llm"
)

type App struct {
	LLM      *llm.GeminiLLM
	Pipeline *insight_engine.Pipeline
	Server   *Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	llmProvider, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel)
	if err != nil {
		return nil, fmt.Errorf("couldn't initialize the LLM provider, %w", err)
	}
	log.Println("LLM provider initialized and ready.")

	registry := insight_engine.NewEntityRegistry(cfg.EntityRegistry)
	optimizer := insight_engine.NewImageOptimizer(cfg.ThumbnailMaxDim, cfg.ThumbnailQuality)

	pipeline := insight_engine.NewPipeline(
		insight_engine.NewPDFDecoder(),
		insight_engine.NewRelevanceFilter(registry),
		insight_engine.NewContextAssembler(cfg.MaxContextChars, cfg.MaxThumbnails, optimizer),
		insight_engine.NewSummarizer(llmProvider, cfg.InstructionTemplate, cfg.SummarizeTimeout),
	)

	server := NewServer(cfg, pipeline)

	return &App{LLM: llmProvider, Pipeline: pipeline, Server: server}, nil
}

func (a *App) Close() {
	if a.LLM != nil {
		_ = a.LLM.Close()
	}
}
