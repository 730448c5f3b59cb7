// Command supadata-mcp is the Supadata MCP server.
//
// Exposes the Supadata API as MCP tools over stdio: youtube_transcript,
// youtube_translate, web_scrape, web_map, web_crawl, web_crawl_results.
// Configured through SUPADATA_API_KEY and optionally SUPADATA_BASE_URL.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	supadata "github.com/supadata-ai/supadata-go"
	"github.com/supadata-ai/supadata-go/internal/mcptools"
)

var version = "dev"

func main() {
	// Stdout carries the MCP protocol, so logging goes to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiKey := os.Getenv("SUPADATA_API_KEY")
	if apiKey == "" {
		slog.Error("SUPADATA_API_KEY is not set")
		os.Exit(1)
	}

	opts := []supadata.Option{supadata.WithLogger(slog.Default())}
	if baseURL := os.Getenv("SUPADATA_BASE_URL"); baseURL != "" {
		opts = append(opts, supadata.WithBaseURL(baseURL))
	}
	client, err := supadata.New(apiKey, opts...)
	if err != nil {
		slog.Error("client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "supadata",
		Version: version,
	}, nil)
	mcptools.RegisterTools(server, client)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting supadata-mcp", slog.String("version", version))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
