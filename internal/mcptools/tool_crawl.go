package mcptools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	supadata "github.com/supadata-ai/supadata-go"
)

func registerCrawl(server *mcp.Server, client *supadata.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_crawl",
		Description: "Start a crawl job for a website. Returns a job ID to pass to web_crawl_results once the crawl has had time to run.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input crawlInput) (*mcp.CallToolResult, supadata.CrawlJob, error) {
		if input.URL == "" {
			return nil, supadata.CrawlJob{}, errors.New("url is required")
		}

		job, err := client.Web.Crawl(ctx, input.URL, input.Limit)
		if err != nil {
			return nil, supadata.CrawlJob{}, err
		}
		return nil, *job, nil
	})
}

func registerCrawlResults(server *mcp.Server, client *supadata.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_crawl_results",
		Description: "Fetch all pages produced by a crawl job, following pagination until the job is exhausted. Fails if the job failed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input crawlResultsInput) (*mcp.CallToolResult, crawlResultsOutput, error) {
		if input.JobID == "" {
			return nil, crawlResultsOutput{}, errors.New("jobId is required")
		}

		pages, err := client.Web.CrawlResults(ctx, input.JobID)
		if err != nil {
			return nil, crawlResultsOutput{}, err
		}
		return nil, crawlResultsOutput{Pages: pages}, nil
	})
}
