package mcptools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	supadata "github.com/supadata-ai/supadata-go"
)

func registerScrape(server *mcp.Server, client *supadata.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_scrape",
		Description: "Scrape a web page and return its content as markdown together with page metadata (title, description, linked URLs).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input scrapeInput) (*mcp.CallToolResult, supadata.Scrape, error) {
		if input.URL == "" {
			return nil, supadata.Scrape{}, errors.New("url is required")
		}

		scrape, err := client.Web.Scrape(ctx, input.URL)
		if err != nil {
			return nil, supadata.Scrape{}, err
		}
		return nil, *scrape, nil
	})
}

func registerMap(server *mcp.Server, client *supadata.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "web_map",
		Description: "List the URLs of a website without fetching page content. Useful for picking pages to scrape or sizing a crawl.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input mapInput) (*mcp.CallToolResult, mapOutput, error) {
		if input.URL == "" {
			return nil, mapOutput{}, errors.New("url is required")
		}

		siteMap, err := client.Web.Map(ctx, input.URL)
		if err != nil {
			return nil, mapOutput{}, err
		}
		return nil, mapOutput{URLs: siteMap.URLs}, nil
	})
}
