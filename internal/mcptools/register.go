// Package mcptools exposes the Supadata API as MCP tools so agents can
// fetch transcripts, scrape pages and run crawls over stdio.
package mcptools

import (
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	supadata "github.com/supadata-ai/supadata-go"
)

// RegisterTools registers all Supadata tools on the given MCP server:
// youtube_transcript, youtube_translate, web_scrape, web_map,
// web_crawl, web_crawl_results.
func RegisterTools(server *mcp.Server, client *supadata.Client) {
	registerTranscript(server, client)
	registerTranslate(server, client)
	registerScrape(server, client)
	registerMap(server, client)
	registerCrawl(server, client)
	registerCrawlResults(server, client)
}

// videoRefFromInput builds a video reference from the videoId/url pair
// every YouTube tool accepts. Exactly one of the two must be set.
func videoRefFromInput(videoID, videoURL string) (supadata.VideoRef, error) {
	switch {
	case videoID != "" && videoURL != "":
		return nil, errors.New("videoId and url are mutually exclusive")
	case videoID != "":
		return supadata.VideoID(videoID), nil
	case videoURL != "":
		return supadata.VideoURL(videoURL), nil
	default:
		return nil, errors.New("either videoId or url is required")
	}
}
