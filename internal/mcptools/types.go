package mcptools

import (
	supadata "github.com/supadata-ai/supadata-go"
)

type transcriptInput struct {
	VideoID   string `json:"videoId,omitempty" jsonschema:"YouTube video ID (mutually exclusive with url)"`
	URL       string `json:"url,omitempty" jsonschema:"YouTube video URL (mutually exclusive with videoId)"`
	Lang      string `json:"lang,omitempty" jsonschema:"Preferred transcript language (ISO 639-1)"`
	Text      bool   `json:"text,omitempty" jsonschema:"Return plain text instead of timed chunks"`
	ChunkSize int    `json:"chunkSize,omitempty" jsonschema:"Maximum characters per chunk"`
}

type translateInput struct {
	VideoID   string `json:"videoId,omitempty" jsonschema:"YouTube video ID (mutually exclusive with url)"`
	URL       string `json:"url,omitempty" jsonschema:"YouTube video URL (mutually exclusive with videoId)"`
	Lang      string `json:"lang" jsonschema:"Target language (ISO 639-1)"`
	Text      bool   `json:"text,omitempty" jsonschema:"Return plain text instead of timed chunks"`
	ChunkSize int    `json:"chunkSize,omitempty" jsonschema:"Maximum characters per chunk"`
}

type scrapeInput struct {
	URL string `json:"url" jsonschema:"URL of the page to scrape"`
}

type mapInput struct {
	URL string `json:"url" jsonschema:"URL of the website to map"`
}

type mapOutput struct {
	URLs []string `json:"urls" jsonschema:"URLs discovered on the website"`
}

type crawlInput struct {
	URL   string `json:"url" jsonschema:"URL of the website to crawl"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of pages to crawl"`
}

type crawlResultsInput struct {
	JobID string `json:"jobId" jsonschema:"Crawl job ID returned by web_crawl"`
}

type crawlResultsOutput struct {
	Pages []supadata.CrawlPage `json:"pages" jsonschema:"Pages produced by the crawl, in fetch order"`
}
