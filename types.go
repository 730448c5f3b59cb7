package supadata

import (
	"encoding/json"
	"time"
)

// TranscriptChunk is one timed segment of a video transcript. Offset
// and Duration are in milliseconds.
type TranscriptChunk struct {
	Text     string `json:"text"`
	Offset   int64  `json:"offset"`
	Duration int64  `json:"duration"`
	Lang     string `json:"lang,omitempty"`
}

// Transcript is a video transcript. Exactly one of Chunks and Text is
// populated: Text when the request asked for plain text, Chunks
// otherwise. The choice follows the request, never the payload shape.
type Transcript struct {
	Chunks         []TranscriptChunk `json:"chunks,omitempty"`
	Text           string            `json:"text,omitempty"`
	Lang           string            `json:"lang,omitempty"`
	AvailableLangs []string          `json:"availableLangs,omitempty"`
}

// TranslatedTranscript is a transcript translated into a target
// language. Unlike Transcript it carries no available-languages list.
type TranslatedTranscript struct {
	Chunks []TranscriptChunk `json:"chunks,omitempty"`
	Text   string            `json:"text,omitempty"`
	Lang   string            `json:"lang,omitempty"`
}

// transcriptEnvelope is the wire shape shared by the transcript and
// translate endpoints. Content is either a string or a chunk array;
// the facade decodes it according to the request's text flag.
type transcriptEnvelope struct {
	Content        json.RawMessage `json:"content"`
	Lang           string          `json:"lang"`
	AvailableLangs []string        `json:"availableLangs"`
}

// Scrape is the extracted content of a single web page. Content is
// markdown.
type Scrape struct {
	URL             string   `json:"url"`
	Content         string   `json:"content"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	OgURL           string   `json:"ogUrl,omitempty"`
	CountCharacters int      `json:"countCharacters"`
	URLs            []string `json:"urls,omitempty"`
}

// Map lists the URLs discovered on a site.
type Map struct {
	URLs []string `json:"urls"`
}

// CrawlJob identifies a crawl started with Web.Crawl. The job runs
// server-side; fetch its output with Web.CrawlResults.
type CrawlJob struct {
	JobID string `json:"jobId"`
}

// CrawlPage is one page collected by a crawl job. It mirrors Scrape
// minus the og/count fields.
type CrawlPage struct {
	URL         string `json:"url"`
	Content     string `json:"content"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// CrawlStatus is the lifecycle state reported by the crawl job
// endpoint. Centralizing the values here avoids scattering string
// literals like "completed" across packages.
type CrawlStatus string

const (
	CrawlStatusScraping  CrawlStatus = "scraping"
	CrawlStatusCompleted CrawlStatus = "completed"
	CrawlStatusFailed    CrawlStatus = "failed"
	CrawlStatusCancelled CrawlStatus = "cancelled"
)

// crawlStatusResponse is one page of the crawl job status endpoint.
// Next is null on the final page.
type crawlStatusResponse struct {
	Status CrawlStatus `json:"status"`
	Pages  []CrawlPage `json:"pages"`
	Next   *string     `json:"next"`
}

// ChannelRef identifies the channel a video or playlist belongs to.
type ChannelRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Video is YouTube video metadata. Duration is in seconds.
type Video struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	Duration            int64      `json:"duration"`
	Channel             ChannelRef `json:"channel"`
	Tags                []string   `json:"tags,omitempty"`
	Thumbnail           string     `json:"thumbnail,omitempty"`
	UploadDate          time.Time  `json:"uploadDate"`
	ViewCount           int64      `json:"viewCount"`
	LikeCount           int64      `json:"likeCount"`
	TranscriptLanguages []string   `json:"transcriptLanguages,omitempty"`
}

// Channel is YouTube channel metadata.
type Channel struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Handle          string `json:"handle,omitempty"`
	Description     string `json:"description,omitempty"`
	VideoCount      int64  `json:"videoCount"`
	SubscriberCount int64  `json:"subscriberCount"`
	Thumbnail       string `json:"thumbnail,omitempty"`
	Banner          string `json:"banner,omitempty"`
}

// Playlist is YouTube playlist metadata.
type Playlist struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	VideoCount  int64      `json:"videoCount"`
	ViewCount   int64      `json:"viewCount"`
	LastUpdated time.Time  `json:"lastUpdated"`
	Channel     ChannelRef `json:"channel"`
}

// videoIDsResponse wraps the id listings of the channel/videos and
// playlist/videos endpoints.
type videoIDsResponse struct {
	VideoIDs []string `json:"videoIds"`
}
