package supadata

import (
	"context"
	"net/http"
	"net/url"
)

// WebService exposes the /web endpoints.
type WebService struct {
	client *Client
}

// crawlRequest is the POST /web/crawl body.
type crawlRequest struct {
	URL   string `json:"url"`
	Limit int    `json:"limit,omitempty"`
}

// Scrape extracts the content of a single page as markdown.
func (s *WebService) Scrape(ctx context.Context, pageURL string) (*Scrape, error) {
	q, err := urlQuery(pageURL)
	if err != nil {
		return nil, err
	}
	var sc Scrape
	if err := s.client.request(ctx, http.MethodGet, "/web/scrape", q, nil, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Map lists the URLs discovered on a site.
func (s *WebService) Map(ctx context.Context, siteURL string) (*Map, error) {
	q, err := urlQuery(siteURL)
	if err != nil {
		return nil, err
	}
	var m Map
	if err := s.client.request(ctx, http.MethodGet, "/web/map", q, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Crawl starts a server-side crawl job and returns its id immediately;
// it does not wait for completion. limit caps the number of pages
// crawled, zero for the server default.
func (s *WebService) Crawl(ctx context.Context, siteURL string, limit int) (*CrawlJob, error) {
	if siteURL == "" {
		return nil, validationError("a url is required")
	}
	var job CrawlJob
	body := crawlRequest{URL: siteURL, Limit: limit}
	if err := s.client.request(ctx, http.MethodPost, "/web/crawl", nil, body, &job); err != nil {
		return nil, err
	}
	if job.JobID == "" {
		return nil, validationError("crawl response carried no job id")
	}
	return &job, nil
}

// CrawlResults fetches every page collected by a crawl job, following
// the server's pagination token until the last page. Pages arrive in
// fetch order. A job in the failed state yields ErrCrawlJobFailed and
// no pages, even when earlier pages were already fetched.
func (s *WebService) CrawlResults(ctx context.Context, jobID string) ([]CrawlPage, error) {
	if jobID == "" {
		return nil, validationError("a job id is required")
	}

	path := "/web/crawl/" + url.PathEscape(jobID)
	var pages []CrawlPage
	next := ""
	for {
		var q url.Values
		if next != "" {
			q = url.Values{}
			q.Set("next", next)
		}

		var status crawlStatusResponse
		if err := s.client.request(ctx, http.MethodGet, path, q, nil, &status); err != nil {
			return nil, err
		}
		if status.Status == CrawlStatusFailed {
			return nil, ErrCrawlJobFailed
		}

		pages = append(pages, status.Pages...)
		if status.Next == nil || *status.Next == "" {
			return pages, nil
		}
		next = *status.Next
	}
}

func urlQuery(rawURL string) (url.Values, error) {
	if rawURL == "" {
		return nil, validationError("a url is required")
	}
	q := url.Values{}
	q.Set("url", rawURL)
	return q, nil
}
