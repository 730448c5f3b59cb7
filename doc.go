// Package supadata is a client for the Supadata content extraction API:
// YouTube transcripts and metadata, web scraping, site mapping, and
// asynchronous crawl jobs.
//
// Construct a client with an API key and call operations through the
// YouTube and Web namespaces:
//
//	client, err := supadata.New(os.Getenv("SUPADATA_API_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	transcript, err := client.YouTube.Transcript(ctx, supadata.VideoID("dQw4w9WgXcQ"), nil)
//
// API failures are returned as *Error values carrying the code, title,
// description and documentation URL reported by the service. Errors
// synthesized from gateway responses (plain-text 403/404/429 from the
// edge rather than the API) use a fixed code/title table and have no
// documentation URL. Use errors.As to inspect them:
//
//	var apiErr *supadata.Error
//	if errors.As(err, &apiErr) {
//		fmt.Println(apiErr.Code)
//	}
//
// Crawl jobs are started with Web.Crawl and drained with
// Web.CrawlResults, which follows the server's pagination tokens until
// all pages are collected. A job that ends in the failed state is
// reported as ErrCrawlJobFailed.
package supadata
