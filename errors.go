package supadata

import (
	"errors"
	"strings"
)

// ErrCrawlJobFailed reports that the remote crawl job itself failed, as
// opposed to the status request failing. CrawlResults returns it
// unwrapped so callers can test with errors.Is.
var ErrCrawlJobFailed = errors.New("crawl job failed")

// Error is the structured error reported by the Supadata API. The API
// answers failed requests with a JSON body carrying these fields;
// errors synthesized client-side (validation, gateway responses) use
// the same shape with DocumentationURL left empty.
type Error struct {
	Code             string `json:"code"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	DocumentationURL string `json:"documentationUrl,omitempty"`
}

func (e *Error) Error() string {
	parts := []string{e.Description}
	if e.Code != "" {
		parts = append(parts, "Code: "+e.Code)
	}
	if e.Title != "" {
		parts = append(parts, "Title: "+e.Title)
	}
	if e.DocumentationURL != "" {
		parts = append(parts, "Documentation: "+e.DocumentationURL)
	}
	return strings.Join(parts, " | ")
}

type gatewayErrorInfo struct {
	Code    string
	Title   string
	Details string // description fallback when the response body is empty
}

// Gateway responses come from the edge in plain text, not from the API,
// so code and title are fixed per status here.
var gatewayErrors = map[int]gatewayErrorInfo{
	403: {
		Code:    "invalid-request",
		Title:   "Invalid or missing API key",
		Details: "Please ensure you have provided a valid API key",
	},
	404: {
		Code:    "invalid-request",
		Title:   "Endpoint does not exist",
		Details: "The API endpoint you are trying to access does not exist",
	},
	429: {
		Code:    "limit-exceeded",
		Title:   "Limit exceeded",
		Details: "You have exceeded the allowed request rate or quota limits",
	},
}

// gatewayError maps a non-JSON error response to an *Error using the
// fixed status table, keeping the raw body text as the description.
func gatewayError(status int, body string) *Error {
	if info, ok := gatewayErrors[status]; ok {
		desc := body
		if desc == "" {
			desc = info.Details
		}
		return &Error{Code: info.Code, Title: info.Title, Description: desc}
	}

	desc := body
	if desc == "" {
		desc = "An unexpected error occurred"
	}
	return &Error{Code: "internal-error", Title: "Unexpected error", Description: desc}
}

// validationError reports a client-side precondition failure using the
// same taxonomy as API errors.
func validationError(description string) *Error {
	return &Error{Code: "invalid-request", Title: "Invalid request", Description: description}
}
