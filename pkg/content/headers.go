package content

import (
	"math/rand/v2"
	"net/http"
)

// pageLanguages rotate between page fetches, some sites serve a consent wall to clients without one
var pageLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.8,de;q=0.6",
	"en-US,en;q=0.8,fr;q=0.6",
}

// setPageHeaders makes a page request look like a browser navigation.
// Accept-Encoding is left to the transport so gzip bodies are decoded.
func setPageHeaders(req *http.Request, userAgent string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", pageLanguages[rand.IntN(len(pageLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
}
