package model

import (
	"net/http"
	"strconv"
	"time"
)

// StatusTransportError is the sentinel status recorded when a request could
// not complete at all (DNS failure, refused connection, timeout, malformed
// response). It never collides with a real HTTP status code.
const StatusTransportError = -1

// CheckResult is the outcome of looking up one identifier on a registry.
type CheckResult struct {
	// Identifier is the model name or tag that was looked up.
	Identifier string `json:"identifier"`

	// Status is the HTTP status code of the completed exchange,
	// or StatusTransportError.
	Status int `json:"status"`

	// Elapsed is how long the lookup took.
	Elapsed time.Duration `json:"elapsed"`
}

// Found reports whether the identifier resolved. Only 200 counts;
// redirects that were not followed, 4xx, 5xx and transport failures are
// all reported as missing.
func (r CheckResult) Found() bool {
	return r.Status == http.StatusOK
}

// TransportFailed reports whether the request never produced an HTTP status.
func (r CheckResult) TransportFailed() bool {
	return r.Status == StatusTransportError
}

// StatusText renders the status the way progress lines show it, e.g. "HTTP 404".
func (r CheckResult) StatusText() string {
	return "HTTP " + strconv.Itoa(r.Status)
}
