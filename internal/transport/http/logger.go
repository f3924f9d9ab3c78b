package http

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/savrasov/hubic-agent/internal/logger"
	"github.com/savrasov/hubic-agent/internal/utils"
)

// defaultMaxLogLength caps request/response dumps at 1 MB when no limit is configured.
const defaultMaxLogLength = 1 * 1024 * 1024

// ErrNilRequest indicates that the HTTP request is nil.
var ErrNilRequest = errors.New("request is nil")

// LogTransport is an http.RoundTripper that dumps each request/response pair
// at debug level. Dumps include bodies, which for the authentication flow
// carry account credentials, so nothing is logged above debug.
type LogTransport struct {
	next         http.RoundTripper
	maxLogLength uint64
}

// NewLogTransport wraps the given round tripper with debug dump logging.
// A zero maxLogLength falls back to defaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Dumping is expensive; bypass the whole thing unless debug is on.
	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	requestDump := t.dumpRequest(req)
	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.DebugKV(ctx, "Request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err)

		return nil, err
	}

	logger.DebugKV(ctx, "Request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(startTime),
		"request", requestDump,
		"response", t.dumpResponse(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequest(req, true)
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// Binary bodies are skipped; only textual content types get dumped in full.
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	return t.truncate(dump)
}

func (t *LogTransport) truncate(data []byte) string {
	limit := utils.SafeUint64ToInt64(t.maxLogLength)
	if int64(len(data)) > limit {
		return string(data[:limit]) + "... [truncated]"
	}

	return string(data)
}
