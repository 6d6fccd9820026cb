package suggest

import (
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

type loggingTransport struct {
	base http.RoundTripper
	log  logr.Logger
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	start := time.Now()
	resp, err := base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.log.V(1).Info("http request failed", "method", req.Method, "url", req.URL.String(),
			"elapsed", elapsed.String(), "error", err.Error())
		return nil, err
	}

	t.log.V(1).Info("http request", "method", req.Method, "url", req.URL.String(),
		"status", resp.StatusCode, "elapsed", elapsed.String())
	return resp, nil
}
