package telegram

import (
	"net"
	"net/http"
	"time"

	"pricebench/core/telegram/netutil"
)

const (
	dialTimeout     = 5 * time.Second
	tlsTimeout      = 5 * time.Second
	headerTimeout   = 5 * time.Second
	idleConnTimeout = 30 * time.Second
	clientTimeout   = 30 * time.Second
	retryLimit      = 3
	retryBaseDelay  = 2 * time.Second
)

// BuildHTTPClient returns the client used for all Telegram API calls.
// Transient transport failures are retried with linear backoff.
func BuildHTTPClient() *http.Client {
	return &http.Client{
		Timeout: clientTimeout,
		Transport: &retryRoundTripper{
			next: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           (&net.Dialer{Timeout: dialTimeout, KeepAlive: idleConnTimeout}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       idleConnTimeout,
				TLSHandshakeTimeout:   tlsTimeout,
				ResponseHeaderTimeout: headerTimeout,
				ExpectContinueTimeout: time.Second,
			},
			retries: retryLimit,
			delay:   retryBaseDelay,
		},
	}
}

type retryRoundTripper struct {
	next    http.RoundTripper
	retries int
	delay   time.Duration
}

func (t *retryRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= t.retries; attempt++ {
		outReq, err := t.prepare(req, attempt)
		if err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		resp, err := t.next.RoundTrip(outReq)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !netutil.Retryable(err) || attempt == t.retries {
			break
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(t.delay * time.Duration(attempt+1)):
		}
	}
	return nil, lastErr
}

// prepare clones the request for retries. A request whose body has been
// consumed and cannot be rebuilt is not replayable.
func (t *retryRoundTripper) prepare(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 0 {
		return req, nil
	}
	clone := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = body
		return clone, nil
	}
	if req.Body != nil {
		return nil, http.ErrBodyReadAfterClose
	}
	return clone, nil
}
