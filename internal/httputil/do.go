// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the single-shot HTTP helper shared by both
// tools. Each logical call maps to exactly one outbound request: no
// retries, no backoff, no circuit breaking. Failures are reported as
// types.ErrRequestFailed so the host can surface them conversationally.
package httputil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pdiddy/scholarly/pkg/types"
)

// Do executes req once with client and returns the response when the
// status is 2xx. Any network error or non-2xx status is wrapped as
// types.ErrRequestFailed; on a non-2xx status the body is drained and
// closed before returning so the caller never has to.
func Do(client *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, types.ErrRequestFailed.Withf("%s %s: %v", req.Method, req.URL.Host, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readDetail(resp.Body)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if detail != "" {
			return nil, types.ErrRequestFailed.Withf("HTTP %d: %s", resp.StatusCode, detail)
		}
		return nil, types.ErrRequestFailed.Withf("HTTP %d", resp.StatusCode)
	}

	return resp, nil
}

// DecodeJSON executes the request and decodes a JSON body into v,
// closing the body in all cases. A body that cannot be decoded is a
// request failure, reported whole.
func DecodeJSON(client *http.Client, req *http.Request, v any) error {
	resp, err := Do(client, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return types.ErrRequestFailed.Withf("parsing response: %v", err)
	}
	return nil
}

// NewRequest builds a request with the shared headers applied.
func NewRequest(ctx context.Context, method, url string, body io.Reader, cfg types.HTTPConfig) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, types.ErrRequestFailed.Withf("creating request: %v", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	return req, nil
}

// detailLimit caps how much of an error body is carried into the error
// message.
const detailLimit = 512

// readDetail pulls a short upstream error detail from a failed
// response body. Best effort: an unreadable body yields "".
func readDetail(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, detailLimit))
	if err != nil || len(b) == 0 {
		return ""
	}
	return string(b)
}
