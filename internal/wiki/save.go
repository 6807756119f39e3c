package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"wikitui/internal/httpx"
)

// Save PUTs the encoded form to target and classifies the response into
// exactly one Outcome. It never retries.
func (c *Client) Save(ctx context.Context, target, encoded string) Outcome {
	u, err := c.Resolve(target)
	if err != nil {
		return Outcome{Kind: TransportFailure, Err: err}
	}
	req, id, err := httpx.NewRequest(ctx, http.MethodPut, u.String(), encoded, c.opts.UserAgent)
	if err != nil {
		return Outcome{Kind: TransportFailure, Err: err}
	}
	req.Header.Set("Content-Type", httpx.MIMEForm)
	log := c.log.With().Str("request_id", id).Str("url", u.String()).Logger()
	log.Debug().Int("bytes", len(encoded)).Msg("save request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("save transport error")
		return Outcome{Kind: TransportFailure, Err: err}
	}
	defer resp.Body.Close()

	out := classify(resp, u)
	ev := log.Info()
	if out.Kind != Success {
		ev = log.Warn()
	}
	ev.Str("outcome", out.Kind.String()).Int("status", resp.StatusCode).Msg("save response")
	return out
}

func classify(resp *http.Response, requested *url.URL) Outcome {
	if httpx.Redirected(resp, requested) && httpx.MediaType(resp) != httpx.MIMEJSON {
		return Outcome{Kind: AuthRequired, LoginURL: resp.Request.URL.String()}
	}
	if resp.StatusCode == http.StatusUnauthorized {
		if loc, err := resp.Location(); err == nil {
			return Outcome{Kind: AuthRequired, LoginURL: loc.String()}
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Outcome{
			Kind:   StatusFailure,
			Status: resp.StatusCode,
			Err:    &StatusError{Method: http.MethodPut, URL: requested.String(), Code: resp.StatusCode},
		}
	}
	var result SaveResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Outcome{Kind: TransportFailure, Err: fmt.Errorf("decode save response: %w", err)}
	}
	if result.Conflict {
		return Outcome{Kind: Conflict, Result: result}
	}
	return Outcome{Kind: Success, Result: result}
}
