package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"wikitui/internal/httpx"
)

// SearchURL returns the link for query against the wiki's search page. limit
// of zero leaves the server default.
func (c *Client) SearchURL(query string, limit int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("snippet_size", strconv.Itoa(c.opts.SnippetLen))
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	u, err := c.Resolve("_search?" + v.Encode())
	if err != nil {
		return ""
	}
	return u.String()
}

// Search runs one live search. An empty query returns an empty response
// without touching the network.
func (c *Client) Search(ctx context.Context, query string) (SearchResponse, error) {
	if query == "" {
		return SearchResponse{}, nil
	}
	target := c.SearchURL(query, c.opts.Limit)
	req, id, err := httpx.NewRequest(ctx, http.MethodGet, target, "", c.opts.UserAgent)
	if err != nil {
		return SearchResponse{}, err
	}
	req.Header.Set("Accept", httpx.MIMEJSON)
	log := c.log.With().Str("request_id", id).Str("query", query).Logger()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("search transport error")
		return SearchResponse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		log.Warn().Int("status", resp.StatusCode).Msg("search failed")
		return SearchResponse{}, &StatusError{Method: http.MethodGet, URL: target, Code: resp.StatusCode}
	}
	var out SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return SearchResponse{}, fmt.Errorf("decode search response: %w", err)
	}
	log.Debug().Int("hits", len(out.Hits)).Bool("next", bool(out.Next)).Msg("search response")
	return out, nil
}
