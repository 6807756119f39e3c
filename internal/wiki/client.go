// Package wiki talks to the wiki's HTTP endpoints and holds the article data
// model shared by the editor and search controllers.
package wiki

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"wikitui/internal/httpx"
)

// Options configures a Client.
type Options struct {
	Timeout    time.Duration
	Session    string
	UserAgent  string
	SnippetLen int
	Limit      int
	HTTPClient *http.Client // overrides Timeout and Session when set
}

// Client performs the page load, save and search requests for one wiki page.
// Relative targets (the form action, "_search") resolve against the page URL.
type Client struct {
	page *url.URL
	http *http.Client
	log  zerolog.Logger
	opts Options
}

// NewClient returns a Client bound to pageURL.
func NewClient(pageURL string, opts Options, log zerolog.Logger) (*Client, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse page url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("page url %q is not absolute", pageURL)
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc, err = httpx.NewClient(opts.Timeout, u, opts.Session)
		if err != nil {
			return nil, err
		}
	}
	if opts.SnippetLen <= 0 {
		opts.SnippetLen = 4
	}
	if opts.Limit <= 0 {
		opts.Limit = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "wikitui"
	}
	return &Client{page: u, http: hc, log: log, opts: opts}, nil
}

// PageURL returns the URL of the page the client is bound to.
func (c *Client) PageURL() string { return c.page.String() }

// At returns a client for another page, resolving target against the current
// page. The copy shares the cookie jar.
func (c *Client) At(target string) (*Client, error) {
	u, err := c.Resolve(target)
	if err != nil {
		return nil, err
	}
	cp := *c
	cp.page = u
	return &cp, nil
}

// Resolve resolves a reference the way a browser resolves a link on the page.
func (c *Client) Resolve(ref string) (*url.URL, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", ref, err)
	}
	return c.page.ResolveReference(r), nil
}
