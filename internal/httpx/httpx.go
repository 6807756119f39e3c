package httpx

import (
    "context"
    "fmt"
    "mime"
    "net/http"
    "net/http/cookiejar"
    "net/url"
    "strings"
    "time"

    "github.com/google/uuid"
)

var (
    DefaultTimeout = 20 * time.Second
)

const (
    HeaderRequestID = "X-Request-Id"
    MIMEJSON        = "application/json"
    MIMEForm        = "application/x-www-form-urlencoded"
)

// NewClient returns an http.Client with a cookie jar so session cookies travel
// with every request, like a browser's same-origin credentials. A non-empty
// session is seeded into the jar for base as the "session" cookie.
func NewClient(timeout time.Duration, base *url.URL, session string) (*http.Client, error) {
    jar, err := cookiejar.New(nil)
    if err != nil {
        return nil, fmt.Errorf("cookie jar: %w", err)
    }
    if session != "" && base != nil {
        jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: session, Path: "/"}})
    }
    if timeout <= 0 {
        timeout = DefaultTimeout
    }
    return &http.Client{Timeout: timeout, Jar: jar}, nil
}

// NewRequest builds a request carrying a fresh request id and user agent.
func NewRequest(ctx context.Context, method, target string, body string, userAgent string) (*http.Request, string, error) {
    var req *http.Request
    var err error
    if body == "" {
        req, err = http.NewRequestWithContext(ctx, method, target, nil)
    } else {
        req, err = http.NewRequestWithContext(ctx, method, target, strings.NewReader(body))
    }
    if err != nil {
        return nil, "", err
    }
    id := uuid.NewString()
    req.Header.Set(HeaderRequestID, id)
    if userAgent != "" {
        req.Header.Set("User-Agent", userAgent)
    }
    return req, id, nil
}

// Redirected reports whether resp was reached through at least one redirect
// from requested.
func Redirected(resp *http.Response, requested *url.URL) bool {
    if resp == nil || resp.Request == nil || resp.Request.URL == nil || requested == nil {
        return false
    }
    return resp.Request.URL.String() != requested.String()
}

// MediaType returns the response's content type without parameters.
func MediaType(resp *http.Response) string {
    ct := resp.Header.Get("Content-Type")
    if ct == "" {
        return ""
    }
    mt, _, err := mime.ParseMediaType(ct)
    if err != nil {
        return ct
    }
    return mt
}

// WaitHTTPUp polls url until it answers with a status below 500 or ctx ends.
func WaitHTTPUp(ctx context.Context, client *http.Client, url string, timeout time.Duration) error {
    deadline := time.Now().Add(timeout)
    for {
        if time.Now().After(deadline) {
            return fmt.Errorf("timeout waiting for %s", url)
        }
        req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
        if err != nil {
            return err
        }
        resp, err := client.Do(req)
        if err == nil && resp.StatusCode < 500 {
            resp.Body.Close()
            return nil
        }
        if resp != nil && resp.Body != nil {
            resp.Body.Close()
        }
        select {
        case <-ctx.Done():
            return ctx.Err()
        case <-time.After(300 * time.Millisecond):
        }
    }
}
