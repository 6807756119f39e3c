package httpx

import (
    "context"
    "net/http"
    "net/http/httptest"
    "net/url"
    "testing"
    "time"
)

func TestNewClientSeedsSession(t *testing.T) {
    var got string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if c, err := r.Cookie("session"); err == nil {
            got = c.Value
        }
        if r.Header.Get(HeaderRequestID) == "" {
            t.Errorf("request id missing")
        }
    }))
    defer srv.Close()

    base, _ := url.Parse(srv.URL)
    c, err := NewClient(time.Second, base, "tok")
    if err != nil {
        t.Fatal(err)
    }
    req, id, err := NewRequest(context.Background(), http.MethodGet, srv.URL+"/a", "", "ua")
    if err != nil || id == "" {
        t.Fatalf("request: %v %q", err, id)
    }
    resp, err := c.Do(req)
    if err != nil {
        t.Fatal(err)
    }
    resp.Body.Close()
    if got != "tok" {
        t.Fatalf("session cookie = %q", got)
    }
}

func TestRedirected(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.URL.Path == "/from" {
            http.Redirect(w, r, "/to", http.StatusFound)
        }
    }))
    defer srv.Close()

    from, _ := url.Parse(srv.URL + "/from")
    resp, err := http.Get(from.String())
    if err != nil {
        t.Fatal(err)
    }
    resp.Body.Close()
    if !Redirected(resp, from) {
        t.Fatalf("redirect not detected")
    }
    to, _ := url.Parse(srv.URL + "/to")
    if Redirected(resp, to) {
        t.Fatalf("final url reported as redirect")
    }
}

func TestMediaType(t *testing.T) {
    resp := &http.Response{Header: http.Header{"Content-Type": {"application/json; charset=utf-8"}}}
    if mt := MediaType(resp); mt != MIMEJSON {
        t.Fatalf("media type = %q", mt)
    }
}

func TestWaitHTTPUp(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
    defer srv.Close()
    if err := WaitHTTPUp(context.Background(), srv.Client(), srv.URL, time.Second); err != nil {
        t.Fatalf("server up: %v", err)
    }

    down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusServiceUnavailable)
    }))
    defer down.Close()
    if err := WaitHTTPUp(context.Background(), down.Client(), down.URL, 400*time.Millisecond); err == nil {
        t.Fatalf("expected timeout")
    }
}
