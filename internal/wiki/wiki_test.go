package wiki

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, srv *httptest.Server, page string) *Client {
	t.Helper()
	c, err := NewClient(srv.URL+page, Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestEncodeFieldsSkipsUncheckedRadiosAndDisabled(t *testing.T) {
	f := EditForm{Title: "Front page", Body: "a & b", Theme: "teal", BaseRevision: "5"}
	got := EncodeFields(f.Fields(false))
	want := "title=Front+page&body=a+%26+b&theme=teal&base_revision=5"
	if got != want {
		t.Fatalf("encoded = %q, want %q", got, want)
	}
	if got := EncodeFields(f.Fields(true)); got != "" {
		t.Fatalf("disabled fields must not be encoded, got %q", got)
	}
	unnamed := []FormField{{Value: "x"}, {Name: "a", Value: "1"}}
	if got := EncodeFields(unnamed); got != "a=1" {
		t.Fatalf("unnamed field encoded: %q", got)
	}
}

func TestHasUnsavedEdits(t *testing.T) {
	snap := EditForm{Title: "t", Body: "b", Theme: "red", BaseRevision: "1"}
	if HasUnsavedEdits(snap, snap) {
		t.Fatalf("identical form reported dirty")
	}
	for name, mutate := range map[string]func(*EditForm){
		"title": func(f *EditForm) { f.Title = "t2" },
		"body":  func(f *EditForm) { f.Body = "b2" },
		"theme": func(f *EditForm) { f.Theme = "blue" },
	} {
		f := snap
		mutate(&f)
		if !HasUnsavedEdits(f, snap) {
			t.Fatalf("%s change not detected", name)
		}
	}
	f := snap
	f.Body = "changed"
	f.Body = "b"
	if HasUnsavedEdits(f, snap) {
		t.Fatalf("edit reverted to snapshot still reported dirty")
	}
}

func TestSaveSuccessAndConflict(t *testing.T) {
	var conflict atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("content type = %q", ct)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Errorf("missing request id")
		}
		body, _ := io.ReadAll(r.Body)
		v, _ := url.ParseQuery(string(body))
		if v.Get("base_revision") != "5" {
			t.Errorf("base_revision = %q", v.Get("base_revision"))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title": v.Get("title"), "slug": "front", "body": v.Get("body"),
			"rendered": "<p>x</p>", "theme": v.Get("theme"), "revision": 6,
			"last_updated": "now", "conflict": conflict.Load(), "article_id": 3,
		})
	}))
	defer srv.Close()
	c := newTestClient(t, srv, "/front")
	enc := EncodeFields(EditForm{Title: "T", Body: "B", Theme: "red", BaseRevision: "5"}.Fields(false))

	out := c.Save(context.Background(), "front", enc)
	if out.Kind != Success {
		t.Fatalf("kind = %v (%v)", out.Kind, out.Err)
	}
	if out.Result.Revision != "6" || out.Result.ArticleID != "3" || out.Result.Slug != "front" {
		t.Fatalf("unexpected result %+v", out.Result)
	}

	conflict.Store(true)
	out = c.Save(context.Background(), "front", enc)
	if out.Kind != Conflict || !out.Result.Conflict {
		t.Fatalf("expected conflict, got %v", out.Kind)
	}
}

func TestSaveAuthChallenge(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/redirecting", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/_login", http.StatusSeeOther)
	})
	mux.HandleFunc("/_login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, "<html>login</html>")
	})
	mux.HandleFunc("/unauthorized", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", "/_login?return=unauthorized")
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := newTestClient(t, srv, "/")

	out := c.Save(context.Background(), "redirecting", "title=x")
	if out.Kind != AuthRequired || !strings.HasSuffix(out.LoginURL, "/_login") {
		t.Fatalf("redirect: kind=%v url=%q", out.Kind, out.LoginURL)
	}
	out = c.Save(context.Background(), "unauthorized", "title=x")
	if out.Kind != AuthRequired || !strings.HasSuffix(out.LoginURL, "/_login?return=unauthorized") {
		t.Fatalf("401: kind=%v url=%q", out.Kind, out.LoginURL)
	}
}

func TestSaveFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	mux.HandleFunc("/garbage", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "{not json")
	})
	srv := httptest.NewServer(mux)
	c := newTestClient(t, srv, "/")

	out := c.Save(context.Background(), "broken", "title=x")
	if out.Kind != StatusFailure || out.Status != http.StatusInternalServerError {
		t.Fatalf("status: kind=%v status=%d", out.Kind, out.Status)
	}
	if !strings.Contains(out.Message(), "500") {
		t.Fatalf("message lacks status: %q", out.Message())
	}
	out = c.Save(context.Background(), "garbage", "title=x")
	if out.Kind != TransportFailure || out.Err == nil {
		t.Fatalf("garbage: kind=%v", out.Kind)
	}

	srv.Close()
	out = c.Save(context.Background(), "broken", "title=x")
	if out.Kind != TransportFailure {
		t.Fatalf("closed server: kind=%v", out.Kind)
	}
}

func TestSearch(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/_search" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("accept = %q", r.Header.Get("Accept"))
		}
		q := r.URL.Query()
		if q.Get("q") != "wiki" || q.Get("snippet_size") != "4" || q.Get("limit") != "3" {
			t.Errorf("query = %v", q)
		}
		_, _ = io.WriteString(w, `{"query":"wiki","hits":[{"slug":"a","title":"A","snippet":"s"}],"prev":null,"next":"_search?q=wiki&offset=3"}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv, "/front")

	resp, err := c.Search(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(resp.Hits) != 1 || !bool(resp.Next) {
		t.Fatalf("unexpected response %+v", resp)
	}
	if _, err := c.Search(context.Background(), ""); err != nil {
		t.Fatalf("empty query: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("empty query hit the network: %d calls", calls.Load())
	}
}

func TestSearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	_, err := newTestClient(t, srv, "/").Search(context.Background(), "x")
	se, ok := err.(*StatusError)
	if !ok || se.Code != http.StatusBadGateway {
		t.Fatalf("err = %v", err)
	}
}

func TestMoreDecoding(t *testing.T) {
	cases := map[string]bool{`true`: true, `false`: false, `null`: false, `""`: false, `"_search?offset=3"`: true}
	for in, want := range cases {
		var m More
		if err := json.Unmarshal([]byte(in), &m); err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		if bool(m) != want {
			t.Fatalf("%s decoded to %v", in, m)
		}
	}
}

const articlePage = `<!DOCTYPE html>
<html><head><title>Front page</title></head>
<body class="theme-teal">
<div class="container edit">
 <div class="rendered"><h1>Front page</h1><p>Hello</p></div>
 <form id="article-editor" action="front" method="PUT">
  <input name="title" value="Front page">
  <textarea name="body">Hello
world</textarea>
  <textarea class="shadow-control"></textarea>
  <input type="radio" class="theme-picker--option" name="theme" value="red">
  <input type="radio" class="theme-picker--option" name="theme" value="teal" checked>
  <input type="hidden" name="base_revision" value="12">
 </form>
</div>
<footer><span class="last-updated">Last updated 2024-01-01</span></footer>
</body></html>`

func TestParsePage(t *testing.T) {
	p, err := ParsePage(strings.NewReader(articlePage), "http://wiki.local/front")
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	want := EditForm{Title: "Front page", Body: "Hello\nworld", Theme: "teal", BaseRevision: "12"}
	if p.Form != want {
		t.Fatalf("form = %+v, want %+v", p.Form, want)
	}
	if !p.Editing || p.Action != "front" || p.Display.Slug != "front" {
		t.Fatalf("unexpected page %+v", p)
	}
	if p.Display.LastUpdated != "Last updated 2024-01-01" || !strings.Contains(p.Display.Rendered, "<p>Hello</p>") {
		t.Fatalf("unexpected display %+v", p.Display)
	}
	blank := strings.Replace(articlePage, `<textarea name="body">Hello`, "<textarea name=\"body\">\n\nHello", 1)
	p, err = ParsePage(strings.NewReader(blank), "http://wiki.local/front")
	if err != nil {
		t.Fatalf("ParsePage: %v", err)
	}
	if p.Form.Body != "\nHello\nworld" {
		t.Fatalf("leading blank line lost: %q", p.Form.Body)
	}
	if _, err := ParsePage(strings.NewReader("<html></html>"), "http://wiki.local/"); err == nil {
		t.Fatalf("expected error for page without editor form")
	}
}
