package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"

	"wikitui/internal/httpx"
)

// EditorFormID is the id of the article form on a wiki page.
const EditorFormID = "article-editor"

// Load fetches the page the client is bound to and reads the article out of
// its markup.
func (c *Client) Load(ctx context.Context) (Page, error) {
	target := c.page.String()
	req, id, err := httpx.NewRequest(ctx, http.MethodGet, target, "", c.opts.UserAgent)
	if err != nil {
		return Page{}, err
	}
	req.Header.Set("Accept", "text/html")
	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("load %s: %w", target, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Page{}, &StatusError{Method: http.MethodGet, URL: target, Code: resp.StatusCode}
	}
	final := target
	if resp.Request != nil && resp.Request.URL != nil {
		final = resp.Request.URL.String()
	}
	p, err := ParsePage(resp.Body, final)
	if err != nil {
		return Page{}, err
	}
	c.log.Debug().Str("request_id", id).Str("url", final).Bool("editing", p.Editing).Msg("page loaded")
	return p, nil
}

// ParsePage extracts the article form and display state from a page's HTML.
func ParsePage(r io.Reader, pageURL string) (Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Page{}, fmt.Errorf("parse page: %w", err)
	}
	p := Page{URL: pageURL}
	p.Display.URL = pageURL
	p.Display.Slug = slugOf(pageURL)

	form := find(doc, func(n *html.Node) bool {
		return n.Data == "form" && attr(n, "id") == EditorFormID
	})
	if form == nil {
		return Page{}, fmt.Errorf("page %s has no #%s form", pageURL, EditorFormID)
	}
	p.Action = attr(form, "action")

	walk(form, func(n *html.Node) {
		switch {
		case n.Data == "input" && attr(n, "name") == FieldTitle:
			p.Form.Title = attr(n, "value")
		case n.Data == "textarea" && attr(n, "name") == FieldBody:
			p.Form.Body = text(n)
		case n.Data == "input" && attr(n, "name") == FieldTheme && hasAttr(n, "checked"):
			p.Form.Theme = attr(n, "value")
		case n.Data == "input" && attr(n, "name") == FieldBaseRevision:
			p.Form.BaseRevision = attr(n, "value")
		}
	})

	if t := find(doc, func(n *html.Node) bool { return n.Data == "title" }); t != nil {
		p.Display.Title = strings.TrimSpace(text(t))
	}
	if p.Form.Title != "" {
		p.Display.Title = p.Form.Title
	}
	if body := find(doc, func(n *html.Node) bool { return n.Data == "body" }); body != nil && p.Form.Theme == "" {
		for _, cls := range strings.Fields(attr(body, "class")) {
			if strings.HasPrefix(cls, "theme-") {
				p.Form.Theme = strings.TrimPrefix(cls, "theme-")
			}
		}
	}
	if ct := find(doc, func(n *html.Node) bool { return hasClass(n, "container") }); ct != nil {
		p.Editing = hasClass(ct, "edit")
	}
	if rd := find(doc, func(n *html.Node) bool { return hasClass(n, "rendered") }); rd != nil {
		p.Display.Rendered = innerHTML(rd)
	}
	if lu := find(doc, func(n *html.Node) bool { return hasClass(n, "last-updated") }); lu != nil && !hasClass(lu, "missing") {
		p.Display.LastUpdated = strings.Join(strings.Fields(text(lu)), " ")
	}

	p.Display.Body = p.Form.Body
	p.Display.Theme = p.Form.Theme
	p.Display.Revision = p.Form.BaseRevision
	return p, nil
}

func slugOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	p := strings.Trim(u.Path, "/")
	if p == "" {
		return ""
	}
	return path.Base(p)
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := find(c, match); f != nil {
			return f
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return b.String()
}

func innerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return strings.TrimSpace(b.String())
}
