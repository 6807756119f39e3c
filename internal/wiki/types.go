package wiki

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Themes lists the page themes the wiki knows, in the order its theme picker shows them.
var Themes = []string{
	"red", "pink", "purple", "deep-purple", "indigo", "blue",
	"light-blue", "cyan", "teal", "green", "light-green", "lime",
	"yellow", "amber", "orange", "deep-orange", "brown", "gray", "blue-gray",
}

// ValidTheme reports whether name is one of Themes.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Token is an opaque server value (revision, article id). The wiki sends these
// as JSON numbers; strings are accepted too so the client never interprets them.
type Token string

func (t *Token) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Token(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("token: %w", err)
	}
	*t = Token(n.String())
	return nil
}

// EditForm is the working copy of an article while it is being edited. The
// same shape doubles as the snapshot baseline that dirty tracking compares against.
type EditForm struct {
	Title        string
	Body         string
	Theme        string
	BaseRevision string
}

// SaveResult is the body of a successful PUT to an article.
type SaveResult struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Body        string `json:"body"`
	Rendered    string `json:"rendered"`
	Theme       string `json:"theme"`
	Revision    Token  `json:"revision"`
	LastUpdated string `json:"last_updated"`
	Conflict    bool   `json:"conflict"`
	ArticleID   Token  `json:"article_id,omitempty"`
}

// Form returns the snapshot the result establishes.
func (r SaveResult) Form() EditForm {
	return EditForm{
		Title:        r.Title,
		Body:         r.Body,
		Theme:        r.Theme,
		BaseRevision: string(r.Revision),
	}
}

// OutcomeKind classifies how a save ended.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	Conflict
	AuthRequired
	StatusFailure
	TransportFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case Conflict:
		return "conflict"
	case AuthRequired:
		return "auth-required"
	case StatusFailure:
		return "status-error"
	case TransportFailure:
		return "transport-error"
	default:
		return "unknown"
	}
}

// Outcome is the single result of one save attempt. Result is set for Success
// and Conflict, LoginURL for AuthRequired, Status for StatusFailure and Err for
// StatusFailure and TransportFailure.
type Outcome struct {
	Kind     OutcomeKind
	Result   SaveResult
	LoginURL string
	Status   int
	Err      error
}

// Message is the text shown to the user for failed outcomes.
func (o Outcome) Message() string {
	switch o.Kind {
	case StatusFailure:
		return fmt.Sprintf("Unexpected status code (%d)", o.Status)
	case TransportFailure:
		if o.Err != nil {
			return o.Err.Error()
		}
		return "request failed"
	}
	return ""
}

// StatusError reports a non-success HTTP status.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code (%d)", e.Method, e.URL, e.Code)
}

// SearchHit is one live search result.
type SearchHit struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchResponse is one page of search hits. Next reports whether more hits
// exist beyond the page.
type SearchResponse struct {
	Hits []SearchHit `json:"hits"`
	Next More        `json:"next"`
}

// More decodes the "next" field. Older servers send the link to the next page
// (or null); newer ones send a boolean.
type More bool

func (m *More) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*m = false
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*m = s != ""
	default:
		v, err := strconv.ParseBool(string(b))
		if err != nil {
			return fmt.Errorf("next: %w", err)
		}
		*m = More(v)
	}
	return nil
}

// Display is what the page currently shows for the article outside the form.
type Display struct {
	URL         string
	Title       string
	Slug        string
	Body        string
	Rendered    string
	Theme       string
	Revision    string
	LastUpdated string
	ArticleID   string
}

// Page is an article page as served by the wiki.
type Page struct {
	URL     string
	Action  string
	Editing bool
	Display Display
	Form    EditForm
}
