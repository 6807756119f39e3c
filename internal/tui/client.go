package tui

import (
	"context"

	"wikitui/internal/wiki"
)

// Wiki is the part of the wiki client a page uses.
type Wiki interface {
	PageURL() string
	At(target string) (Wiki, error)
	Load(ctx context.Context) (wiki.Page, error)
	Save(ctx context.Context, target, encoded string) wiki.Outcome
	Search(ctx context.Context, query string) (wiki.SearchResponse, error)
	SearchURL(query string, limit int) string
}

// FromClient adapts a wiki.Client.
func FromClient(c *wiki.Client) Wiki { return clientAdapter{c} }

type clientAdapter struct{ *wiki.Client }

func (a clientAdapter) At(target string) (Wiki, error) {
	c, err := a.Client.At(target)
	if err != nil {
		return nil, err
	}
	return clientAdapter{c}, nil
}
