package wiki

import (
	"net/url"
	"strings"
)

// Names of the article form's controls.
const (
	FieldTitle        = "title"
	FieldBody         = "body"
	FieldTheme        = "theme"
	FieldBaseRevision = "base_revision"
)

// FormField mirrors one control of the article form. Radio fields make up a
// mutually exclusive group sharing a Name; only the Checked one is submitted.
type FormField struct {
	Name     string
	Value    string
	Radio    bool
	Checked  bool
	Disabled bool
}

// Fields lays out the form the way the article page declares it: title, body,
// one radio option per theme, then the hidden base revision.
func (f EditForm) Fields(disabled bool) []FormField {
	out := make([]FormField, 0, len(Themes)+3)
	out = append(out,
		FormField{Name: FieldTitle, Value: f.Title, Disabled: disabled},
		FormField{Name: FieldBody, Value: f.Body, Disabled: disabled},
	)
	for _, t := range Themes {
		out = append(out, FormField{Name: FieldTheme, Value: t, Radio: true, Checked: t == f.Theme, Disabled: disabled})
	}
	out = append(out, FormField{Name: FieldBaseRevision, Value: f.BaseRevision, Disabled: disabled})
	return out
}

// EncodeFields serializes named, enabled fields as an
// application/x-www-form-urlencoded body, keeping declaration order and
// dropping unchecked radio options.
func EncodeFields(fields []FormField) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Name == "" || f.Disabled {
			continue
		}
		if f.Radio && !f.Checked {
			continue
		}
		parts = append(parts, url.QueryEscape(f.Name)+"="+url.QueryEscape(f.Value))
	}
	return strings.Join(parts, "&")
}

// HasUnsavedEdits reports whether any field of form differs from snapshot.
func HasUnsavedEdits(form, snapshot EditForm) bool {
	return form != snapshot
}
