package card

import (
	"errors"
	"fmt"
	"strings"

	"github.com/willow-ren/larkcard/internal/model"
)

// Themes is the fixed set of header color templates the endpoint accepts.
var Themes = []string{
	"carmine", "orange", "wathet", "turquoise", "green",
	"yellow", "red", "violet", "purple", "indigo",
	"grey", "default", "blue",
}

// ErrUnknownTheme reports a theme name outside the fixed palette.
var ErrUnknownTheme = errors.New("unknown card theme")

// ValidTheme reports whether name is one of the accepted header templates.
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Layout holds the card-level presentation settings.
type Layout struct {
	Title      string
	HeaderText string // markdown, copied verbatim into the first body block
	Theme      string
	Wide       bool
}

// Assemble builds the card document: a header block followed by one block
// per rendered item, in input order, with no reordering or filtering. The
// only failure mode is an unknown theme; given a valid one, Assemble is
// pure and total.
func Assemble(l Layout, items []string) (model.Card, error) {
	if !ValidTheme(l.Theme) {
		return model.Card{}, fmt.Errorf("%w: %q (valid: %s)",
			ErrUnknownTheme, l.Theme, strings.Join(Themes, ", "))
	}

	elements := make([]model.Element, 0, len(items)+1)
	elements = append(elements, model.Element{
		Tag:  "div",
		Text: model.Text{Tag: "lark_md", Content: l.HeaderText},
	})
	for _, it := range items {
		elements = append(elements, model.Element{
			Tag:  "div",
			Text: model.Text{Tag: "lark_md", Content: it},
		})
	}

	return model.Card{
		Config: model.CardConfig{WideScreenMode: l.Wide},
		Header: model.Header{
			Template: l.Theme,
			Title:    model.Text{Tag: "plain_text", Content: l.Title},
		},
		Elements: elements,
	}, nil
}
