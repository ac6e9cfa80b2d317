package card

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layout(theme string) Layout {
	return Layout{
		Title:      "Report",
		HeaderText: "**Summary**",
		Theme:      theme,
		Wide:       true,
	}
}

func TestAssemble_BlockCountAndOrder(t *testing.T) {
	items := []string{"first", "second", "third"}

	c, err := Assemble(layout("blue"), items)
	require.NoError(t, err)

	// Header block plus one block per item, in input order.
	require.Len(t, c.Elements, len(items)+1)
	assert.Equal(t, "**Summary**", c.Elements[0].Text.Content)
	for i, it := range items {
		assert.Equal(t, "div", c.Elements[i+1].Tag)
		assert.Equal(t, "lark_md", c.Elements[i+1].Text.Tag)
		assert.Equal(t, it, c.Elements[i+1].Text.Content)
	}
}

func TestAssemble_EmptyItems(t *testing.T) {
	c, err := Assemble(layout("blue"), nil)
	require.NoError(t, err)
	require.Len(t, c.Elements, 1)
}

func TestAssemble_HeaderAndConfig(t *testing.T) {
	l := layout("green")
	l.Wide = false

	c, err := Assemble(l, nil)
	require.NoError(t, err)

	assert.False(t, c.Config.WideScreenMode)
	assert.Equal(t, "green", c.Header.Template)
	assert.Equal(t, "plain_text", c.Header.Title.Tag)
	assert.Equal(t, "Report", c.Header.Title.Content)
}

func TestAssemble_TitleCopiedVerbatim(t *testing.T) {
	l := layout("blue")
	l.Title = "  spaced **markdown** title  "

	c, err := Assemble(l, nil)
	require.NoError(t, err)
	assert.Equal(t, l.Title, c.Header.Title.Content)
}

func TestAssemble_UnknownThemeRejected(t *testing.T) {
	_, err := Assemble(layout("neon"), []string{"x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTheme))
	assert.Contains(t, err.Error(), "neon")
}

func TestValidTheme_FullPalette(t *testing.T) {
	for _, theme := range Themes {
		t.Run(theme, func(t *testing.T) {
			assert.True(t, ValidTheme(theme))
			_, err := Assemble(layout(theme), []string{"x"})
			assert.NoError(t, err)
		})
	}
	assert.False(t, ValidTheme("Blue"), "theme names are case-sensitive")
	assert.False(t, ValidTheme(""))
}

func TestAssemble_ManyItems(t *testing.T) {
	items := make([]string, 100)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	c, err := Assemble(layout("grey"), items)
	require.NoError(t, err)
	require.Len(t, c.Elements, 101)
	assert.Equal(t, "item 99", c.Elements[100].Text.Content)
}
