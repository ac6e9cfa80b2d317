package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/willow-ren/larkcard/internal/model"
)

const (
	// linkLabel is the fixed hyperlink label used when Rules.LabelURL is off.
	linkLabel = "view details"

	// nullPlaceholder stands in for null or missing values.
	nullPlaceholder = "—"

	// maxLabelRunes caps URL-as-label length: URLs at or over this length
	// are cut to maxLabelRunes-3 runes plus an ellipsis.
	maxLabelRunes = 30
)

// Rules configures the built-in field classifier.
type Rules struct {
	LinkFields   map[string]bool   // field names rendered as hyperlinks
	StatusFields map[string]bool   // field names eligible for glyph mapping
	Glyphs       map[string]string // lowercase status value -> glyph
	LinkBaseURL  string            // completes relative link values; empty disables
	Compact      bool              // join fields with " | " instead of newlines
	LabelURL     bool              // link label = truncated URL instead of the fixed literal
}

// DefaultLinkFields returns the field names treated as link-bearing by default.
func DefaultLinkFields() map[string]bool {
	return map[string]bool{
		"url":     true,
		"link":    true,
		"href":    true,
		"website": true,
		"page":    true,
	}
}

// DefaultStatusFields returns the field names eligible for glyph mapping by default.
func DefaultStatusFields() map[string]bool {
	return map[string]bool{
		"status":  true,
		"state":   true,
		"result":  true,
		"level":   true,
		"outcome": true,
	}
}

// DefaultGlyphs returns the built-in lowercase status value -> glyph mapping.
func DefaultGlyphs() map[string]string {
	return map[string]string{
		"success":     "✅",
		"ok":          "✅",
		"passed":      "✅",
		"done":        "✅",
		"failed":      "❌",
		"failure":     "❌",
		"error":       "❌",
		"warning":     "⚠️",
		"warn":        "⚠️",
		"pending":     "⏳",
		"queued":      "⏳",
		"running":     "\U0001f504",
		"in progress": "\U0001f504",
		"skipped":     "⏭️",
	}
}

// DefaultRules returns a Rules with the default link fields, status fields,
// and glyph mapping, multi-line layout, and the fixed link label.
func DefaultRules() Rules {
	return Rules{
		LinkFields:   DefaultLinkFields(),
		StatusFields: DefaultStatusFields(),
		Glyphs:       DefaultGlyphs(),
	}
}

// Renderer turns one record into a markdown block. Implementations receive
// the record, its zero-based index, and the full record sequence.
type Renderer interface {
	RenderItem(rec model.Record, index int, all []model.Record) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(rec model.Record, index int, all []model.Record) string

func (f RendererFunc) RenderItem(rec model.Record, index int, all []model.Record) string {
	return f(rec, index, all)
}

// Classifier is the default Renderer. Each field gets a three-way decision
// in fixed priority order: link, then status glyph, then plain text.
type Classifier struct {
	rules Rules
}

// New creates a Classifier using the given rules.
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// RenderItem formats one record. In multi-line mode the block starts with a
// bold **#N** heading (1-based); compact mode emits a single " | "-joined line.
func (c *Classifier) RenderItem(rec model.Record, index int, _ []model.Record) string {
	var lines []string
	sep := "\n"
	if c.rules.Compact {
		sep = " | "
	} else {
		lines = append(lines, fmt.Sprintf("**#%d**", index+1))
	}
	for _, f := range rec.Fields {
		lines = append(lines, c.renderField(f))
	}
	return strings.Join(lines, sep)
}

// renderField applies the link -> status -> plain decision to a single field.
func (c *Classifier) renderField(f model.Field) string {
	if url, ok := c.linkTarget(f); ok {
		return fmt.Sprintf("%s: [%s](%s)", f.Key, c.label(url), url)
	}
	if s, ok := f.Value.(string); ok && c.rules.StatusFields[f.Key] {
		if glyph, found := c.rules.Glyphs[strings.ToLower(s)]; found {
			return fmt.Sprintf("%s: %s %s", f.Key, glyph, s)
		}
	}
	return f.Key + ": " + formatValue(f.Value)
}

// linkTarget resolves a field to an absolute URL. Absolute values pass
// through untouched; relative values are joined onto the base URL when one
// is configured. Anything else falls through to plain rendering.
func (c *Classifier) linkTarget(f model.Field) (string, bool) {
	if !c.rules.LinkFields[f.Key] {
		return "", false
	}
	s, ok := f.Value.(string)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s, true
	}
	if c.rules.LinkBaseURL == "" {
		return "", false
	}
	base := c.rules.LinkBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(s, "/"), true
}

func (c *Classifier) label(url string) string {
	if !c.rules.LabelURL {
		return linkLabel
	}
	return truncate(url, maxLabelRunes)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) < max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// formatValue renders a non-link, non-status value as display text.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return nullPlaceholder
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		// Nested structures are opaque: show them as compact JSON.
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}

// RenderAll renders every record through r with per-record fault isolation:
// a panic while rendering one record becomes a one-line diagnostic for that
// record only, and processing continues. The result always has one entry per
// record, in input order.
func RenderAll(r Renderer, records []model.Record) []string {
	items := make([]string, len(records))
	for i, rec := range records {
		items[i] = renderOne(r, rec, i, records)
	}
	return items
}

func renderOne(r Renderer, rec model.Record, index int, all []model.Record) (item string) {
	defer func() {
		if p := recover(); p != nil {
			item = fmt.Sprintf("render error: %v", p)
		}
	}()
	return r.RenderItem(rec, index, all)
}
