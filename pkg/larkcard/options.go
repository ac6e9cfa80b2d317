package larkcard

import (
	"net/http"
	"time"
)

type options struct {
	title        string
	headerText   string
	theme        string
	narrow       bool
	compact      bool
	linkFields   []string
	linkBaseURL  string
	labelURL     bool
	statusFields []string
	glyphs       map[string]string
	renderer     RenderFunc
	timeout      time.Duration
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*options)

// WithTitle sets the card title. Default: "System Notice".
func WithTitle(t string) Option {
	return func(o *options) { o.title = t }
}

// WithHeaderText sets the markdown header block. Default: "**Data Report**".
func WithHeaderText(text string) Option {
	return func(o *options) { o.headerText = text }
}

// WithTheme sets the header color theme. Must be one of the fixed palette
// (carmine, orange, wathet, turquoise, green, yellow, red, violet, purple,
// indigo, grey, default, blue); New rejects anything else. Default: "blue".
func WithTheme(theme string) Option {
	return func(o *options) { o.theme = theme }
}

// WithNarrow disables wide-screen mode.
func WithNarrow() Option {
	return func(o *options) { o.narrow = true }
}

// WithCompact joins each record's fields into a single " | "-separated line
// instead of one line per field.
func WithCompact(compact bool) Option {
	return func(o *options) { o.compact = compact }
}

// WithLinkFields replaces the set of field names rendered as hyperlinks.
// Default: url, link, href, website, page.
func WithLinkFields(names ...string) Option {
	return func(o *options) { o.linkFields = names }
}

// WithLinkBaseURL sets the base URL used to complete relative link values.
// Without it, relative values fall back to plain rendering.
func WithLinkBaseURL(base string) Option {
	return func(o *options) { o.linkBaseURL = base }
}

// WithLinkLabelURL uses the (truncated) URL itself as the hyperlink label
// instead of the fixed "view details" literal.
func WithLinkLabelURL() Option {
	return func(o *options) { o.labelURL = true }
}

// WithStatusFields replaces the set of field names eligible for glyph
// mapping. Default: status, state, result, level, outcome.
func WithStatusFields(names ...string) Option {
	return func(o *options) { o.statusFields = names }
}

// WithGlyphs merges the given lowercase value -> glyph entries over the
// built-in mapping.
func WithGlyphs(glyphs map[string]string) Option {
	return func(o *options) { o.glyphs = glyphs }
}

// WithRenderer substitutes a custom per-record renderer, replacing the
// built-in field classification entirely. Panic isolation still applies
// around it.
func WithRenderer(f RenderFunc) Option {
	return func(o *options) { o.renderer = f }
}

// WithTimeout sets the delivery timeout. Default: 10s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient replaces the HTTP client used for delivery.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func defaultOptions() options {
	return options{
		title:      "System Notice",
		headerText: "**Data Report**",
		theme:      "blue",
		timeout:    10 * time.Second,
	}
}
