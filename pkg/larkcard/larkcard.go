package larkcard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/willow-ren/larkcard/internal/card"
	"github.com/willow-ren/larkcard/internal/deliver/webhook"
	"github.com/willow-ren/larkcard/internal/model"
	"github.com/willow-ren/larkcard/internal/render"
)

// RenderFunc turns one record into a markdown block, given the record, its
// zero-based index, and the full sequence.
type RenderFunc func(rec Record, index int, all []Record) string

// Client renders record lists into interactive cards and posts them to a
// webhook. Safe for concurrent use.
type Client struct {
	renderer render.Renderer
	layout   card.Layout
	hook     *webhook.Deliverer
}

// New creates a Client for the given webhook URL. The theme is validated
// here, before anything is rendered or sent.
func New(webhookURL string, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !card.ValidTheme(o.theme) {
		return nil, fmt.Errorf("larkcard: %w: %q", card.ErrUnknownTheme, o.theme)
	}

	hookOpts := []webhook.Option{webhook.WithTimeout(o.timeout)}
	if o.httpClient != nil {
		hookOpts = append(hookOpts, webhook.WithHTTPClient(o.httpClient))
	}

	return &Client{
		renderer: buildRenderer(o),
		layout: card.Layout{
			Title:      o.title,
			HeaderText: o.headerText,
			Theme:      o.theme,
			Wide:       !o.narrow,
		},
		hook: webhook.New(webhookURL, hookOpts...),
	}, nil
}

// Send renders the records into a card and posts it to the webhook exactly
// once. A failed delivery is not retried.
func (c *Client) Send(ctx context.Context, records []Record) error {
	msg, err := c.message(records)
	if err != nil {
		return err
	}
	if err := c.hook.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("larkcard: %w", err)
	}
	return nil
}

// Payload renders the records and returns the JSON message envelope without
// sending it. Useful for dry runs and tests.
func (c *Client) Payload(records []Record) ([]byte, error) {
	msg, err := c.message(records)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("larkcard: marshal: %w", err)
	}
	return body, nil
}

func (c *Client) message(records []Record) (model.Message, error) {
	internal := make([]model.Record, len(records))
	for i, rec := range records {
		internal[i] = recordToInternal(rec)
	}

	items := render.RenderAll(c.renderer, internal)
	doc, err := card.Assemble(c.layout, items)
	if err != nil {
		// Unreachable after New's theme check, kept for the contract.
		return model.Message{}, fmt.Errorf("larkcard: %w", err)
	}
	return model.NewMessage(doc), nil
}

// buildRenderer wires the options into the built-in classifier, or wraps a
// custom RenderFunc when one was supplied.
func buildRenderer(o options) render.Renderer {
	if o.renderer != nil {
		f := o.renderer
		return render.RendererFunc(func(rec model.Record, index int, all []model.Record) string {
			public := make([]Record, len(all))
			for i, r := range all {
				public[i] = recordFromInternal(r)
			}
			return f(recordFromInternal(rec), index, public)
		})
	}

	rules := render.DefaultRules()
	if len(o.linkFields) > 0 {
		rules.LinkFields = toSet(o.linkFields)
	}
	if len(o.statusFields) > 0 {
		rules.StatusFields = toSet(o.statusFields)
	}
	for k, v := range o.glyphs {
		rules.Glyphs[k] = v
	}
	rules.LinkBaseURL = o.linkBaseURL
	rules.Compact = o.compact
	rules.LabelURL = o.labelURL
	return render.New(rules)
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
