package pipeline

import (
	"context"
	"fmt"

	"github.com/willow-ren/larkcard/internal/card"
	"github.com/willow-ren/larkcard/internal/deliver"
	"github.com/willow-ren/larkcard/internal/model"
	"github.com/willow-ren/larkcard/internal/render"
)

// Pipeline connects a renderer, the card assembler, and a deliverer into a
// single-pass run: records in, one delivered card out.
type Pipeline struct {
	renderer  render.Renderer
	layout    card.Layout
	deliverer deliver.Deliverer
}

// New creates a Pipeline from the given components.
func New(r render.Renderer, l card.Layout, d deliver.Deliverer) *Pipeline {
	return &Pipeline{
		renderer:  r,
		layout:    l,
		deliverer: d,
	}
}

// Run renders the records, assembles the card, and delivers it exactly once.
// Render faults are isolated per record inside RenderAll and never surface
// here; assembly fails only on an invalid theme, and a delivery error is
// final (no retry).
func (p *Pipeline) Run(ctx context.Context, records []model.Record) error {
	items := render.RenderAll(p.renderer, records)

	c, err := card.Assemble(p.layout, items)
	if err != nil {
		return fmt.Errorf("pipeline assemble: %w", err)
	}

	if err := p.deliverer.Deliver(ctx, model.NewMessage(c)); err != nil {
		return fmt.Errorf("pipeline deliver: %w", err)
	}
	return nil
}
