package multi

import (
	"context"
	"errors"

	"github.com/willow-ren/larkcard/internal/deliver"
	"github.com/willow-ren/larkcard/internal/model"
)

// Multi fans one message out to several deliverers sequentially. Every
// deliverer sees the message even if an earlier one fails; errors are
// collected and joined.
type Multi struct {
	deliverers []deliver.Deliverer
}

// New creates a Multi that fans out to the given deliverers.
func New(deliverers ...deliver.Deliverer) *Multi {
	return &Multi{deliverers: deliverers}
}

func (m *Multi) Deliver(ctx context.Context, msg model.Message) error {
	var errs []error
	for _, d := range m.deliverers {
		if err := d.Deliver(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
