package deliver

import (
	"context"

	"github.com/willow-ren/larkcard/internal/model"
)

// Deliverer sends a fully assembled message exactly once. Implementations do
// not retry; a nil return confirms delivery, a non-nil error is final and
// carries the diagnostic.
type Deliverer interface {
	Deliver(ctx context.Context, msg model.Message) error
}
