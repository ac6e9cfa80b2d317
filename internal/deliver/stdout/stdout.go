package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/willow-ren/larkcard/internal/model"
)

// Deliverer prints the message payload as indented JSON instead of posting
// it anywhere. Used for dry runs and for echoing alongside a real send.
type Deliverer struct {
	w io.Writer
}

// New creates a stdout deliverer. A nil writer defaults to os.Stdout.
func New(w io.Writer) *Deliverer {
	if w == nil {
		w = os.Stdout
	}
	return &Deliverer{w: w}
}

func (d *Deliverer) Deliver(_ context.Context, msg model.Message) error {
	enc := json.NewEncoder(d.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(msg); err != nil {
		return fmt.Errorf("stdout deliver: %w", err)
	}
	return nil
}
