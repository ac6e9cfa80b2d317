package input

import (
	"fmt"
	"os"

	"github.com/willow-ren/larkcard/internal/model"
)

// Read decodes the record sequence from the named file, or from stdin when
// path is empty. Unreadable files, unparsable JSON, and non-array top-level
// values are all input format errors.
func Read(path string) ([]model.Record, error) {
	if path == "" {
		return model.DecodeRecords(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	records, err := model.DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("input: %s: %w", path, err)
	}
	return records, nil
}
