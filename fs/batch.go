package fs

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/open-contracting/ocdsindex"
)

// ReadBatch reads a batch from a JSON file.
func ReadBatch(path string) (*ocdsindex.Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch: %w", err)
	}

	var batch ocdsindex.Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, ocdsindex.Errorf(ocdsindex.EINVALID, "failed to parse batch %s: %v", path, err)
	}

	if err := batch.Validate(); err != nil {
		return nil, err
	}
	return &batch, nil
}

// WriteBatch writes a batch as JSON. The file is written to a temporary path
// next to the destination and renamed into place, so readers never observe a
// partial batch.
func WriteBatch(path string, batch *ocdsindex.Batch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
