// ABOUTME: Data migration between mood storage backends.
// ABOUTME: Copies every record from source to destination with upsert semantics.

package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated records.
type MigrateSummary struct {
	Source  int
	Added   int
	Updated int
}

// MigrateData copies all records from src to dst. Records already in dst
// keep their position; a differing mood for the same date is overwritten.
func MigrateData(src, dst Repository) (*MigrateSummary, error) {
	records, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("load source records: %w", err)
	}

	result, err := ImportRecords(dst, records)
	if err != nil {
		return nil, fmt.Errorf("write destination records: %w", err)
	}

	return &MigrateSummary{
		Source:  len(records),
		Added:   result.Added,
		Updated: result.Updated,
	}, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
