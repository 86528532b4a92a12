// Package filestore stores attachment payloads on the local filesystem.
// Metadata lives in PostgreSQL; this package only sees opaque keys and bytes.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
)

// Store is the attachment byte storage used by the attachment service.
type Store interface {
	// Save fully consumes r and persists it under key, returning the byte count.
	Save(ctx context.Context, key string, r io.Reader) (int64, error)
	// Delete removes the stored payload.
	Delete(ctx context.Context, key string) error
}

// NewKey returns a fresh storage key. Keys never derive from client-submitted
// file names, so a hostile name cannot escape the store directory.
func NewKey() string {
	return uuid.Must(uuid.NewV4()).String()
}

// Disk is a Store over a single local directory.
type Disk struct{ root string }

// NewDisk creates the root directory if needed and returns a disk store.
func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create root: %w", err)
	}
	return &Disk{root: root}, nil
}

func (d *Disk) path(key string) string {
	// Keys are UUIDs generated by NewKey; Base strips anything else.
	return filepath.Join(d.root, filepath.Base(key))
}

// Save writes the payload to a temp file and renames it into place, so a
// failed upload never leaves a partial object under the final key.
func (d *Disk) Save(ctx context.Context, key string, r io.Reader) (n int64, err error) {
	tmp, err := os.CreateTemp(d.root, "upload-*")
	if err != nil {
		return 0, fmt.Errorf("filestore: temp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = ctx.Err(); err != nil {
		return 0, err
	}
	if n, err = io.Copy(tmp, r); err != nil {
		return 0, fmt.Errorf("filestore: write: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("filestore: close: %w", err)
	}
	if err = os.Rename(tmp.Name(), d.path(key)); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("filestore: rename: %w", err)
	}
	return n, nil
}

// Delete removes the stored payload. Deleting a missing key is an error; the
// caller decides whether that matters.
func (d *Disk) Delete(ctx context.Context, key string) error {
	if err := os.Remove(d.path(key)); err != nil {
		return fmt.Errorf("filestore: delete %s: %w", key, err)
	}
	return nil
}
