// Package upload stages incoming multipart files in a transient directory so
// they can be attached to outbound mail by path.
package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// StoredFile describes a staged upload.
type StoredFile struct {
	Path         string // location inside the staging directory
	OriginalName string // client-supplied filename, sanitized
}

// Sink writes uploads into a single staging directory. Stored names carry a
// nanosecond timestamp prefix so concurrent uploads of the same filename never
// collide; the create is O_EXCL as a backstop.
type Sink struct {
	dir string
}

// NewSink creates the staging directory if missing. An unusable directory is
// a startup failure, not a per-request one.
func NewSink(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Sink{dir: dir}, nil
}

// Dir returns the staging directory path.
func (s *Sink) Dir() string {
	return s.dir
}

// Store writes one multipart file to the staging directory and returns where
// it landed. The original filename is reduced to its base name so a crafted
// name cannot escape the directory.
func (s *Sink) Store(fh *multipart.FileHeader) (*StoredFile, error) {
	name := sanitizeFilename(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	for {
		path := filepath.Join(s.dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), name))
		dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create stored file: %w", err)
		}

		if _, err := io.Copy(dst, src); err != nil {
			dst.Close()
			os.Remove(path)
			return nil, fmt.Errorf("failed to write stored file: %w", err)
		}
		if err := dst.Close(); err != nil {
			os.Remove(path)
			return nil, fmt.Errorf("failed to close stored file: %w", err)
		}

		return &StoredFile{Path: path, OriginalName: name}, nil
	}
}

// Remove deletes a staged file once the request that produced it is done.
func (s *Sink) Remove(sf *StoredFile) error {
	if sf == nil {
		return nil
	}
	return os.Remove(sf.Path)
}

func sanitizeFilename(name string) string {
	base := filepath.Base(filepath.Clean(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	return base
}
