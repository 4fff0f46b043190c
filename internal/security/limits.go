// Package security provides guards for reading untrusted input files.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MaxSettingsSize is the largest decoded settings or config file accepted.
const MaxSettingsSize = 1 << 20

// ErrSizeLimit is returned once a LimitedReader has been exhausted.
var ErrSizeLimit = errors.New("input size limit exceeded")

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when reading compressed files.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// ReadAllLimited reads r to EOF, failing with ErrSizeLimit if it holds more
// than maxBytes.
func ReadAllLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	// One extra byte distinguishes "exactly maxBytes" from "too large".
	data, err := io.ReadAll(NewLimitedReader(r, maxBytes+1))
	if err != nil && !errors.Is(err, ErrSizeLimit) {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrSizeLimit, maxBytes)
	}
	return data, nil
}

// ValidateFilePath checks that path names an existing regular file.
func ValidateFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	info, err := os.Stat(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	return nil
}
