// Package compression transparently reads and writes compressed settings files.
// The codec is chosen from the file name suffix: .xz, .gz or .bz2 (read only).
package compression

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/wcagcheck/internal/security"
)

// Codec identifies a compression format.
type Codec string

const (
	None  Codec = ""
	Xz    Codec = "xz"
	Gzip  Codec = "gzip"
	Bzip2 Codec = "bzip2"
)

// Detect returns the codec implied by name and the name with the
// compression suffix removed (e.g. "scheme.json.xz" -> Xz, "scheme.json").
func Detect(name string) (Codec, string) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xz":
		return Xz, strings.TrimSuffix(name, filepath.Ext(name))
	case ".gz":
		return Gzip, strings.TrimSuffix(name, filepath.Ext(name))
	case ".bz2":
		return Bzip2, strings.TrimSuffix(name, filepath.Ext(name))
	default:
		return None, name
	}
}

// Read decompresses the stream r with codec. At most maxBytes of output are
// read; larger inputs fail with security.ErrSizeLimit without being buffered.
func Read(codec Codec, r io.Reader, maxBytes int64) ([]byte, error) {
	var dr io.Reader
	switch codec {
	case None:
		dr = r
	case Xz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		dr = xzr
	case Gzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		dr = gzr
	case Bzip2:
		dr = bzip2.NewReader(r)
	default:
		return nil, fmt.Errorf("unsupported compression: %s", codec)
	}

	out, err := security.ReadAllLimited(dr, maxBytes)
	if err != nil {
		if codec == None {
			return nil, fmt.Errorf("failed to read data: %w", err)
		}
		return nil, fmt.Errorf("failed to decompress %s data: %w", codec, err)
	}
	return out, nil
}

// Encode compresses data with codec.
func Encode(codec Codec, data []byte) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch codec {
	case None:
		return data, nil
	case Xz:
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzw
	case Gzip:
		w = gzip.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("writing %s is not supported", codec)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish %s stream: %w", codec, err)
	}
	return buf.Bytes(), nil
}
