package data

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ErrUnknownFormat is returned for asset files that are not YAML (optionally zstd-compressed).
var ErrUnknownFormat = errors.New("unknown asset format")

// OpenAsset opens a YAML asset file. Files ending in ".zst" are decompressed
// transparently. The caller must Close the returned reader.
func OpenAsset(path string) (io.ReadCloser, error) {
	name := path
	compressed := strings.EqualFold(filepath.Ext(name), ".zst")
	if compressed {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("opening asset %s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening asset %s: %w", path, err)
	}
	if !compressed {
		return f, nil
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening zstd stream %s: %w", path, err)
	}
	return &zstdAsset{dec: dec, file: f}, nil
}

// zstdAsset closes both the decoder and the underlying file.
type zstdAsset struct {
	dec  *zstd.Decoder
	file *os.File
}

func (a *zstdAsset) Read(p []byte) (int, error) {
	return a.dec.Read(p)
}

func (a *zstdAsset) Close() error {
	a.dec.Close()
	return a.file.Close()
}

// WriteCompressedAsset writes data to path as a zstd stream.
// Used by tools that pack map and tiledata fixtures.
func WriteCompressedAsset(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating asset %s: %w", path, err)
	}

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("creating zstd stream %s: %w", path, err)
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("writing asset %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flushing asset %s: %w", path, err)
	}
	return f.Close()
}
