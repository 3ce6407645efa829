package pgn

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

func openZstFile(path string) (RawSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pgn: opening %s: %w", path, err)
	}
	defer f.Close()
	return newZstSource(path, f)
}

func newZstSource(name string, r io.Reader) (RawSource, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("pgn: decompressing %s: %w", name, err)
	}
	defer zr.Close()
	return newMemSource(name, zr)
}
