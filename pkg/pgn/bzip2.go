package pgn

import (
	"fmt"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"
)

func openBzip2File(path string) (RawSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pgn: opening %s: %w", path, err)
	}
	defer f.Close()
	return newBzip2Source(path, f)
}

func newBzip2Source(name string, r io.Reader) (RawSource, error) {
	br, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, fmt.Errorf("pgn: decompressing %s: %w", name, err)
	}
	defer br.Close()
	return newMemSource(name, br)
}
