package pgn

import "golang.org/x/exp/mmap"

// mmapSource wraps golang.org/x/exp/mmap.ReaderAt, giving the driver direct
// byte-indexed access to a plain PGN file without reading it into the
// process's own heap.
type mmapSource struct {
	name string
	r    *mmap.ReaderAt
}

func openPlainFile(path string) (RawSource, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mmapSource{name: path, r: r}, nil
}

func (s *mmapSource) At(i int) byte { return s.r.At(i) }
func (s *mmapSource) Len() int      { return s.r.Len() }
func (s *mmapSource) Close() error  { return s.r.Close() }
func (s *mmapSource) Name() string  { return s.name }
