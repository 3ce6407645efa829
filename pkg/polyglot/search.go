package polyglot

import "encoding/binary"

// Probe binary-searches data (a sorted, 16-byte-record Polyglot book's raw
// bytes) for key, returning the byte offset of the first entry in key's run
// of matching entries, mirroring PolyglotBook::probe.
func Probe(data []byte, key uint64) (offset int64, found bool) {
	n := len(data) / EntrySize
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) / 2
		k := binary.BigEndian.Uint64(data[mid*EntrySize:])
		switch {
		case k < key:
			lo = mid + 1
		case k > key:
			hi = mid
		default:
			for mid > 0 && binary.BigEndian.Uint64(data[(mid-1)*EntrySize:]) == key {
				mid--
			}
			return int64(mid * EntrySize), true
		}
	}
	return 0, false
}
