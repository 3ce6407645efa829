// Package polyglot reads and writes the Polyglot opening-book binary
// format: a sequence of 16-byte big-endian records sorted by key, used by
// many UCI chess engines as an opening book.
package polyglot

import "encoding/binary"

// EntrySize is the on-disk size of one Polyglot record.
const EntrySize = 16

// Entry is one Polyglot record: a Zobrist position key, an encoded move, a
// frequency weight and a "learn" field packing game result and PGN offset.
// Field layout matches the standard big-endian Polyglot book format.
type Entry struct {
	Key    uint64
	Move   uint16
	Weight uint16
	Learn  uint32
}

// Less orders entries the way a Polyglot book file requires them sorted: key
// ascending, then (within a key) weight descending, then move descending.
func (e Entry) Less(o Entry) bool {
	if e.Key != o.Key {
		return e.Key < o.Key
	}
	if e.Weight != o.Weight {
		return e.Weight > o.Weight
	}
	return e.Move > o.Move
}

// Encode appends e's big-endian wire representation to dst.
func (e Entry) Encode(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint64(dst, e.Key)
	dst = binary.BigEndian.AppendUint16(dst, e.Move)
	dst = binary.BigEndian.AppendUint16(dst, e.Weight)
	dst = binary.BigEndian.AppendUint32(dst, e.Learn)
	return dst
}

// Decode reads one entry from the front of b, which must be at least
// EntrySize bytes.
func Decode(b []byte) Entry {
	return Entry{
		Key:    binary.BigEndian.Uint64(b[0:8]),
		Move:   binary.BigEndian.Uint16(b[8:10]),
		Weight: binary.BigEndian.Uint16(b[10:12]),
		Learn:  binary.BigEndian.Uint32(b[12:16]),
	}
}

// Result unpacks the game-result bucket packed into Learn's upper two bits.
func (e Entry) Result() uint8 { return uint8(e.Learn >> 30 & 3) }

// GameOffset unpacks the 8-byte-aligned PGN byte offset packed into Learn's
// lower 30 bits.
func (e Entry) GameOffset() uint64 { return uint64(e.Learn&0x3FFFFFFF) << 3 }
