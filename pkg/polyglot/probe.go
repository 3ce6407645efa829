package polyglot

// MoveStats is the aggregated view of one distinct move available from a
// probed position: its weight, the game-result breakdown of every recorded
// instance, and a sample of the PGN byte offsets it was played at.
type MoveStats struct {
	Move      uint16
	Weight    uint16
	Games     uint64
	WhiteWins uint64
	BlackWins uint64
	Draws     uint64
	Offsets   []uint64
}

// ProbeKey walks every entry sharing the key found at offset, grouping
// consecutive identical moves (Reweight leaves entries sharing a key and move
// adjacent, so a single linear scan suffices). limit bounds how many PGN offsets are
// sampled per move; skip discards that many matches before sampling starts -
// useful for paging through a heavily-played position without loading every
// offset into memory.
func ProbeKey(data []byte, offset int64, limit, skip int) []MoveStats {
	n := len(data) / EntrySize
	idx := int(offset) / EntrySize
	if idx < 0 || idx >= n {
		return nil
	}

	key := Decode(data[idx*EntrySize:]).Key
	var stats []MoveStats

	for idx < n && Decode(data[idx*EntrySize:]).Key == key {
		move := Decode(data[idx*EntrySize:]).Move
		ms := MoveStats{Move: move, Weight: Decode(data[idx*EntrySize:]).Weight}
		skipCounter := skip

		for idx < n {
			e := Decode(data[idx*EntrySize:])
			if e.Key != key || e.Move != move {
				break
			}

			if skipCounter == 0 && len(ms.Offsets) < limit {
				ms.Offsets = append(ms.Offsets, e.GameOffset())
			}
			if skipCounter > 0 {
				skipCounter--
			}

			switch e.Result() {
			case 0:
				ms.WhiteWins++
			case 1:
				ms.BlackWins++
			case 2:
				ms.Draws++
			}
			ms.Games++
			idx++
		}

		stats = append(stats, ms)
	}

	return stats
}
