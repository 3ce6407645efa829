package pgn

import (
	"go.uber.org/zap"

	"github.com/corvidlabs/pgnbook/pkg/chess"
	"github.com/corvidlabs/pgnbook/pkg/polyglot"
)

// ReplayPolicy selects what ReplayGame does as it walks a game's moves:
// PolicyEmit appends Polyglot entries and logs malformed SAN, PolicyDryRun
// does neither - useful for stepping a game forward move by move without
// mutating any book.
type ReplayPolicy uint8

const (
	PolicyEmit ReplayPolicy = iota
	PolicyDryRun
)

// ReplayResult is what ReplayGame hands back.
type ReplayResult struct {
	Entries []polyglot.Entry
	// Fixed counts SAN tokens DecodeSAN had to resolve by picking the first
	// of several ambiguous candidates.
	Fixed int
	// StoppedAt is the token index replay reached: len(Tokens) if the whole
	// game was consumed, otherwise the index of the first token that could
	// not be decoded.
	StoppedAt int
}

// ReplayGame walks g's SAN tokens against eng from its starting FEN (or the
// standard start position if none was recorded), emitting one Polyglot
// entry per non-null move. The "learn" field packs the game result into its
// upper two bits and the 8-byte-aligned game offset into the remaining 30.
func ReplayGame(eng chess.Engine, g CompletedGame, policy ReplayPolicy, log *zap.Logger) ReplayResult {
	if log == nil {
		log = zap.NewNop()
	}
	if err := eng.Reset(g.FEN); err != nil {
		log.Warn("pgn: invalid FEN tag, falling back to the start position",
			zap.Error(err), zap.Uint64("offset", g.GameOfs))
		_ = eng.Reset("")
	}

	learn := (uint32(g.Result)&3)<<30 | uint32((g.GameOfs>>3)&0x3FFFFFFF)

	var res ReplayResult
	for idx, tok := range g.Tokens {
		move, ambiguous, err := eng.SANToMove(tok)
		if err != nil {
			if policy == PolicyEmit {
				log.Warn("pgn: wrong move notation",
					zap.String("san", tok), zap.Uint64("offset", g.GameOfs))
			}
			res.StoppedAt = idx
			return res
		}
		if ambiguous {
			res.Fixed++
		}

		if move.Null {
			eng.DoNullMove()
			continue
		}

		if policy == PolicyEmit {
			res.Entries = append(res.Entries, polyglot.Entry{
				Key:    eng.Key(),
				Move:   chess.ToPolyglot(move),
				Weight: 1,
				Learn:  learn,
			})
		}
		eng.DoMove(move)
	}

	res.StoppedAt = len(g.Tokens)
	return res
}
