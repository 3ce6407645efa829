package chess

// Zobrist key construction: a fixed xorshift64* generator, seeded once,
// produces one random value per piece-square, per castling right, per
// en-passant file and one for side to move. The fixed seed and table-fill
// order make keys identical across runs, so books built and probed by this
// package agree with each other. The tables are generated, not the
// published Polyglot random-number array, so keys are not the ones found in
// books built by other Polyglot tools.
const zobristSeed = 1070372

type prng struct{ state uint64 }

func newPRNG(seed uint64) *prng { return &prng{state: seed} }

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 2685821657736338717
}

var (
	zobristPSQ      [2][7][64]uint64
	zobristCastling [4]uint64
	zobristEPFile   [8]uint64
	zobristSide     uint64
)

func init() {
	rng := newPRNG(zobristSeed)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := Square(0); sq < 64; sq++ {
				zobristPSQ[c][pt][sq] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for i := range zobristEPFile {
		zobristEPFile[i] = rng.next()
	}
	zobristSide = rng.next()
}

// Key computes the Zobrist key of the position, suitable for use as a
// Polyglot book entry's "key" field.
func (p *Position) Key() uint64 {
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLS1B()
				h ^= zobristPSQ[c][pt][sq]
			}
		}
	}

	rights := [4]uint8{CastleWK, CastleWQ, CastleBK, CastleBQ}
	for i, r := range rights {
		if p.castle&r != 0 {
			h ^= zobristCastling[i]
		}
	}

	if p.epSq != NoSquare {
		// Only hash the en-passant file if a pawn of the side to move can
		// actually capture en passant - Polyglot only counts the square as
		// "live" when a capture is possible, not merely recorded in the FEN.
		if p.pieces[p.side][Pawn]&pawnAttacks[p.side.Opponent()][p.epSq] != 0 {
			h ^= zobristEPFile[p.epSq.File()]
		}
	}

	if p.side == White {
		h ^= zobristSide
	}

	return h
}
