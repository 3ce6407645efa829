package chess

// pawnPushDir returns +1 for White (toward rank 8) and -1 for Black.
func pawnPushDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnStartRank(c Color) int {
	if c == White {
		return 1
	}
	return 6
}

func pawnPromoRank(c Color) int {
	if c == White {
		return 7
	}
	return 0
}

// LegalMoves returns every move the side to move may legally play.
func (p *Position) LegalMoves() []Move {
	pseudo := p.pseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		next := p.Apply(m)
		if !next.IsAttacked(next.kingSquare(p.side), p.side.Opponent()) {
			legal = append(legal, m)
		}
	}
	return legal
}

func (p *Position) pseudoLegalMoves() []Move {
	var moves []Move
	us, them := p.side, p.side.Opponent()
	own := p.occupancy(us)
	occ := own | p.occupancy(them)

	moves = append(moves, p.pawnMoves(us, own, occ)...)

	addJumps := func(pt PieceType, attacks [64]Bitboard) {
		bb := p.pieces[us][pt]
		for bb != 0 {
			from := bb.PopLS1B()
			targets := attacks[from] &^ own
			for targets != 0 {
				to := targets.PopLS1B()
				moves = append(moves, p.makeMove(from, to, pt, them))
			}
		}
	}
	addJumps(Knight, knightAttacks)

	slide := func(pt PieceType, attackFn func(Square, Bitboard) Bitboard) {
		bb := p.pieces[us][pt]
		for bb != 0 {
			from := bb.PopLS1B()
			targets := attackFn(from, occ) &^ own
			for targets != 0 {
				to := targets.PopLS1B()
				moves = append(moves, p.makeMove(from, to, pt, them))
			}
		}
	}
	slide(Bishop, bishopAttacks)
	slide(Rook, rookAttacks)
	slide(Queen, queenAttacks)

	kingBB := p.pieces[us][King]
	if kingBB != 0 {
		from := kingBB.PopLS1B()
		targets := kingAttacks[from] &^ own
		for targets != 0 {
			to := targets.PopLS1B()
			moves = append(moves, p.makeMove(from, to, King, them))
		}
		moves = append(moves, p.castleMoves(us, occ)...)
	}

	return moves
}

func (p *Position) makeMove(from, to Square, pt PieceType, them Color) Move {
	return Move{From: from, To: to, Piece: pt, Capture: p.hasPieceAt(them, to)}
}

func (p *Position) hasPieceAt(c Color, sq Square) bool {
	for pt := Pawn; pt <= King; pt++ {
		if p.pieces[c][pt].Has(sq) {
			return true
		}
	}
	return false
}

func (p *Position) pawnMoves(us Color, own, occ Bitboard) []Move {
	var moves []Move
	them := us.Opponent()
	dir := pawnPushDir(us)
	startRank := pawnStartRank(us)
	promoRank := pawnPromoRank(us)

	bb := p.pieces[us][Pawn]
	for bb != 0 {
		from := bb.PopLS1B()
		f, r := from.File(), from.Rank()

		oneRank := r + dir
		if inBounds(f, oneRank) {
			to := MakeSquare(f, oneRank)
			if !occ.Has(to) {
				moves = append(moves, promoOrPlain(from, to, Pawn, false, false, to.Rank() == promoRank)...)
				if r == startRank {
					twoRank := r + 2*dir
					to2 := MakeSquare(f, twoRank)
					if !occ.Has(to2) {
						moves = append(moves, Move{From: from, To: to2, Piece: Pawn})
					}
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			nf := f + df
			if !inBounds(nf, oneRank) {
				continue
			}
			to := MakeSquare(nf, oneRank)
			if p.hasPieceAt(them, to) {
				moves = append(moves, promoOrPlain(from, to, Pawn, true, false, to.Rank() == promoRank)...)
			} else if to == p.epSq {
				moves = append(moves, Move{From: from, To: to, Piece: Pawn, Capture: true, EnPassant: true})
			}
		}
	}
	return moves
}

func promoOrPlain(from, to Square, pt PieceType, capture, ep bool, promo bool) []Move {
	if !promo {
		return []Move{{From: from, To: to, Piece: pt, Capture: capture, EnPassant: ep}}
	}
	promos := [4]PieceType{Queen, Rook, Bishop, Knight}
	out := make([]Move, 0, 4)
	for _, pp := range promos {
		out = append(out, Move{From: from, To: to, Piece: pt, Capture: capture, Promotion: pp})
	}
	return out
}

func (p *Position) castleMoves(us Color, occ Bitboard) []Move {
	var moves []Move
	them := us.Opponent()
	if p.IsAttacked(p.kingSquare(us), them) {
		return nil
	}

	type spec struct {
		right      uint8
		kingFrom   Square
		kingTo     Square
		rookFrom   Square
		between    []Square
		passSquare Square
	}

	var specs []spec
	if us == White {
		specs = []spec{
			{CastleWK, MakeSquare(4, 0), MakeSquare(6, 0), MakeSquare(7, 0), []Square{MakeSquare(5, 0), MakeSquare(6, 0)}, MakeSquare(5, 0)},
			{CastleWQ, MakeSquare(4, 0), MakeSquare(2, 0), MakeSquare(0, 0), []Square{MakeSquare(1, 0), MakeSquare(2, 0), MakeSquare(3, 0)}, MakeSquare(3, 0)},
		}
	} else {
		specs = []spec{
			{CastleBK, MakeSquare(4, 7), MakeSquare(6, 7), MakeSquare(7, 7), []Square{MakeSquare(5, 7), MakeSquare(6, 7)}, MakeSquare(5, 7)},
			{CastleBQ, MakeSquare(4, 7), MakeSquare(2, 7), MakeSquare(0, 7), []Square{MakeSquare(1, 7), MakeSquare(2, 7), MakeSquare(3, 7)}, MakeSquare(3, 7)},
		}
	}

	for _, s := range specs {
		if p.castle&s.right == 0 {
			continue
		}
		blocked := false
		for _, sq := range s.between {
			if occ.Has(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		if p.IsAttacked(s.passSquare, them) || p.IsAttacked(s.kingTo, them) {
			continue
		}
		side := KingSide
		if s.right == CastleWQ || s.right == CastleBQ {
			side = QueenSide
		}
		moves = append(moves, Move{From: s.kingFrom, To: s.kingTo, Piece: King, Castle: side, CastleRook: s.rookFrom})
	}
	return moves
}

// Apply returns the position after playing m, without mutating p.
func (p *Position) Apply(m Move) Position {
	next := *p
	us, them := p.side, p.side.Opponent()

	next.epSq = NoSquare
	next.half++
	if us == Black {
		next.full++
	}

	if m.Null {
		next.side = them
		return next
	}

	if m.Capture {
		next.half = 0
		capSq := m.To
		if m.EnPassant {
			capSq = MakeSquare(m.To.File(), m.From.Rank())
		}
		for pt := Pawn; pt <= King; pt++ {
			next.pieces[them][pt] &^= squareBB(capSq)
		}
	}

	next.pieces[us][m.Piece] &^= squareBB(m.From)
	placed := m.Piece
	if m.Promotion != NoPieceType {
		placed = m.Promotion
	}
	next.pieces[us][placed] |= squareBB(m.To)

	if m.Piece == Pawn {
		next.half = 0
		if absInt(m.To.Rank()-m.From.Rank()) == 2 {
			next.epSq = MakeSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		}
	}

	if m.Castle != NoCastle {
		next.pieces[us][Rook] &^= squareBB(m.CastleRook)
		rookTo := MakeSquare(5, m.From.Rank())
		if m.Castle == QueenSide {
			rookTo = MakeSquare(3, m.From.Rank())
		}
		next.pieces[us][Rook] |= squareBB(rookTo)
	}

	next.updateCastlingRights(m, us)
	next.side = them
	return next
}

// ApplyNull advances the side to move without changing the board, for the
// "--" null-move token some PGN exports use to mark a skipped move.
func (p *Position) ApplyNull() Position {
	return p.Apply(Move{Null: true})
}

func (p *Position) updateCastlingRights(m Move, us Color) {
	if p.castle == 0 {
		return
	}
	clear := func(mask uint8) { p.castle &^= mask }
	switch {
	case us == White && m.Piece == King:
		clear(CastleWK | CastleWQ)
	case us == Black && m.Piece == King:
		clear(CastleBK | CastleBQ)
	}
	switch m.From {
	case MakeSquare(0, 0):
		clear(CastleWQ)
	case MakeSquare(7, 0):
		clear(CastleWK)
	case MakeSquare(0, 7):
		clear(CastleBQ)
	case MakeSquare(7, 7):
		clear(CastleBK)
	}
	switch m.To {
	case MakeSquare(0, 0):
		clear(CastleWQ)
	case MakeSquare(7, 0):
		clear(CastleWK)
	case MakeSquare(0, 7):
		clear(CastleBQ)
	case MakeSquare(7, 7):
		clear(CastleBK)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GivesCheck reports whether playing m would put the opponent in check.
func (p *Position) GivesCheck(m Move) bool {
	next := p.Apply(m)
	return next.IsAttacked(next.kingSquare(next.side), next.side.Opponent())
}
