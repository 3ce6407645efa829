package chess

import (
	"fmt"
	"strings"
)

// DecodeSAN resolves a Standard Algebraic Notation token against the
// position's legal moves. It tolerates the malformations real-world PGN
// producers emit (redundant 'x', missing disambiguation): when more than one
// legal move matches the token's literal content, the first candidate is
// taken and fixed is reported true so the caller can count the repair.
func (p *Position) DecodeSAN(san string) (Move, bool, error) {
	if san == "--" {
		return Move{Null: true}, false, nil
	}

	if isCastleToken(san, true) {
		return p.decodeCastle(KingSide)
	}
	if isCastleToken(san, false) {
		return p.decodeCastle(QueenSide)
	}

	s := strings.ReplaceAll(san, "x", "")
	s = strings.ReplaceAll(s, "X", "")

	promo := NoPieceType
	if eq := strings.IndexByte(s, '='); eq != -1 {
		if eq+1 >= len(s) {
			return Move{}, false, fmt.Errorf("chess: malformed promotion in %q", san)
		}
		promo = promoFromLetter(s[eq+1])
		s = s[:eq]
	}

	piece := Pawn
	idx := 0
	if len(s) > 0 && isPieceLetter(s[0]) {
		piece = pieceFromLetter(s[0])
		idx = 1
	}

	body := s[idx:]
	if len(body) < 2 {
		return Move{}, false, fmt.Errorf("chess: unparsable SAN %q", san)
	}
	destStr := body[len(body)-2:]
	dest, ok := ParseSquare(destStr)
	if !ok {
		return Move{}, false, fmt.Errorf("chess: invalid destination square in %q", san)
	}
	disambig := body[:len(body)-2]

	var fileHint, rankHint byte
	for _, c := range disambig {
		switch {
		case c >= 'a' && c <= 'h':
			fileHint = byte(c)
		case c >= '1' && c <= '8':
			rankHint = byte(c)
		}
	}

	var candidates []Move
	for _, m := range p.LegalMoves() {
		if m.Piece != piece || m.To != dest {
			continue
		}
		if promo != NoPieceType && m.Promotion != promo {
			continue
		}
		if promo == NoPieceType && m.Promotion != NoPieceType && piece == Pawn {
			// A bare pawn token reaching the last rank without '=' is
			// malformed; accept the queen promotion as the tolerant default.
			if m.Promotion != Queen {
				continue
			}
		}
		if fileHint != 0 && "abcdefgh"[m.From.File()] != fileHint {
			continue
		}
		if rankHint != 0 && "12345678"[m.From.Rank()] != rankHint {
			continue
		}
		candidates = append(candidates, m)
	}

	if len(candidates) == 0 {
		return Move{}, false, fmt.Errorf("chess: no legal move matches %q", san)
	}
	return candidates[0], len(candidates) > 1, nil
}

func isCastleToken(san string, kingSide bool) bool {
	switch {
	case kingSide:
		return san == "O-O" || san == "0-0"
	default:
		return san == "O-O-O" || san == "0-0-0"
	}
}

func (p *Position) decodeCastle(side CastleSide) (Move, bool, error) {
	for _, m := range p.LegalMoves() {
		if m.Castle == side {
			return m, false, nil
		}
	}
	return Move{}, false, fmt.Errorf("chess: no legal castle available")
}

func isPieceLetter(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K':
		return true
	}
	return false
}

func pieceFromLetter(c byte) PieceType {
	switch c {
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return Pawn
}

func promoFromLetter(c byte) PieceType {
	switch c {
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	}
	return NoPieceType
}
