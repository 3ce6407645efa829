package chess

import "testing"

func TestLegalMoves_StartPositionCount(t *testing.T) {
	p := NewStartPosition()
	moves := p.LegalMoves()
	if len(moves) != 20 {
		t.Errorf("len(LegalMoves()) = %d, want 20", len(moves))
	}
}

func TestLegalMoves_PinnedPieceCannotMove(t *testing.T) {
	var p Position
	// White rook on e-file pins the black bishop to its king; the bishop
	// must not appear as able to move off the e-file.
	if err := p.SetFEN("4k3/4b3/8/8/8/8/8/4R1K1 b - - 0 1"); err != nil {
		t.Fatalf("SetFEN error = %v", err)
	}
	for _, m := range p.LegalMoves() {
		if m.Piece == Bishop && m.To.File() != 4 {
			t.Errorf("pinned bishop produced illegal move %s", m.UCI())
		}
	}
}

func TestLegalMoves_NoMovesLeaveKingInCheck(t *testing.T) {
	p := NewStartPosition()
	for _, m := range p.LegalMoves() {
		next := p.Apply(m)
		if next.IsAttacked(next.kingSquare(p.SideToMove()), next.SideToMove()) {
			t.Errorf("move %s leaves own king in check", m.UCI())
		}
	}
}
