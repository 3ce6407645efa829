package pgn

import (
	"testing"

	"go.uber.org/zap"

	"github.com/corvidlabs/pgnbook/pkg/chess"
)

// Four moves produce four records whose keys are the Zobrist keys of the
// position before each move, and whose moves encode e2e4, e7e5, g1f3, b8c6.
func TestReplayGame_EmitsExpectedEntries(t *testing.T) {
	games, _ := parseAll(t, "[Event \"t\"]\n\n1. e4 e5 2. Nf3 Nc6 1-0\n")
	if len(games) != 1 {
		t.Fatalf("len(games) = %d, want 1", len(games))
	}

	eng := chess.NewGame()
	res := ReplayGame(eng, games[0], PolicyEmit, zap.NewNop())
	if res.Fixed != 0 {
		t.Errorf("Fixed = %d, want 0", res.Fixed)
	}
	if len(res.Entries) != 4 {
		t.Fatalf("len(Entries) = %d, want 4", len(res.Entries))
	}

	wantUCI := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	replay := chess.NewGame()
	for i, want := range wantUCI {
		if res.Entries[i].Key != replay.Key() {
			t.Errorf("Entries[%d].Key = %d, want the key before move %s", i, res.Entries[i].Key, want)
		}
		if got := chess.UCIFromPolyglot(res.Entries[i].Move); got != want {
			t.Errorf("Entries[%d].Move decodes to %q, want %q", i, got, want)
		}
		m, _, err := replay.SANToMove(games[0].Tokens[i])
		if err != nil {
			t.Fatalf("SANToMove(%q) error = %v", games[0].Tokens[i], err)
		}
		replay.DoMove(m)
	}
}

func TestReplayGame_NullMoveAdvancesWithoutEntry(t *testing.T) {
	g := CompletedGame{Tokens: []string{"e4", "--", "Nf3"}, Result: ResultUnknown}
	eng := chess.NewGame()
	res := ReplayGame(eng, g, PolicyEmit, zap.NewNop())
	if len(res.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2 (null move emits nothing)", len(res.Entries))
	}
}

func TestReplayGame_StopsAtUnresolvableToken(t *testing.T) {
	g := CompletedGame{Tokens: []string{"e4", "Qh5"}, Result: ResultUnknown}
	eng := chess.NewGame()
	res := ReplayGame(eng, g, PolicyEmit, zap.NewNop())
	if res.StoppedAt != 1 {
		t.Errorf("StoppedAt = %d, want 1", res.StoppedAt)
	}
	if len(res.Entries) != 1 {
		t.Errorf("len(Entries) = %d, want 1 (only e4 replayed before the bad token)", len(res.Entries))
	}
}
