package pgn

import (
	"testing"

	"go.uber.org/zap"
)

// testSource is a minimal in-memory RawSource for driving the FSM directly
// off a string literal, without going through OpenPath's file/archive
// dispatch.
type testSource struct {
	data []byte
}

func newTestSource(s string) *testSource { return &testSource{data: []byte(s)} }

func (t *testSource) At(i int) byte { return t.data[i] }
func (t *testSource) Len() int      { return len(t.data) }
func (t *testSource) Close() error  { return nil }
func (t *testSource) Name() string  { return "test" }

func parseAll(t *testing.T, pgnText string) ([]CompletedGame, Stats) {
	t.Helper()
	d := NewDriver(zap.NewNop())
	var games []CompletedGame
	stats := d.Parse(newTestSource(pgnText), func(g CompletedGame) int {
		games = append(games, g)
		return 0
	})
	return games, stats
}

// An empty PGN produces nothing.
func TestParse_EmptyPGN(t *testing.T) {
	games, stats := parseAll(t, "")
	if len(games) != 0 || stats.Games != 0 || stats.Moves != 0 {
		t.Fatalf("games=%d stats=%+v, want all zero", len(games), stats)
	}
}

// A well-formed single game.
func TestParse_SingleGame(t *testing.T) {
	games, stats := parseAll(t, "[Event \"t\"]\n\n1. e4 e5 2. Nf3 Nc6 1-0\n")
	if stats.Games != 1 {
		t.Fatalf("stats.Games = %d, want 1", stats.Games)
	}
	if stats.Moves != 4 {
		t.Fatalf("stats.Moves = %d, want 4", stats.Moves)
	}
	if len(games) != 1 {
		t.Fatalf("len(games) = %d, want 1", len(games))
	}
	g := games[0]
	want := []string{"e4", "e5", "Nf3", "Nc6"}
	if len(g.Tokens) != len(want) {
		t.Fatalf("Tokens = %v, want %v", g.Tokens, want)
	}
	for i, tok := range want {
		if g.Tokens[i] != tok {
			t.Errorf("Tokens[%d] = %q, want %q", i, g.Tokens[i], tok)
		}
	}
	if g.Result != ResultWhiteWin {
		t.Errorf("Result = %v, want ResultWhiteWin", g.Result)
	}
}

// A FEN tag with black to move.
func TestParse_FENTagBlackToMove(t *testing.T) {
	pgnText := "[Event \"t\"]\n[FEN \"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1\"]\n\n1... e5 2. Nf3 1/2-1/2\n"
	games, stats := parseAll(t, pgnText)
	if stats.Games != 1 || stats.Moves != 2 {
		t.Fatalf("stats = %+v, want Games=1 Moves=2", stats)
	}
	g := games[0]
	if g.Result != ResultDraw {
		t.Errorf("Result = %v, want ResultDraw", g.Result)
	}
	if g.FEN == "" {
		t.Error("FEN tag was not captured")
	}
	if len(g.Tokens) != 2 || g.Tokens[0] != "e5" || g.Tokens[1] != "Nf3" {
		t.Errorf("Tokens = %v, want [e5 Nf3]", g.Tokens)
	}
}

// An unclosed brace comment is recovered from via TAG_IN_BRACE,
// closing the first game and starting the second at the embedded [Event.
func TestParse_UnclosedCommentRecovery(t *testing.T) {
	pgnText := "[Event \"t\"]\n\n1. e4 { unclosed comment \n[Event \"u\"]\n\n1. d4 *\n"
	games, stats := parseAll(t, pgnText)
	if stats.Games != 2 {
		t.Fatalf("stats.Games = %d, want 2", stats.Games)
	}
	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}
	if len(games[1].Tokens) != 1 || games[1].Tokens[0] != "d4" {
		t.Errorf("second game Tokens = %v, want [d4]", games[1].Tokens)
	}
}

// A Chess960 Variant tag causes the game to be skipped entirely.
func TestParse_VariantSkipped(t *testing.T) {
	pgnText := "[Event \"t\"]\n[Variant \"Chess960\"]\n\n1. e4 e5 1-0\n[Event \"u\"]\n\n1. d4 *\n"
	games, _ := parseAll(t, pgnText)
	if len(games) != 1 {
		t.Fatalf("len(games) = %d, want 1 (Chess960 game skipped)", len(games))
	}
	if len(games[0].Tokens) != 1 || games[0].Tokens[0] != "d4" {
		t.Errorf("Tokens = %v, want [d4]", games[0].Tokens)
	}
	if games[0].Result != ResultUnknown {
		t.Errorf("Result = %v, want ResultUnknown", games[0].Result)
	}
}

// A parenthesized variation is skipped, leaving only mainline
// moves.
func TestParse_VariationIgnored(t *testing.T) {
	pgnText := "[Event \"t\"]\n\n1. e4 e5 2. Nf3 (2. Nc3 Nc6) Nc6 1-0\n"
	games, stats := parseAll(t, pgnText)
	if stats.Moves != 4 {
		t.Fatalf("stats.Moves = %d, want 4", stats.Moves)
	}
	want := []string{"e4", "e5", "Nf3", "Nc6"}
	got := games[0].Tokens
	if len(got) != len(want) {
		t.Fatalf("Tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// A PGN with no trailing newline after the result still emits the game,
// via Parse's EOF fallback.
func TestParse_NoTrailingNewline(t *testing.T) {
	pgnText := "[Event \"t\"]\n\n1. e4 e5 1-0"
	games, stats := parseAll(t, pgnText)
	if stats.Games != 1 || len(games) != 1 {
		t.Fatalf("stats=%+v games=%d, want Games=1", stats, len(games))
	}
}

func TestParse_FilterTagsDropsGame(t *testing.T) {
	d := NewDriver(zap.NewNop())
	d.FilterTags(true)
	var games []CompletedGame
	pgnText := "[Event \"t\"]\n[Result \"1-0\"]\n[Termination \"Abandoned\"]\n\n1. e4 e5 1-0\n"
	stats := d.Parse(newTestSource(pgnText), func(g CompletedGame) int {
		games = append(games, g)
		return 0
	})
	if len(games) != 0 {
		t.Fatalf("len(games) = %d, want 0 (Termination tag should fail PreFilter)", len(games))
	}
	if stats.Games != 1 {
		t.Errorf("stats.Games = %d, want 1 (game count still tallied)", stats.Games)
	}
}
