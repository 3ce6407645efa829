package pgn

import (
	"strings"

	"go.uber.org/zap"
)

// Result is a game outcome as packed into the upper two bits of a Polyglot
// entry's "learn" field.
type Result uint8

const (
	ResultWhiteWin Result = 0
	ResultBlackWin Result = 1
	ResultDraw     Result = 2
	ResultUnknown  Result = 3
)

// CompletedGame is everything the driver extracted from one game's worth of
// PGN text, ready for pkg/pgn's replayer to walk through a chess.Engine.
type CompletedGame struct {
	FEN     string
	Tokens  []string
	Result  Result
	GameOfs uint64
	Tags    GameTags
}

// Stats tallies games and moves seen by the FSM. "Fixed" (SAN tokens
// repaired by disambiguation) is a replay-time concept, returned by onGame
// and folded in by Parse rather than tracked inside the FSM itself.
type Stats struct {
	Games int64
	Moves int64
	Fixed int64
}

const maxStateDepth = 16

type stackOverflow struct{}
type stackUnderflow struct{}

// Driver runs the byte-classified finite state machine over a RawSource,
// splitting a PGN byte stream into completed games without ever needing to
// scan it as lines.
type Driver struct {
	log    *zap.Logger
	state  parseState
	stack  [maxStateDepth]parseState
	sp     int
	fen    strings.Builder
	curTok strings.Builder
	tokens []string
	tagBuf strings.Builder
	tags   GameTags
	result Result
	stm    int // 0 = white, 1 = black

	gameOfs    uint64 // start offset of the game currently being accumulated
	gameCount  int64
	moveCount  int64
	fixedTotal int64

	filterTags bool
}

func NewDriver(log *zap.Logger) *Driver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{log: log, tags: GameTags{}}
}

// FilterTags enables pre-filtering games by PreFilterAll before they reach
// onGame. Disabled by default, so a plain Parse call indexes every game
// unconditionally.
func (d *Driver) FilterTags(enabled bool) { d.filterTags = enabled }

func (d *Driver) pushState(s parseState) {
	if d.sp >= maxStateDepth {
		panic(stackOverflow{})
	}
	d.stack[d.sp] = s
	d.sp++
}

func (d *Driver) popState() parseState {
	if d.sp == 0 {
		panic(stackUnderflow{})
	}
	d.sp--
	return d.stack[d.sp]
}

func (d *Driver) reset() {
	d.state = stHeader
	d.sp = 0
	d.gameOfs = 0
	d.resetGameBuffers()
}

func (d *Driver) resetGameBuffers() {
	d.fen.Reset()
	d.curTok.Reset()
	d.tokens = nil
	d.tagBuf.Reset()
	d.tags = GameTags{}
	d.result = ResultUnknown
	d.stm = 0
}

// Parse drives the FSM over src, invoking onGame once per completed game and
// folding its returned fixed-count into the final Stats, then returns the
// stats. The caller owns src's lifetime.
func (d *Driver) Parse(src RawSource, onGame func(CompletedGame) int) Stats {
	d.reset()
	n := src.Len()

	for i := 0; i < n; i++ {
		i = d.processByte(src, i, onGame)
	}

	// Force accounting of a still-pending game: no trailing newline, missing
	// result, unclosed brace all leave a game accumulated but never
	// finalized by a RESULT/space pair, so flush it at EOF.
	if d.state != stHeader && d.state != stSkipGame && (d.curTok.Len() > 0 || len(d.tokens) > 0) {
		d.finishGame(n, onGame)
	}

	return Stats{Games: d.gameCount, Moves: d.moveCount, Fixed: d.fixedTotal}
}

// processByte handles one byte, returning the index the outer loop should
// resume from (normally i, but GAME_START rewinds it to reprocess a
// lookbehind match). Stack over/underflow panics are recovered here and
// turned into a logged parse-warning that resyncs the FSM to HEADER,
// instead of corrupting the driver's state on pathologically nested input.
func (d *Driver) processByte(src RawSource, i int, onGame func(CompletedGame) int) (next int) {
	next = i
	defer func() {
		if r := recover(); r != nil {
			d.log.Warn("pgn: state stack error, resyncing to HEADER",
				zap.Any("error", r), zap.Int("offset", i))
			d.state = stHeader
			d.sp = 0
		}
	}()

	b := src.At(i)
	cls := classOf[b]

	// Side channel: accumulate raw tag bytes while inside a generic TAG, so
	// PreFilter has something to read. The FSM itself never needs this.
	if d.state == stTag {
		d.tagBuf.WriteByte(b)
	}

	switch transition[d.state][cls] {
	case aFail:
		d.log.Warn("pgn: unexpected token", zap.String("state", d.state.String()), zap.Int("offset", i))

	case aContinue:
		// no-op

	case aGameStart:
		if hasPrefixAt(src, i-1, "[Event ") {
			next = i - 2
			d.state = stHeader
		}

	case aOpenTag:
		d.pushState(d.state)
		switch {
		case hasByteAt(src, i+1, 'F') && hasPrefixAt(src, i+1, "FEN \""):
			next = i + 5
			d.state = stFENTag
		case hasByteAt(src, i+1, 'V') && hasPrefixAt(src, i+1, "Variant ") && !hasPrefixAt(src, i+9, "\"Standard\""):
			d.popState()
			d.state = stSkipGame
		default:
			d.state = stTag
			d.tagBuf.Reset()
			d.tagBuf.WriteByte(b)
		}

	case aOpenBraceComment:
		d.pushState(d.state)
		d.state = stBraceComment

	case aReadFEN:
		d.fen.WriteByte(b)

	case aCloseFENTag:
		d.state = stTag
		if strings.Contains(d.fen.String(), " b ") {
			d.stm = 1
		}

	case aOpenVariation:
		d.pushState(d.state)
		d.state = stVariation

	case aStartNAG:
		d.pushState(d.state)
		d.state = stNAG

	case aPopState:
		from := d.state
		d.state = d.popState()
		if from == stTag {
			if tag, value, ok := parseTagBytes(d.tagBuf.String()); ok {
				d.tags.AddTag(tag, value)
			}
		}

	case aStartMoveNumber:
		d.state = stMoveNumber

	case aStartNextSAN:
		d.state = stNextSAN

	case aCastleOrResult:
		if hasByteAt(src, i+2, '0') {
			d.curTok.WriteByte(b)
			d.state = stReadSAN
		} else {
			d.result = getResult(src, i)
			d.state = stResult
		}

	case aStartReadSAN:
		d.curTok.WriteByte(b)
		d.state = stReadSAN

	case aReadMoveChar:
		d.curTok.WriteByte(b)

	case aEndMove:
		d.tokens = append(d.tokens, d.curTok.String())
		d.curTok.Reset()
		d.moveCount++
		if d.stm == 0 {
			d.state = stNextSAN
		} else {
			d.state = stNextMove
		}
		d.stm ^= 1

	case aStartResult:
		d.result = getResult(src, i)
		d.state = stResult

	case aEndGame:
		if b != '\n' { // tolerate spaces in a result like "1/2 - 1/2"
			d.state = stResult
			break
		}
		d.finishGame(i+1, onGame)
		d.state = stHeader

	case aTagInBrace:
		// Missed closing brace: only resync if this really is the start of
		// the next game.
		if !hasPrefixAt(src, i, "[Event ") {
			break
		}
		d.recoverMissingResult(i, onGame)

	case aMissingResult:
		d.recoverMissingResult(i, onGame)
	}

	return next
}

// recoverMissingResult handles MISSING_RESULT/TAG_IN_BRACE: the next game's
// header has already started (a '[' was seen) before this game's result was
// found. The pending game is finalized at its malformed result and the FSM
// is fast-forwarded into TAG state so the '[' byte already consumed is
// treated as having opened a generic tag, skipping the FEN/Variant checks
// OPEN_TAG would normally run - re-driving OPEN_TAG from scratch here isn't
// worth it for what should be a rare recovery path.
func (d *Driver) recoverMissingResult(i int, onGame func(CompletedGame) int) {
	d.finishGame(i, onGame)
	d.pushState(stHeader)
	d.state = stTag
	d.tagBuf.Reset()
	d.tagBuf.WriteByte('[')
}

func (d *Driver) finishGame(nextOfs int, onGame func(CompletedGame) int) {
	if !d.filterTags || PreFilterAll(d.tags) {
		g := CompletedGame{
			FEN:     d.fen.String(),
			Tokens:  d.tokens,
			Result:  d.result,
			GameOfs: d.gameOfs,
			Tags:    d.tags,
		}
		d.fixedTotal += int64(onGame(g))
	}
	d.gameCount++
	d.gameOfs = uint64(nextOfs)
	d.resetGameBuffers()
}

// getResult decodes the result token starting at pos ('/' for a draw
// fraction, '0' for a black win, '-' needing a lookbehind to tell a white
// win "1-" from a black win "0-"). The lookbehind reads are bounds-guarded
// since an out-of-range index panics rather than reading adjacent memory.
func getResult(src RawSource, pos int) Result {
	switch src.At(pos) {
	case '/':
		return ResultDraw
	case '0':
		return ResultBlackWin
	case '-':
		if hasByteAt(src, pos-1, '1') || (hasByteAt(src, pos-1, ' ') && hasByteAt(src, pos-2, '1')) {
			return ResultWhiteWin
		}
		if hasByteAt(src, pos-1, '0') || (hasByteAt(src, pos-1, ' ') && hasByteAt(src, pos-2, '0')) {
			return ResultBlackWin
		}
	}
	return ResultUnknown
}

func hasByteAt(src RawSource, i int, b byte) bool {
	return i >= 0 && i < src.Len() && src.At(i) == b
}

func hasPrefixAt(src RawSource, i int, prefix string) bool {
	if i < 0 || i+len(prefix) > src.Len() {
		return false
	}
	for k := 0; k < len(prefix); k++ {
		if src.At(i+k) != prefix[k] {
			return false
		}
	}
	return true
}

func parseTagBytes(raw string) (Tag, string, bool) {
	if !isTag(raw) {
		return "", "", false
	}
	tag, value := parseTag(raw)
	return tag, value, true
}
