package pgn

const (
	TERM_NORMAL = "Normal"
	TERM_TIME   = "Time forfeit"
)

// Upper bounds for adjusted time per game (seconds), where adjusted time is
// base time plus 60 times the increment (a 60-move game).
const (
	TC_BULLET    = 0
	TC_BLITZ     = 3 * 60
	TC_RAPID     = 10 * 60
	TC_CLASSICAL = 60 * 60
)

type Tag string

const (
	TAG_EVENT       Tag = "Event"
	TAG_SITE        Tag = "Site"
	TAG_DATE        Tag = "Date"
	TAG_ROUND       Tag = "Round"
	TAG_WHITE       Tag = "White"
	TAG_BLACK       Tag = "Black"
	TAG_RESULT      Tag = "Result"
	TAG_TERMINATION Tag = "Termination"
	TAG_TIMECONTROL Tag = "TimeControl"
	TAG_ECO         Tag = "ECO"
	TAG_WHITE_ELO   Tag = "WhiteElo"
	TAG_BLACK_ELO   Tag = "BlackElo"
)

// GameTags is the bag of header tags the driver accumulates for a single
// game, used only for PreFilter decisions - the FSM itself only special-cases
// the FEN and Variant tags while parsing.
type GameTags map[Tag]string

func (t GameTags) AddTag(tag Tag, value string) {
	t[tag] = value
}
