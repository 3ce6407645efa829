package polyglot

// BuildReport is the JSON summary the `pgnbook book` command prints after
// indexing.
type BuildReport struct {
	Games               int64   `json:"games"`
	Moves               int64   `json:"moves"`
	IncorrectMoves      int64   `json:"incorrect_moves"`
	UniquePositionsPct  int64   `json:"unique_positions_pct"`
	GamesPerSecond      int64   `json:"games_per_second"`
	MovesPerSecond      int64   `json:"moves_per_second"`
	MegabytesPerSecond  float64 `json:"megabytes_per_second"`
	IndexSizeBytes      int64   `json:"index_size_bytes"`
	BookFile            string  `json:"book_file"`
	ProcessingTimeMillis int64  `json:"processing_time_ms"`
}

// MoveReport is one entry of FindReport.Moves.
type MoveReport struct {
	Move        string   `json:"move"`
	Weight      uint16   `json:"weight"`
	Games       uint64   `json:"games"`
	Wins        uint64   `json:"wins"`
	Losses      uint64   `json:"losses"`
	Draws       uint64   `json:"draws"`
	PGNOffsets  []uint64 `json:"pgn_offsets"`
}

// FindReport is the JSON summary the `pgnbook find` command prints,
// matching find()'s output shape.
type FindReport struct {
	FEN   string       `json:"fen"`
	Key   uint64       `json:"key"`
	Moves []MoveReport `json:"moves"`
}
