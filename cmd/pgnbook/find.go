package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corvidlabs/pgnbook/pkg/chess"
	"github.com/corvidlabs/pgnbook/pkg/polyglot"
)

var (
	findLimit int
	findSkip  int
)

var findCmd = &cobra.Command{
	Use:   "find <book.bin> <fen...>",
	Short: "Probe a Polyglot book for the moves available from a position",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().IntVar(&findLimit, "limit", 10, "maximum PGN offsets sampled per move")
	findCmd.Flags().IntVar(&findSkip, "skip", 0, "number of matches to skip before sampling offsets")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	if findLimit < 1 {
		return fmt.Errorf("pgnbook: limit must be greater than 0")
	}

	bookPath := args[0]
	fen := strings.Join(args[1:], " ")

	data, err := os.ReadFile(bookPath)
	if err != nil {
		return fmt.Errorf("pgnbook: %w", err)
	}

	pos := chess.NewGame()
	if err := pos.Reset(fen); err != nil {
		return fmt.Errorf("pgnbook: %w", err)
	}

	key := pos.Key()
	report := polyglot.FindReport{FEN: pos.FEN(), Key: key}

	if offset, found := polyglot.Probe(data, key); found {
		for _, ms := range polyglot.ProbeKey(data, offset, findLimit, findSkip) {
			report.Moves = append(report.Moves, polyglot.MoveReport{
				Move:       chess.UCIFromPolyglot(ms.Move),
				Weight:     ms.Weight,
				Games:      ms.Games,
				Wins:       ms.WhiteWins,
				Losses:     ms.BlackWins,
				Draws:      ms.Draws,
				PGNOffsets: ms.Offsets,
			})
		}
	}

	return printReport(report)
}
