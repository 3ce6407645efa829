package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corvidlabs/pgnbook/pkg/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "pgnbook",
	Short: "Build and query Polyglot opening books from PGN collections",
	Long: `pgnbook turns PGN game collections into a Polyglot opening book
binary index, and answers lookups against one.

Examples:
  # Index one or more PGN sources (file, directory, .zst/.bz2 archive, or URL)
  pgnbook book ./games.pgn,./more-games.pgn.zst -o book.bin

  # Probe a book for the moves played from the start position
  pgnbook find book.bin "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "v", false, "enable development logging")
}

func newLogger() (*zap.Logger, error) {
	return logger.New(debug)
}
