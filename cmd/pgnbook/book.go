package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/corvidlabs/pgnbook/pkg/chess"
	"github.com/corvidlabs/pgnbook/pkg/pgn"
	"github.com/corvidlabs/pgnbook/pkg/polyglot"
)

var (
	bookOutput  string
	bookFull    bool
	bookFilter  bool
	bookWorkers int
)

var bookCmd = &cobra.Command{
	Use:   "book <pgn-file-or-dir-or-url>[,...]",
	Short: "Index one or more PGN sources into a Polyglot opening book",
	Args:  cobra.ExactArgs(1),
	RunE:  runBook,
}

func init() {
	bookCmd.Flags().StringVarP(&bookOutput, "output", "o", "", "output .bin path (default: derived from the first source)")
	bookCmd.Flags().BoolVar(&bookFull, "full", false, "keep every entry instead of deduplicating consecutive key+move pairs")
	bookCmd.Flags().BoolVar(&bookFilter, "filter", false, "pre-filter games by Result/Termination/TimeControl/Elo tags (default: off, indexes every game)")
	bookCmd.Flags().IntVar(&bookWorkers, "workers", 4, "number of PGN sources processed concurrently")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("pgnbook: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sources, err := pgn.OpenPaths(args[0])
	if err != nil {
		return fmt.Errorf("pgnbook: %w", err)
	}
	if len(sources) == 0 {
		return fmt.Errorf("pgnbook: no PGN sources found in %q", args[0])
	}

	if bookOutput == "" {
		bookOutput = deriveBookName(args[0])
	}

	started := time.Now()

	var totalGames, totalMoves, totalFixed, totalSize int64
	var mu sync.Mutex
	var entries []polyglot.Entry

	sem := make(chan struct{}, bookWorkers)
	var wg sync.WaitGroup

sourceLoop:
	for _, src := range sources {
		select {
		case <-ctx.Done():
			break sourceLoop
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(src pgn.RawSource) {
			defer wg.Done()
			defer func() { <-sem }()
			defer src.Close()

			atomic.AddInt64(&totalSize, int64(src.Len()))

			driver := pgn.NewDriver(log)
			driver.FilterTags(bookFilter)
			eng := chess.NewGame()

			stats := driver.Parse(src, func(g pgn.CompletedGame) int {
				res := pgn.ReplayGame(eng, g, pgn.PolicyEmit, log)
				if len(res.Entries) > 0 {
					mu.Lock()
					entries = append(entries, res.Entries...)
					mu.Unlock()
				}
				return res.Fixed
			})

			atomic.AddInt64(&totalGames, stats.Games)
			atomic.AddInt64(&totalMoves, stats.Moves)
			atomic.AddInt64(&totalFixed, stats.Fixed)
			log.Info("pgnbook: indexed source",
				zap.String("source", src.Name()), zap.Int64("games", stats.Games))
		}(src)
	}
	wg.Wait()

	polyglot.Reweight(entries)
	uniqueKeys := polyglot.CountUniqueKeys(entries)

	out, err := os.Create(bookOutput)
	if err != nil {
		return fmt.Errorf("pgnbook: %w", err)
	}
	defer out.Close()

	size, err := polyglot.Write(out, entries, bookFull)
	if err != nil {
		return fmt.Errorf("pgnbook: writing book: %w", err)
	}

	elapsed := time.Since(started)
	report := polyglot.BuildReport{
		Games:                totalGames,
		Moves:                totalMoves,
		IncorrectMoves:       totalFixed,
		UniquePositionsPct:   percent(int64(uniqueKeys), totalMoves),
		GamesPerSecond:       perSecond(totalGames, elapsed),
		MovesPerSecond:       perSecond(totalMoves, elapsed),
		MegabytesPerSecond:   float64(totalSize) / elapsed.Seconds() / 1e6,
		IndexSizeBytes:       size,
		BookFile:             bookOutput,
		ProcessingTimeMillis: elapsed.Milliseconds(),
	}

	return printReport(report)
}
