// Command primes counts the primes below a bound and reports the largest one.
//
//	primes 1e9          # four workers
//	primes 1e12 16      # sixteen workers
//	primes -v 1e9       # debug logging to stderr
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/hupe1980/primecount"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\n%v\n\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "primes",
		Usage:     "count the primes below a bound",
		UsageText: "primes [-v] <max value> [num workers]",
		Description: `Counts the primes strictly less than <max value> with a segmented sieve of
Eratosthenes and prints the count and the largest prime found. Bounds run
from 10 up to a quadrillion, written plainly or as scientific notation like
"1e15". Workers range from 0 (no threading) to 100; the default is 4.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging to stderr",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, c *cli.Command) error {
	args := c.Args()
	if args.Len() == 0 {
		printUsageNotes(c)
		return nil
	}

	maxValue, err := parseMaxValue(args.First())
	if err != nil {
		return consoleError(err)
	}

	numWorkers := 4
	if args.Len() > 1 {
		numWorkers, err = strconv.Atoi(args.Get(1))
		if err != nil {
			return errors.New("if specified, number of workers must be an integer from 0 to 100")
		}
	}

	opts := []primecount.Option{
		primecount.WithWorkers(numWorkers),
		primecount.WithProgressWriter(c.ErrWriter),
		primecount.WithBaseStatsFunc(func(bs primecount.BaseStats) {
			fmt.Fprintf(c.Writer, "base primes: there are %s primes less than %s; the last is %s\n",
				humanize.Comma(int64(bs.Count)), humanize.Comma(int64(bs.Bound)), humanize.Comma(int64(bs.Last)))
			fmt.Fprintf(c.Writer, "processing %s slices using %d workers...\n",
				humanize.Comma(int64(bs.Slices)), bs.Workers)
		}),
	}

	var logger *primecount.Logger
	if c.Bool("verbose") {
		logger = primecount.NewTextLogger(slog.LevelDebug)
		opts = append(opts, primecount.WithLogger(logger))
	}

	res, err := primecount.Count(ctx, maxValue, opts...)
	if err != nil {
		return consoleError(err)
	}

	fmt.Fprintf(c.Writer, "there are %s primes less than %s; the last is %s\n",
		humanize.Comma(int64(res.Count)), humanize.Comma(int64(res.N)), humanize.Comma(int64(res.LastPrime)))

	if logger != nil {
		logger.Debug("process stats",
			"elapsed", res.Elapsed,
			"peak_managed_bytes", res.PeakMemoryBytes,
			"peak_rss_bytes", peakRSSBytes(),
		)
	}

	return nil
}

func printUsageNotes(c *cli.Command) {
	fmt.Fprintf(c.Writer, "usage: %s <max value> [num workers]\n", c.Name)
	fmt.Fprintln(c.Writer, `note:  max value must be at least 10 and no greater than a quadrillion ("1e15")`)
	fmt.Fprintln(c.Writer, "note:  num workers can be from 0 (no threading) to 100 (default is 4)")
}

// parseMaxValue accepts plain integers and scientific notation like "1e15",
// truncating any fraction.
func parseMaxValue(s string) (uint64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, fmt.Errorf("invalid max value %q", s)
	}
	if f > float64(primecount.MaxValue) {
		return 0, primecount.ErrRangeUnsupported
	}
	if f < 0 {
		return 0, primecount.ErrBelowMinimum
	}
	return uint64(f), nil
}

// consoleError rewraps the library sentinels in the tool's console voice.
func consoleError(err error) error {
	switch {
	case errors.Is(err, primecount.ErrBelowMinimum):
		return errors.New("sorry, max value must be at least 10!")
	case errors.Is(err, primecount.ErrRangeUnsupported):
		return errors.New("sorry, this program is limited to a quadrillion (1e15)!")
	case errors.Is(err, primecount.ErrInvalidWorkers):
		return errors.New("if specified, number of workers must be from 0 to 100!")
	default:
		return err
	}
}
