package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/docker/go-units"
	"github.com/felixge/fgprof"
	"github.com/gernest/ewah/aggregate"
	"github.com/gernest/ewah/bitmaps"
	"github.com/gernest/ewah/internal/randgen"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	count   = flag.Int("n", 64, "number of input bitmaps")
	words   = flag.Int("words", 1<<14, "maximum size of each input in words")
	seed    = flag.Uint64("seed", 1, "random seed")
	buffer  = flag.Int("buffer", aggregate.DefaultBufferWords, "scratch buffer size in words for buffered merges")
	rounds  = flag.Int("rounds", 5, "timed runs per strategy, the fastest is reported")
	profile = flag.String("profile", "", "write a wall clock profile to this path")
	verbose = flag.Bool("v", false, "log merge summaries")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("running benchmark", "err", err)
		os.Exit(1)
	}
}

type strategy struct {
	name string
	run  func() (*bitmaps.Bitmap, error)
}

func run() error {
	if *count < 1 || *words < 1 || *rounds < 1 {
		return errors.Errorf("n, words and rounds must be positive")
	}
	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			return errors.Wrapf(err, "creating profile %s", *profile)
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				slog.Error("writing profile", "path", *profile, "err", err)
			}
		}()
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	lo := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	bms := make([]*bitmaps.Bitmap, *count)
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range bms {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(*seed, uint64(i)))
			bms[i] = randgen.Mixed(r, 1, *words)[0]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "generating inputs")
	}
	var compressed, raw int
	for _, b := range bms {
		compressed += b.SizeInBytes()
		raw += b.SizeInBits() / 8
	}
	lo.Info("generated inputs", "n", len(bms), "compressed", units.BytesSize(float64(compressed)),
		"uncompressed", units.BytesSize(float64(raw)))

	a := aggregate.New(&aggregate.Config{BufferWords: *buffer, Logger: lo})
	strategies := []strategy{
		{"reduce", func() (*bitmaps.Bitmap, error) {
			return aggregate.Or(bms...)
		}},
		{"buffered", func() (*bitmaps.Bitmap, error) {
			o := bitmaps.New()
			a.BufferedOr(o, bms...)
			return o, nil
		}},
		{"streaming", func() (*bitmaps.Bitmap, error) {
			o := bitmaps.New()
			a.StreamingOr(o, bms...)
			return o, nil
		}},
	}

	var want uint64
	for i, s := range strategies {
		var (
			o    *bitmaps.Bitmap
			best = time.Duration(math.MaxInt64)
		)
		for range *rounds {
			start := time.Now()
			var err error
			o, err = s.run()
			if err != nil {
				return errors.Wrapf(err, "running %s", s.name)
			}
			best = min(best, time.Since(start))
		}
		sum := o.Checksum()
		if i == 0 {
			want = sum
		} else if sum != want {
			return errors.Errorf("%s checksum %x does not match %s checksum %x", s.name, sum, strategies[0].name, want)
		}
		fmt.Fprintf(os.Stdout, "%-10s %12v %10s cardinality=%d\n",
			s.name, best, units.BytesSize(float64(o.SizeInBytes())), o.Cardinality())
	}
	return nil
}
