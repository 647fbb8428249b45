// Command rbs is a thin driver around the rabbitsearch core: it parses
// arguments, constructs a search, and drains results to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	rabbitsearch "github.com/markovejnovic/rabbit-search"
)

const usage = `usage: rbs <PATH> <NEEDLE> [OPTIONS]

Recursively search PATH for regular files containing NEEDLE.

OPTIONS:
  -v, --verbose        enable diagnostic logs
  -j, --jobs N         worker count (default 2x hardware concurrency)
      --target N       open-file target threshold (default 8192)
      --max N          open-file max threshold (default 32768)
      --simd ISA       force scanner ISA tier: generic, neon, avx2, avx512
      --stat-fallback  resolve DT_UNKNOWN entries via stat instead of skipping
      --metrics        print counters to stderr on exit (requires a build
                       tagged rabbitsearch_metrics; otherwise a no-op)
  -h, --help           show this message
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("rbs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	var (
		verbose      bool
		jobs         int
		target       int
		max          int
		simd         string
		statFallback bool
		metrics      bool
	)

	fs.BoolVar(&verbose, "v", false, "")
	fs.BoolVar(&verbose, "verbose", false, "")
	fs.IntVar(&jobs, "j", 0, "")
	fs.IntVar(&jobs, "jobs", 0, "")
	fs.IntVar(&target, "target", 0, "")
	fs.IntVar(&max, "max", 0, "")
	fs.StringVar(&simd, "simd", "", "")
	fs.BoolVar(&statFallback, "stat-fallback", false, "")
	fs.BoolVar(&metrics, "metrics", false, "")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	root, needle := rest[0], rest[1]

	opts, argErr := buildOptions(verbose, jobs, target, max, simd, statFallback, metrics, stderr)
	if argErr != nil {
		fmt.Fprintf(stderr, "rbs: %v\n", argErr)
		return 2
	}

	return drive(root, needle, opts, metrics, stdout, stderr)
}

func buildOptions(
	verbose bool,
	jobs, target, max int,
	simd string,
	statFallback, metrics bool,
	stderr *os.File,
) ([]rabbitsearch.Option, error) {
	var opts []rabbitsearch.Option

	if verbose {
		opts = append(opts, rabbitsearch.WithLogger(rabbitsearch.NewSlogLogger(nil)))
	}

	if jobs > 0 {
		opts = append(opts, rabbitsearch.WithWorkers(jobs))
	} else {
		opts = append(opts, rabbitsearch.WithWorkers(2*runtime.GOMAXPROCS(0)))
	}

	if target > 0 || max > 0 {
		t, m := target, max
		if t == 0 {
			t = 1 << 13
		}

		if m == 0 {
			m = 1 << 15
		}

		if t >= m {
			return nil, &rabbitsearch.ArgError{Flag: "--target/--max", Err: errors.New("target must be less than max")}
		}

		opts = append(opts, rabbitsearch.WithTarget(t), rabbitsearch.WithMax(m))
	}

	if simd != "" {
		isa, ok := rabbitsearch.ParseISA(simd)
		if !ok {
			return nil, &rabbitsearch.ArgError{Flag: "--simd", Err: fmt.Errorf("unknown ISA %q", simd)}
		}

		opts = append(opts, rabbitsearch.WithSIMD(isa))
	}

	opts = append(opts, rabbitsearch.WithStatFallback(statFallback), rabbitsearch.WithMetrics(metrics))

	return opts, nil
}

func drive(root, needle string, opts []rabbitsearch.Option, metrics bool, stdout, stderr *os.File) (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			var fatal *rabbitsearch.FatalError
			if errors.As(asError(r), &fatal) {
				fmt.Fprintf(stderr, "rbs: %v\n", fatal)
				exitCode = 1

				return
			}

			panic(r)
		}
	}()

	sched, err := rabbitsearch.Search(root, []byte(needle), opts...)
	if err != nil {
		fmt.Fprintf(stderr, "rbs: %v\n", err)
		return 1
	}

	buf := make([]byte, 4096)

	drainOnce := func() {
		for {
			res, ok := sched.TryNextResult()
			if !ok {
				return
			}

			printResult(stdout, &buf, res)
		}
	}

	for sched.IsBusy() {
		drainOnce()
		time.Sleep(time.Millisecond)
	}

	drainOnce()

	sched.Wait()
	drainOnce()

	if fatal := sched.Err(); fatal != nil {
		fmt.Fprintf(stderr, "rbs: %v\n", fatal)
		sched.Close()

		return 1
	}

	if metrics {
		fmt.Fprintf(stderr, "rbs: %s\n", sched.Metrics())
	}

	sched.Close()

	return 0
}

func printResult(stdout *os.File, buf *[]byte, res rabbitsearch.Result) {
	for {
		out, err := rabbitsearch.ReconstructPath(res.Node, *buf, '\n')
		if err == nil {
			_, _ = stdout.Write(out)
			return
		}

		*buf = make([]byte, len(*buf)*2)
	}
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("%v", r)
}
