// Command rbsbench benchmarks the rabbitsearch core against a directory
// tree, optionally one built by ../ticketgen. It is adapted from the
// teacher's cmd/fileprocbench: same flag shape (-dir, -workers, -repeat,
// -gc, -cpuprofile, JSONL -out), retargeted at rabbitsearch.Search instead
// of fileproc.Process.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"time"

	rabbitsearch "github.com/markovejnovic/rabbit-search"
)

type benchResult struct {
	Timestamp time.Time `json:"ts"`
	Case      string    `json:"case,omitempty"`

	Dir     string `json:"dir"`
	Needle  string `json:"needle"`
	Workers int    `json:"workers"`
	Repeat  int    `json:"repeat"`

	Matched     uint64        `json:"matched"`
	Duration    time.Duration `json:"duration"`
	FilesPerSec float64       `json:"files_per_sec"`

	GoVersion  string `json:"go"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

type benchFlags struct {
	dir        string
	needle     string
	workers    int
	repeat     int
	gcPercent  int
	caseName   string
	out        string
	cpuProfile string
}

func parseFlags() *benchFlags {
	flags := &benchFlags{}

	flag.StringVar(&flags.dir, "dir", "", "directory to search")
	flag.StringVar(&flags.needle, "needle", "", "byte needle to search for")
	flag.IntVar(&flags.workers, "workers", 0, "worker count (0=auto)")
	flag.IntVar(&flags.repeat, "repeat", 1, "repeat the search N times")
	flag.IntVar(&flags.gcPercent, "gc", -1, "if >=0, call debug.SetGCPercent(gc)")
	flag.StringVar(&flags.caseName, "case", "", "optional short case name stored in JSON output")
	flag.StringVar(&flags.out, "out", "", "optional JSONL output file to append one result per run")
	flag.StringVar(&flags.cpuProfile, "cpuprofile", "", "write CPU profile to file")

	return flags
}

func main() {
	flags := parseFlags()
	flag.Parse()
	os.Exit(run(flags))
}

func run(flags *benchFlags) int {
	if flags.dir == "" || flags.needle == "" {
		fmt.Fprintln(os.Stderr, "-dir and -needle are required")
		return 2
	}

	if flags.repeat <= 0 {
		fmt.Fprintln(os.Stderr, "-repeat must be >= 1")
		return 2
	}

	if flags.gcPercent >= 0 {
		debug.SetGCPercent(flags.gcPercent)
	}

	if flags.cpuProfile != "" {
		f, err := os.Create(flags.cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating cpuprofile: %v\n", err)
			return 1
		}

		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Fprintf(os.Stderr, "error starting cpuprofile: %v\n", err)

			return 1
		}

		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var opts []rabbitsearch.Option
	if flags.workers > 0 {
		opts = append(opts, rabbitsearch.WithWorkers(flags.workers))
	}

	for i := 0; i < flags.repeat; i++ {
		matched, dur, err := runOnce(flags.dir, flags.needle, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %v\n", i, err)
			return 1
		}

		res := benchResult{
			Timestamp:   time.Now(),
			Case:        flags.caseName,
			Dir:         flags.dir,
			Needle:      flags.needle,
			Workers:     flags.workers,
			Repeat:      flags.repeat,
			Matched:     matched,
			Duration:    dur,
			FilesPerSec: float64(matched) / dur.Seconds(),
			GoVersion:   runtime.Version(),
			GOMAXPROCS:  runtime.GOMAXPROCS(0),
		}

		fmt.Printf("matched=%d duration=%s\n", res.Matched, res.Duration)

		if flags.out != "" {
			if err := appendJSONL(flags.out, res); err != nil {
				fmt.Fprintf(os.Stderr, "warning: writing -out: %v\n", err)
			}
		}
	}

	return 0
}

func runOnce(dir, needle string, opts []rabbitsearch.Option) (uint64, time.Duration, error) {
	start := time.Now()

	sched, err := rabbitsearch.Search(dir, []byte(needle), opts...)
	if err != nil {
		return 0, 0, err
	}

	var matched uint64

	drainOnce := func() {
		for {
			_, ok := sched.TryNextResult()
			if !ok {
				return
			}

			matched++
		}
	}

	for sched.IsBusy() {
		drainOnce()
	}

	drainOnce()
	sched.Wait()
	drainOnce()

	if err := sched.Err(); err != nil {
		sched.Close()
		return matched, time.Since(start), err
	}

	sched.Close()

	return matched, time.Since(start), nil
}

func appendJSONL(path string, res benchResult) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)

	return enc.Encode(res)
}
