// Command halfloop-attack recovers a HALFLOOP-24 key from a file of
// chosen-plaintext tuples via the differential meet-in-the-middle pipeline.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	halfloop "github.com/halfloop/halfloop"
)

func main() {
	threads := flag.Int("t", runtime.NumCPU(), "number of worker goroutines for the brute-force stage")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-t threads] <tuples-file>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(halfloop.ExitBadArgument)
	}

	cfg := halfloop.NewRunConfig()
	cfg.Threads = *threads
	cfg.InputPath = flag.Arg(0)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(halfloop.ExitCodeFor(err))
	}

	log := halfloop.NewLoggerWithRunID(os.Stderr, cfg.RunID)

	log.Info("Initializing HALFLOOP-24 library.")
	if err := halfloop.SelfTest(); err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}

	fs := halfloop.NewOSFileSystem(".")

	log.Info("Loading tuples from %s.", cfg.InputPath)
	tuples, err := halfloop.LoadTuples(fs, cfg.InputPath)
	if err != nil {
		log.Error("An error occurred while loading tuples.")
		os.Exit(halfloop.ExitCodeFor(err))
	}
	log.Info("Loaded %d tuples.", len(tuples))

	pairs := halfloop.GoodPairs(tuples)
	if len(pairs) < 3 {
		log.Error("Found %d good pairs. At least 3 are needed.", len(pairs))
		os.Exit(halfloop.ExitFailure)
	}
	log.Success("Found %d good pairs.", len(pairs))

	log.Info("Searching for 80-bit candidate keys.")
	key, err := halfloop.RecoverKey(pairs, cfg.Threads, log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}

	fmt.Printf("Found key: %016x%016x\n", key.Hi(), key.Lo())
}
