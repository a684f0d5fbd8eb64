// Command halfloop-generate recreates generate-data: it synthesizes a
// random (or, with -demo, passphrase-derived) key and tweak, then emits
// chosen-plaintext good pairs in tuple-file format to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	halfloop "github.com/halfloop/halfloop"
)

func main() {
	demo := flag.String("demo", "", "derive a reproducible demo key from this passphrase instead of crypto/rand")
	demoKDF := flag.String("demo-kdf", "argon2id", "key derivation function for -demo: argon2id or pbkdf2")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-demo passphrase] [-demo-kdf argon2id|pbkdf2] <number of pairs>\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(halfloop.ExitBadArgument)
	}
	numPairs, err := strconv.Atoi(flag.Arg(0))
	if err != nil || numPairs <= 0 {
		fmt.Fprintf(os.Stderr, "Bad number of pairs: %s\n", flag.Arg(0))
		os.Exit(halfloop.ExitBadArgument)
	}

	log := halfloop.NewStderrLogger()
	if err := halfloop.SelfTest(); err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}

	var demoKey struct{ hi, lo uint64 }
	var tweakSeed uint64
	if *demo != "" {
		kind := halfloop.KDFArgon2id
		if *demoKDF == "pbkdf2" {
			kind = halfloop.KDFPBKDF2
		} else if *demoKDF != "argon2id" {
			fmt.Fprintf(os.Stderr, "Unknown KDF: %s\n", *demoKDF)
			os.Exit(halfloop.ExitBadArgument)
		}
		salt := []byte("halfloop-generate-demo-salt")
		k, seed, err := halfloop.DeriveDemoMaterial([]byte(*demo), salt, kind)
		if err != nil {
			log.Error("%v", err)
			os.Exit(halfloop.ExitCodeFor(err))
		}
		demoKey.hi, demoKey.lo = k.Hi(), k.Lo()
		tweakSeed = seed
	}

	usedKey, tuples, err := halfloop.GeneratePairs(numPairs, halfloop.U128(demoKey.hi, demoKey.lo), tweakSeed, log)
	if err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}
	_ = usedKey

	w := os.Stdout
	for _, t := range tuples {
		fmt.Fprintf(w, "%06x %06x %016x\n", t.PT, t.CT, t.Tweak)
	}
}
