// Command halfloop-tweak parses a 64-bit HALFLOOP-24 tweak and prints its
// structured fields, or reports a format error.
package main

import (
	"fmt"
	"os"
	"strconv"

	halfloop "github.com/halfloop/halfloop"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <hex64>\n", os.Args[0])
		os.Exit(halfloop.ExitBadArgument)
	}

	raw, err := strconv.ParseUint(os.Args[1], 16, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Format error.")
		os.Exit(halfloop.ExitFormatError)
	}
	fmt.Printf("Tweak:       %016x\n", raw)

	tweak, err := halfloop.ParseTweak(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Format error.")
		os.Exit(halfloop.ExitCodeFor(err))
	}

	fmt.Printf("Month:       %d\n", tweak.Month)
	fmt.Printf("Day:         %d\n", tweak.Day)
	fmt.Printf("Coarse time: %d\n", tweak.CoarseTime)
	fmt.Printf("Fine time:   %d\n", tweak.FineTime)
	fmt.Printf("Time:        %02d:%02d:%02d\n", tweak.CoarseTime/60, tweak.CoarseTime%60, tweak.FineTime)
	fmt.Printf("Word:        %d\n", tweak.Word)
	fmt.Printf("Frequency:   %.1f kHz\n", float64(tweak.Frequency)/1000.0)
}
