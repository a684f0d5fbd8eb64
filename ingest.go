package halfloop

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/absfs/absfs"
)

// LoadTuples reads tuples from path on fs, one per line in the form
// "hex6 hex6 hex16" (pt, ct, tweak). Malformed lines are silently skipped,
// matching read_input_tuples' skip-to-newline behavior. The result is
// sorted lexicographically and deduplicated.
func LoadTuples(fs absfs.FileSystem, path string) ([]Tuple, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	var tuples []Tuple
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		tuple, ok := parseTupleLine(line)
		if !ok {
			continue
		}
		tuples = append(tuples, tuple)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, &IOError{Path: path, Op: "read", Err: err}
	}

	sort.Slice(tuples, func(i, j int) bool { return tuples[i].less(tuples[j]) })
	return dedupTuples(tuples), nil
}

func dedupTuples(tuples []Tuple) []Tuple {
	if len(tuples) == 0 {
		return tuples
	}
	out := tuples[:1]
	for _, t := range tuples[1:] {
		if !t.equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// parseTupleLine parses one "pt ct tweak" line of hex fields, separated by
// any run of whitespace. A malformed line (wrong field count, wrong field
// widths, non-hex characters) is reported
// via ok=false rather than an error, mirroring the reference parser's
// silent skip-to-newline.
func parseTupleLine(line string) (Tuple, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 || len(fields[0]) != 6 || len(fields[1]) != 6 || len(fields[2]) != 16 {
		return Tuple{}, false
	}
	pt, err := strconv.ParseUint(fields[0], 16, 32)
	if err != nil {
		return Tuple{}, false
	}
	ct, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return Tuple{}, false
	}
	tweak, err := strconv.ParseUint(fields[2], 16, 64)
	if err != nil {
		return Tuple{}, false
	}
	return Tuple{PT: uint32(pt), CT: uint32(ct), Tweak: tweak}, true
}

// WriteTuples writes tuples to path on fs in the canonical "pt ct tweak"
// text format, one per line: the same format the data generator prints.
func WriteTuples(fs absfs.FileSystem, path string, tuples []Tuple) error {
	f, err := fs.Create(path)
	if err != nil {
		return &IOError{Path: path, Op: "create", Err: err}
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, t := range tuples {
		if _, err := fmt.Fprintf(w, "%06x %06x %016x\n", t.PT, t.CT, t.Tweak); err != nil {
			return &IOError{Path: path, Op: "write", Err: err}
		}
	}
	return w.Flush()
}
