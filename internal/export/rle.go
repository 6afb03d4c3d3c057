package export

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// MaxRun is the longest run a single record can describe.
const MaxRun = 255

// Run is one run-length record: Value repeated Count times.
type Run struct {
	Value int
	Count uint8
}

// Compress run-length encodes values. Runs longer than MaxRun are split into
// several records. An empty input yields no records.
func Compress(values []int) []Run {
	var runs []Run
	for i := 0; i < len(values); {
		v := values[i]
		n := 1
		for i+n < len(values) && values[i+n] == v && n < MaxRun {
			n++
		}
		runs = append(runs, Run{Value: v, Count: uint8(n)})
		i += n
	}
	return runs
}

// Decompress expands runs back into the original sequence.
func Decompress(runs []Run) []int {
	total := 0
	for _, r := range runs {
		total += int(r.Count)
	}
	out := make([]int, 0, total)
	for _, r := range runs {
		for j := 0; j < int(r.Count); j++ {
			out = append(out, r.Value)
		}
	}
	return out
}

// AppendRuns serializes runs as (varint value, count byte) pairs.
func AppendRuns(dst []byte, runs []Run) []byte {
	for _, r := range runs {
		dst = binary.AppendVarint(dst, int64(r.Value))
		dst = append(dst, r.Count)
	}
	return dst
}

// ParseRuns is the inverse of AppendRuns.
func ParseRuns(data []byte) ([]Run, error) {
	var runs []Run
	for off := 0; off < len(data); {
		v, n := binary.Varint(data[off:])
		if n <= 0 {
			return nil, errors.Errorf("rle: bad value varint at offset %d", off)
		}
		off += n
		if off >= len(data) {
			return nil, errors.Errorf("rle: missing count at offset %d", off)
		}
		count := data[off]
		off++
		if count == 0 {
			return nil, errors.Errorf("rle: zero-length run at offset %d", off-1)
		}
		runs = append(runs, Run{Value: int(v), Count: count})
	}
	return runs, nil
}
