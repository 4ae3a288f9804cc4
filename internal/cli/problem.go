package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/swaptrace/swapplan"
)

// problem is one planning input as read from flags or a TOML file:
//
//	source      = [1, 2, 3, -1, 4, 5]
//	destination = [5, 1, -1, 3, 2, 4]
//	sentinel    = -1   # optional, defaults to -1
type problem struct {
	Source      []int `toml:"source"`
	Destination []int `toml:"destination"`
	Sentinel    int   `toml:"sentinel"`
}

// errEmptyList is returned when an array flag holds no values.
var errEmptyList = errors.New("empty list")

// loadProblem decodes a TOML problem file. Keys the file sets override the
// defaults; unknown keys are returned so the caller can warn about them.
func loadProblem(path string) (problem, []string, error) {
	p := problem{Sentinel: swapplan.DefaultSentinel}

	md, err := toml.DecodeFile(path, &p)
	if err != nil {
		return problem{}, nil, fmt.Errorf("read problem file %s: %w", path, err)
	}
	if !md.IsDefined("source") || !md.IsDefined("destination") {
		return problem{}, nil, fmt.Errorf("problem file %s: both source and destination are required", path)
	}

	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}

	return p, unknown, nil
}

// parseInts parses a comma- or space-separated integer list such as
// "1,2,3,-1" or "[1 2 3 -1]".
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errEmptyList
	}

	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", f)
		}
		out[i] = v
	}

	return out, nil
}
