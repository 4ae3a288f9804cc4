package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/swaptrace/swapplan"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// checkFormat rejects unknown --format values before any work is done.
func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, "":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
}

// planResult is the JSON document written by --format json.
type planResult struct {
	Source      []int    `json:"source"`
	Destination []int    `json:"destination"`
	Sentinel    int      `json:"sentinel"`
	Lookup      string   `json:"lookup"`
	Steps       [][2]int `json:"steps"`
}

func newPlanResult(p problem, mode swapplan.LookupMode, plan swapplan.Plan) planResult {
	steps := make([][2]int, len(plan))
	for k, s := range plan {
		steps[k] = [2]int{s.I, s.J}
	}

	return planResult{
		Source:      p.Source,
		Destination: p.Destination,
		Sentinel:    p.Sentinel,
		Lookup:      mode.String(),
		Steps:       steps,
	}
}

// writePlan renders plan to w in the requested format. showInput prefixes
// the text form with the arrays, which the random command needs since the
// user never saw them.
func writePlan(w io.Writer, format string, r planResult, showInput bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatText, "":
		if showInput {
			if _, err := fmt.Fprintf(w, "source: %v\ndestination: %v\n", r.Source, r.Destination); err != nil {
				return err
			}
		}
		for _, s := range r.Steps {
			if _, err := fmt.Fprintf(w, "%d %d\n", s[0], s[1]); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "steps: %d\n", len(r.Steps))
		return err
	default:
		return checkFormat(format)
	}
}
