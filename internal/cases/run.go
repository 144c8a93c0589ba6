package cases

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/report"
	"github.com/abhisek/woundcheck/internal/store"
)

// Recorder persists assessment records. *store.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, rec store.Record) error
}

// Assessor turns raw measurements into a response. *assessment.Assessor
// satisfies it.
type Assessor interface {
	Assess(area, pain, exudate any) assessment.Response
}

// RunOptions configures Run. Zero values select defaults.
type RunOptions struct {
	Title    string   // banner text; default "Running cases"
	Assessor Assessor // default thresholds when nil
	Renderer report.Renderer
	Recorder Recorder  // optional; records are tagged with source "batch"
	Warnings io.Writer // default os.Stderr
}

// Mismatch is a case whose outcome differed from its expectation.
type Mismatch struct {
	Index int // 1-based
	Case  Case
	Got   string
}

// Summary reports what Run did.
type Summary struct {
	Total       int
	Run         int
	Checked     int
	Matched     int
	Mismatches  []Mismatch
	Interrupted bool
}

const ruleWidth = 70

// Run feeds each case to the assessor in order and writes a report per case.
// A panic while assessing one case is reported as an input error for that
// case and the run continues. Cancelling ctx stops before the next case.
func Run(ctx context.Context, w io.Writer, cs []Case, opts RunOptions) Summary {
	if opts.Title == "" {
		opts.Title = "Running cases"
	}
	if opts.Assessor == nil {
		opts.Assessor = assessment.NewAssessor(nil)
	}
	if opts.Warnings == nil {
		opts.Warnings = os.Stderr
	}

	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("-", ruleWidth)
	sum := Summary{Total: len(cs)}

	fmt.Fprintln(w, heavy)
	fmt.Fprintln(w, opts.Title)
	fmt.Fprintf(w, "Total: %d cases\n", len(cs))
	fmt.Fprintln(w, heavy)

	for i, c := range cs {
		if ctx.Err() != nil {
			sum.Interrupted = true
			break
		}

		fmt.Fprintf(w, "\n[Case %d/%d] %s\n", i+1, len(cs), caseLabel(c))
		fmt.Fprintf(w, "Input: area=%v, pain=%v, exudate=%v\n", c.Area, c.Pain, c.Exudate)
		fmt.Fprintln(w, light)

		resp := assessSafely(opts.Assessor, c)
		fmt.Fprintln(w, opts.Renderer.Render(resp))
		sum.Run++

		if opts.Recorder != nil {
			rec := store.NewRecord("batch", c.Area, c.Pain, c.Exudate, resp)
			if err := opts.Recorder.Record(ctx, rec); err != nil {
				fmt.Fprintf(opts.Warnings, "warning: failed to record case %d: %v\n", i+1, err)
			}
		}

		if c.Expect == "" {
			continue
		}
		sum.Checked++
		if got := report.Outcome(resp); got == c.Expect {
			sum.Matched++
		} else {
			sum.Mismatches = append(sum.Mismatches, Mismatch{Index: i + 1, Case: c, Got: got})
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavy)
	if sum.Interrupted {
		fmt.Fprintf(w, "Interrupted after %d of %d cases\n", sum.Run, sum.Total)
	} else {
		fmt.Fprintf(w, "Done (%d cases run, %d/%d matched expectations)\n", sum.Run, sum.Matched, sum.Checked)
	}
	for _, m := range sum.Mismatches {
		fmt.Fprintf(w, "  case %d (%s): expected %s, got %s\n", m.Index, m.Case.Name, m.Case.Expect, m.Got)
	}
	fmt.Fprintln(w, heavy)

	return sum
}

func caseLabel(c Case) string {
	if c.Category == "" {
		return c.Name
	}
	return string(c.Category) + ": " + c.Name
}

func assessSafely(a Assessor, c Case) (resp assessment.Response) {
	defer func() {
		if p := recover(); p != nil {
			resp = assessment.Response{Success: false, Error: fmt.Sprintf("unexpected error: %v", p)}
		}
	}()
	return a.Assess(c.Area, c.Pain, c.Exudate)
}
