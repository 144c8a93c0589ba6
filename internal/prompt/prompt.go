// Package prompt implements the interactive line-oriented assessment loop.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/report"
	"github.com/abhisek/woundcheck/internal/store"
)

// Assessor turns raw measurements into a response.
type Assessor interface {
	Assess(area, pain, exudate any) assessment.Response
}

// Recorder persists assessment records.
type Recorder interface {
	Record(ctx context.Context, rec store.Record) error
}

// Session reads area, pain and exudate from In, one line each, and writes a
// report to Out. Lines are forwarded to the assessor as raw strings.
type Session struct {
	In       io.Reader
	Out      io.Writer
	Assessor Assessor // default thresholds when nil
	Renderer report.Renderer
	Recorder Recorder  // optional; records are tagged with source "prompt"
	Warnings io.Writer // default os.Stderr

	// Once stops after a single assessment.
	Once bool
}

var quitWords = map[string]bool{"q": true, "quit": true, "exit": true}

const ruleWidth = 70

// Run prompts until input ends, the operator types q/quit/exit, or ctx is
// cancelled. Invalid input is reported and the loop continues. Returns
// ctx.Err() on cancellation and nil otherwise.
func (s *Session) Run(ctx context.Context) error {
	if s.Assessor == nil {
		s.Assessor = assessment.NewAssessor(nil)
	}
	if s.Warnings == nil {
		s.Warnings = os.Stderr
	}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.In, done)
	rule := strings.Repeat("-", ruleWidth)

	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(s.Out, "Interactive mode")
	fmt.Fprintln(s.Out, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "Enter wound measurements:")
	fmt.Fprintln(s.Out, "  - area: wound area in cm², a non-negative number")
	fmt.Fprintln(s.Out, "  - pain: pain level 0-10, 0 is no pain and 10 is the worst pain")
	fmt.Fprintln(s.Out, "  - exudate: discharge volume, one of None/Light/Moderate/Heavy")
	if !s.Once {
		fmt.Fprintln(s.Out, "Type q to quit.")
	}

	for {
		fmt.Fprintln(s.Out)
		var raw [3]string
		for i, label := range []string{"area", "pain", "exudate"} {
			fmt.Fprintf(s.Out, "Enter %s: ", label)
			line, ok, err := next(ctx, lines)
			if err != nil {
				return err
			}
			if !ok || quitWords[strings.ToLower(strings.TrimSpace(line))] {
				fmt.Fprintln(s.Out)
				return nil
			}
			raw[i] = line
		}

		resp := assessSafely(s.Assessor, raw[0], raw[1], raw[2])

		fmt.Fprintln(s.Out)
		fmt.Fprintln(s.Out, rule)
		fmt.Fprintln(s.Out, "Result:")
		fmt.Fprintln(s.Out, rule)
		fmt.Fprintln(s.Out, s.Renderer.Render(resp))

		if s.Recorder != nil {
			rec := store.NewRecord("prompt", raw[0], raw[1], raw[2], resp)
			if err := s.Recorder.Record(ctx, rec); err != nil {
				fmt.Fprintf(s.Warnings, "warning: failed to record assessment: %v\n", err)
			}
		}

		if s.Once {
			return nil
		}
	}
}

type lineResult struct {
	text string
	err  error
}

// readLines scans r on its own goroutine so a blocked read cannot hold up
// cancellation. The channel closes at EOF or once done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		send := func(l lineResult) bool {
			select {
			case ch <- l:
				return true
			case <-done:
				return false
			}
		}
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			if !send(lineResult{text: strings.TrimSuffix(sc.Text(), "\r")}) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			send(lineResult{err: err})
		}
	}()
	return ch
}

func next(ctx context.Context, lines <-chan lineResult) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case l, ok := <-lines:
		if !ok {
			return "", false, nil
		}
		if l.err != nil {
			return "", false, fmt.Errorf("read input: %w", l.err)
		}
		return l.text, true, nil
	}
}

func assessSafely(a Assessor, area, pain, exudate string) (resp assessment.Response) {
	defer func() {
		if p := recover(); p != nil {
			resp = assessment.Response{Success: false, Error: fmt.Sprintf("unexpected error: %v", p)}
		}
	}()
	return a.Assess(area, pain, exudate)
}
