// Package report renders assessment responses as human-readable text.
package report

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/ui/theme"
)

// StatusInputError is the status label shown for rejected input.
const StatusInputError = "Input Error"

// AdviceInputError is the remediation line shown for rejected input.
const AdviceInputError = "The input is invalid; check the values and their format, then try again."

// Renderer formats responses. With Color set, labels and statuses are styled
// with ANSI escapes; otherwise output is plain text.
type Renderer struct {
	Color bool
}

// Format renders resp as plain text.
func Format(resp assessment.Response) string {
	return Renderer{}.Render(resp)
}

// Render renders resp. Failures produce a fixed three-line block; successes
// list the status, each reason as a bullet, and the advice.
func (r Renderer) Render(resp assessment.Response) string {
	if !resp.Success || resp.Data == nil {
		return r.renderError(resp.Error)
	}
	return r.renderResult(*resp.Data)
}

func (r Renderer) renderError(msg string) string {
	lines := []string{
		r.label("Status:") + " " + r.style(theme.StatusInputError, StatusInputError),
		r.label("Reason:") + " " + msg,
		r.label("Advice:") + " " + AdviceInputError,
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) renderResult(res assessment.Result) string {
	lines := []string{
		r.label("Status:") + " " + r.style(statusStyle(res.Status), string(res.Status)),
		r.label("Reasons:"),
	}
	for _, reason := range res.Reasons {
		lines = append(lines, "  - "+reason)
	}
	lines = append(lines, r.label("Advice:")+" "+res.Advice)
	return strings.Join(lines, "\n")
}

func (r Renderer) label(s string) string {
	return r.style(theme.Label, s)
}

func (r Renderer) style(st lipgloss.Style, s string) string {
	if !r.Color {
		return s
	}
	return st.Render(s)
}

func statusStyle(s assessment.Status) lipgloss.Style {
	switch s {
	case assessment.StatusGood:
		return theme.StatusGood
	case assessment.StatusCritical:
		return theme.StatusCritical
	default:
		return theme.StatusWarning
	}
}

// Outcome returns the status label for resp: the classified status, or
// StatusInputError when the input was rejected.
func Outcome(resp assessment.Response) string {
	if !resp.Success || resp.Data == nil {
		return StatusInputError
	}
	return string(resp.Data.Status)
}
