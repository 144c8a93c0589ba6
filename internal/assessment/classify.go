package assessment

import "fmt"

// Default decision thresholds. Critical comparisons are strictly greater-than,
// Good comparisons strictly less-than.
const (
	CriticalAreaThreshold = 5.0 // cm²
	CriticalPainThreshold = 7.0 // 0–10 scale
	GoodAreaThreshold     = 2.0 // cm²
	GoodPainThreshold     = 3.0 // 0–10 scale
)

// Fixed advisory and reason texts.
const (
	AdviceCritical = "High-risk wound; prompt evaluation by a healthcare professional is recommended."
	AdviceGood     = "Wound is stable; continue routine cleaning and regular observation."
	AdviceWarning  = "Wound needs attention; increase observation frequency and watch for changes in pain and exudate."

	ReasonGood    = "all indicators within stable range"
	ReasonWarning = "between Good and Critical; continued monitoring needed"
)

// Thresholds holds the classifier cut-offs.
type Thresholds struct {
	CriticalArea float64
	CriticalPain float64
	GoodArea     float64
	GoodPain     float64
}

// DefaultThresholds returns the fixed clinical thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalArea: CriticalAreaThreshold,
		CriticalPain: CriticalPainThreshold,
		GoodArea:     GoodAreaThreshold,
		GoodPain:     GoodPainThreshold,
	}
}

// Classifier assigns a Status to validated measurements.
type Classifier struct {
	t Thresholds
}

// NewClassifier creates a classifier using the given thresholds.
func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{t: t}
}

// Classify evaluates Critical first (collecting every triggered condition),
// then Good, and falls back to Warning. It performs no bounds checking.
func (c *Classifier) Classify(in ValidatedInput) Result {
	var reasons []string
	if in.Area > c.t.CriticalArea {
		reasons = append(reasons, fmt.Sprintf("wound area exceeds %s cm²", formatThreshold(c.t.CriticalArea)))
	}
	if in.Pain > c.t.CriticalPain {
		reasons = append(reasons, fmt.Sprintf("pain level exceeds %s", formatThreshold(c.t.CriticalPain)))
	}
	if in.Exudate == ExudateHeavy {
		reasons = append(reasons, "exudate volume is Heavy")
	}
	if len(reasons) > 0 {
		return Result{Status: StatusCritical, Reasons: reasons, Advice: AdviceCritical}
	}

	lowExudate := in.Exudate == ExudateNone || in.Exudate == ExudateLight
	if in.Area < c.t.GoodArea && in.Pain < c.t.GoodPain && lowExudate {
		return Result{Status: StatusGood, Reasons: []string{ReasonGood}, Advice: AdviceGood}
	}

	return Result{Status: StatusWarning, Reasons: []string{ReasonWarning}, Advice: AdviceWarning}
}

var defaultClassifier = NewClassifier(DefaultThresholds())

// Classify runs the default classifier.
func Classify(in ValidatedInput) Result {
	return defaultClassifier.Classify(in)
}

// formatThreshold renders 5 as "5" and 5.5 as "5.5".
func formatThreshold(f float64) string {
	return fmt.Sprintf("%g", f)
}
