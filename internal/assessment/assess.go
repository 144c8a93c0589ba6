package assessment

// Assessor runs validation followed by classification.
type Assessor struct {
	classifier *Classifier
}

// NewAssessor creates an Assessor. A nil classifier selects the default thresholds.
func NewAssessor(c *Classifier) *Assessor {
	if c == nil {
		c = defaultClassifier
	}
	return &Assessor{classifier: c}
}

// Assess validates the raw measurements and, if they are valid, classifies
// them. It never panics on malformed input; failures are reported in the
// returned Response.
func (a *Assessor) Assess(area, pain, exudate any) Response {
	in, err := Validate(area, pain, exudate)
	if err != nil {
		return Response{Success: false, Error: err.Error(), Err: err}
	}
	res := a.classifier.Classify(in)
	return Response{Success: true, Data: &res}
}

// Assess runs the default Assessor.
func Assess(area, pain, exudate any) Response {
	return NewAssessor(nil).Assess(area, pain, exudate)
}
