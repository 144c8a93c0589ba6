package assessment

// Status is the clinical risk level assigned to a wound.
type Status string

const (
	StatusGood     Status = "Good"
	StatusWarning  Status = "Warning"
	StatusCritical Status = "Critical"
)

// Exudate is the canonical (title-cased) wound discharge volume.
type Exudate string

const (
	ExudateNone     Exudate = "None"
	ExudateLight    Exudate = "Light"
	ExudateModerate Exudate = "Moderate"
	ExudateHeavy    Exudate = "Heavy"
)

// ExudateLevels lists the recognised exudate values in increasing volume.
var ExudateLevels = []Exudate{ExudateNone, ExudateLight, ExudateModerate, ExudateHeavy}

// Valid reports whether e is one of the canonical exudate values.
func (e Exudate) Valid() bool {
	switch e {
	case ExudateNone, ExudateLight, ExudateModerate, ExudateHeavy:
		return true
	}
	return false
}

// ValidatedInput holds measurements that passed validation.
// Only Validate constructs one from raw values.
type ValidatedInput struct {
	Area    float64 // cm², finite and >= 0
	Pain    float64 // finite, 0–10 inclusive
	Exudate Exudate
}

// Result is the outcome of classifying a ValidatedInput.
type Result struct {
	Status  Status   `json:"status"`
	Reasons []string `json:"reasons"`
	Advice  string   `json:"advice"`
}

// Response is the envelope returned by Assess: exactly one of Data or Error is set.
type Response struct {
	Success bool    `json:"success"`
	Data    *Result `json:"data,omitempty"`
	Error   string  `json:"error,omitempty"`

	// Err carries the *ValidationError behind Error for errors.Is/As checks.
	Err error `json:"-"`
}
