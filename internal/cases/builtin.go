package cases

import "math"

// Category groups cases by what they exercise.
type Category string

const (
	CategoryNormal   Category = "normal"
	CategoryBoundary Category = "boundary"
	CategoryInvalid  Category = "invalid"
)

// Expected outcomes. ExpectInputError matches any rejected input.
const (
	ExpectGood       = "Good"
	ExpectWarning    = "Warning"
	ExpectCritical   = "Critical"
	ExpectInputError = "Input Error"
)

// Case is one raw input triple fed to the assessor. Raw values keep whatever
// type the source supplied.
type Case struct {
	Name     string
	Category Category
	Area     any
	Pain     any
	Exudate  any
	Expect   string // empty means unchecked
}

// Builtin returns the canonical regression table: normal, boundary and
// invalid-input cases.
func Builtin() []Case {
	return []Case{
		// Normal.
		{"stable wound", CategoryNormal, 1.5, 2, "None", ExpectGood},
		{"mid-size area", CategoryNormal, 3.0, 4, "Light", ExpectWarning},
		{"large area", CategoryNormal, 6.0, 2, "Moderate", ExpectCritical},
		{"severe pain", CategoryNormal, 1.0, 8, "None", ExpectCritical},
		{"heavy exudate", CategoryNormal, 2.0, 3, "Heavy", ExpectCritical},

		// Boundary.
		{"area at critical threshold", CategoryBoundary, 5.0, 2, "None", ExpectWarning},
		{"area just above critical threshold", CategoryBoundary, 5.01, 2, "None", ExpectCritical},
		{"pain at critical threshold", CategoryBoundary, 2.0, 7, "None", ExpectWarning},
		{"pain just above critical threshold", CategoryBoundary, 2.0, 7.01, "None", ExpectCritical},
		{"pain at good threshold", CategoryBoundary, 2.0, 3, "Light", ExpectWarning},
		// Area 2.0 is not below the Good area threshold, so this stays Warning.
		{"pain just below good threshold", CategoryBoundary, 2.0, 2.99, "Light", ExpectWarning},
		{"all minimum", CategoryBoundary, 0, 0, "None", ExpectGood},
		{"maximum pain with heavy exudate", CategoryBoundary, 0, 10, "Heavy", ExpectCritical},

		// Invalid input.
		{"negative area", CategoryInvalid, -1, 2, "None", ExpectInputError},
		{"pain above 10", CategoryInvalid, 1, 11, "None", ExpectInputError},
		{"pain below 0", CategoryInvalid, 1, -1, "None", ExpectInputError},
		{"unknown exudate", CategoryInvalid, 1, 2, "HIGH", ExpectInputError},
		{"non-numeric area", CategoryInvalid, "abc", 2, "None", ExpectInputError},
		{"non-numeric pain", CategoryInvalid, 1, "xyz", "None", ExpectInputError},
		{"infinite area", CategoryInvalid, math.Inf(1), 2, "None", ExpectInputError},
	}
}
