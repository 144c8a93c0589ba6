package cases

import (
	"fmt"
	"io"

	"github.com/abhisek/woundcheck/internal/schema"
)

// FileSchema describes a case file. Measurement values are left untyped so
// files can carry malformed input on purpose.
var FileSchema = &schema.Schema{
	Name: "woundcheck-cases",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cases": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type": "string",
						},
						"category": map[string]any{
							"type": "string",
						},
						"area": map[string]any{
							"description": "Wound area in cm²; any JSON type",
						},
						"pain": map[string]any{
							"description": "Pain level 0-10; any JSON type",
						},
						"exudate": map[string]any{
							"description": "None/Light/Moderate/Heavy; any JSON type",
						},
						"expect": map[string]any{
							"type": "string",
							"enum": []any{ExpectGood, ExpectWarning, ExpectCritical, ExpectInputError},
						},
					},
					"required":             []any{"area", "pain", "exudate"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"cases"},
		"additionalProperties": false,
	},
}

// Load reads a JSON case file. Numbers are kept as json.Number so the
// assessor sees them exactly as written.
func Load(r io.Reader) ([]Case, error) {
	doc, err := FileSchema.DecodeAndValidate(r)
	if err != nil {
		return nil, fmt.Errorf("load cases: %w", err)
	}

	// Shape is guaranteed by the schema.
	items := doc.(map[string]any)["cases"].([]any)
	out := make([]Case, 0, len(items))
	for i, item := range items {
		m := item.(map[string]any)
		c := Case{
			Area:    m["area"],
			Pain:    m["pain"],
			Exudate: m["exudate"],
		}
		c.Name, _ = m["name"].(string)
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if cat, ok := m["category"].(string); ok {
			c.Category = Category(cat)
		}
		c.Expect, _ = m["expect"].(string)
		out = append(out, c)
	}
	return out, nil
}
