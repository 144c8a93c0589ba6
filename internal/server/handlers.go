package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/schema"
	"github.com/abhisek/woundcheck/internal/store"
	"github.com/gin-gonic/gin"
)

// AssessRequestSchema requires the three measurements but leaves their types
// open; type checking is the validator's job.
var AssessRequestSchema = &schema.Schema{
	Name: "woundcheck-assess-request",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"area":    map[string]any{"description": "Wound area in cm²"},
			"pain":    map[string]any{"description": "Pain level 0-10"},
			"exudate": map[string]any{"description": "None/Light/Moderate/Heavy"},
		},
		"required":             []any{"area", "pain", "exudate"},
		"additionalProperties": false,
	},
}

const (
	maxListLimit = 500
	maxBodyBytes = 1 << 16
)

// assess answers 200 with a success envelope, 422 with a failure envelope
// for rejected measurements, and 400 for a malformed body.
func (s *Server) assess(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	doc, err := AssessRequestSchema.DecodeAndValidate(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, assessment.Response{
			Success: false,
			Error:   "request body must be a JSON object with area, pain and exudate: " + err.Error(),
		})
		return
	}

	fields := doc.(map[string]any)
	area, pain, exudate := fields["area"], fields["pain"], fields["exudate"]
	resp := s.opts.Assessor.Assess(area, pain, exudate)

	if s.opts.Store != nil {
		rec := store.NewRecord("http", area, pain, exudate, resp)
		if err := s.opts.Store.Record(c.Request.Context(), rec); err != nil {
			fmt.Fprintf(s.opts.Warnings, "warning: failed to record assessment: %v\n", err)
		}
	}

	code := http.StatusOK
	if !resp.Success {
		code = http.StatusUnprocessableEntity
	}
	c.JSON(code, resp)
}

type recordJSON struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	Input     inputJSON `json:"input"`
	Success   bool      `json:"success"`
	Status    string    `json:"status,omitempty"`
	Reasons   []string  `json:"reasons,omitempty"`
	Advice    string    `json:"advice,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type inputJSON struct {
	Area    string `json:"area"`
	Pain    string `json:"pain"`
	Exudate string `json:"exudate"`
}

func toRecordJSON(r store.Record) recordJSON {
	return recordJSON{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Source:    r.Source,
		Input:     inputJSON{Area: r.AreaRaw, Pain: r.PainRaw, Exudate: r.ExudateRaw},
		Success:   r.Success,
		Status:    r.Status,
		Reasons:   r.Reasons,
		Advice:    r.Advice,
		Error:     r.Error,
	}
}

func (s *Server) listAssessments(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be an integer between 1 and %d", maxListLimit)})
			return
		}
		limit = n
	}

	recs, err := s.opts.Store.Recent(c.Request.Context(), store.QueryOpts{
		Limit:  limit,
		Status: c.Query("status"),
		Source: c.Query("source"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]recordJSON, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRecordJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"assessments": out})
}

func (s *Server) assessmentStats(c *gin.Context) {
	counts, err := s.opts.Store.CountByStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "by_status": counts})
}
