package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/google/uuid"
)

const tableAssessments = "assessments"

// StatusInputError is the status key used for rejected input in CountByStatus.
const StatusInputError = "Input Error"

// Record is one logged assessment: the raw input as received and the outcome.
type Record struct {
	ID         string
	CreatedAt  time.Time
	Source     string // cli, batch, prompt, http
	AreaRaw    string
	PainRaw    string
	ExudateRaw string
	Success    bool
	Status     string
	Reasons    []string
	Advice     string
	Error      string
}

// NewRecord builds a Record from raw inputs and the response they produced.
func NewRecord(source string, area, pain, exudate any, resp assessment.Response) Record {
	rec := Record{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now().UTC(),
		Source:     source,
		AreaRaw:    fmt.Sprint(area),
		PainRaw:    fmt.Sprint(pain),
		ExudateRaw: fmt.Sprint(exudate),
		Success:    resp.Success,
		Error:      resp.Error,
	}
	if resp.Data != nil {
		rec.Status = string(resp.Data.Status)
		rec.Reasons = append([]string(nil), resp.Data.Reasons...)
		rec.Advice = resp.Data.Advice
	}
	return rec
}

// QueryOpts filters Recent.
type QueryOpts struct {
	Limit  int    // max results (0 = unlimited)
	Status string // exact status, or StatusInputError for failures
	Source string
}

// Record appends rec to the assessment log.
func (s *Store) Record(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	reasons, err := json.Marshal(nonNil(rec.Reasons))
	if err != nil {
		return fmt.Errorf("marshal reasons: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableAssessments).
		Columns("id", "created_at", "source", "area_raw", "pain_raw", "exudate_raw",
			"success", "status", "reasons", "advice", "error").
		Values(rec.ID, rec.CreatedAt.UnixNano(), rec.Source, rec.AreaRaw, rec.PainRaw, rec.ExudateRaw,
			rec.Success, rec.Status, string(reasons), rec.Advice, rec.Error).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// Recent returns logged assessments, newest first.
func (s *Store) Recent(ctx context.Context, opts QueryOpts) ([]Record, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select("id", "created_at", "source", "area_raw", "pain_raw", "exudate_raw",
		"success", "status", "reasons", "advice", "error").
		From(b.Table(tableAssessments)).
		OrderBy(entsql.Desc("created_at"))
	switch opts.Status {
	case "":
	case StatusInputError:
		sel.Where(entsql.EQ("success", false))
	default:
		sel.Where(entsql.EQ("status", opts.Status))
	}
	if opts.Source != "" {
		sel.Where(entsql.EQ("source", opts.Source))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec       Record
			createdAt int64
			reasons   string
		)
		if err := rows.Scan(&rec.ID, &createdAt, &rec.Source, &rec.AreaRaw, &rec.PainRaw, &rec.ExudateRaw,
			&rec.Success, &rec.Status, &reasons, &rec.Advice, &rec.Error); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()
		if err := json.Unmarshal([]byte(reasons), &rec.Reasons); err != nil {
			return nil, fmt.Errorf("unmarshal reasons for %s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return out, nil
}

// CountByStatus returns the number of logged assessments per status.
// Rejected inputs are counted under StatusInputError.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select("success", "status", entsql.Count("*")).
		From(b.Table(tableAssessments)).
		GroupBy("success", "status").
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("count assessments: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			success bool
			status  string
			n       int
		)
		if err := rows.Scan(&success, &status, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		if !success {
			status = StatusInputError
		}
		counts[status] += n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
