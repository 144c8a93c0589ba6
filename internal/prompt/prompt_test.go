package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/woundcheck/internal/assessment"
	"github.com/abhisek/woundcheck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, s Session) string {
	t.Helper()
	var out bytes.Buffer
	s.In = strings.NewReader(input)
	s.Out = &out
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestSession_Once(t *testing.T) {
	out := run(t, "1.5\n2\nnone\n", Session{Once: true})

	assert.Contains(t, out, "Enter area: Enter pain: Enter exudate: ")
	assert.Contains(t, out, "Status: Good")
	assert.NotContains(t, out, "Type q to quit.")
}

func TestSession_ContinuesAfterInvalidInput(t *testing.T) {
	input := strings.Join([]string{
		"abc", "2", "None",   // rejected
		"6", "2", "Moderate", // critical
		"", "", "",           // rejected, empty area
	}, "\n") + "\n"

	out := run(t, input, Session{})
	assert.Equal(t, 2, strings.Count(out, "Status: Input Error"))
	assert.Contains(t, out, "Reason: area must be numeric")
	assert.Contains(t, out, "Status: Critical")
	assert.Equal(t, 3, strings.Count(out, "Result:"))
}

func TestSession_Quit(t *testing.T) {
	out := run(t, "1\n1\nNone\nq\n", Session{})
	assert.Equal(t, 1, strings.Count(out, "Result:"))

	out = run(t, "1\nQUIT\n", Session{})
	assert.NotContains(t, out, "Result:")
}

func TestSession_EOFMidEntry(t *testing.T) {
	out := run(t, "1\n2", Session{})
	assert.NotContains(t, out, "Result:")
}

func TestSession_CRLF(t *testing.T) {
	out := run(t, "1\r\n1\r\nlight\r\n", Session{Once: true})
	assert.Contains(t, out, "Status: Good")
}

type spyAssessor struct{ got [][3]any }

func (s *spyAssessor) Assess(area, pain, exudate any) assessment.Response {
	s.got = append(s.got, [3]any{area, pain, exudate})
	return assessment.Assess(area, pain, exudate)
}

func TestSession_ForwardsRawStrings(t *testing.T) {
	spy := &spyAssessor{}
	run(t, " 2.5 \n7\n  HEAVY\n", Session{Assessor: spy, Once: true})

	require.Len(t, spy.got, 1)
	assert.Equal(t, [3]any{" 2.5 ", "7", "  HEAVY"}, spy.got[0])
}

type panicky struct{}

func (panicky) Assess(area, pain, exudate any) assessment.Response { panic("bad state") }

func TestSession_RecoversFromPanic(t *testing.T) {
	out := run(t, "1\n1\nNone\n", Session{Assessor: panicky{}, Once: true})
	assert.Contains(t, out, "Reason: unexpected error: bad state")
}

type memRecorder struct{ recs []store.Record }

func (m *memRecorder) Record(_ context.Context, rec store.Record) error {
	m.recs = append(m.recs, rec)
	return nil
}

func TestSession_Records(t *testing.T) {
	rec := &memRecorder{}
	run(t, "1\n11\nNone\n0\n0\nNone\n", Session{Recorder: rec})

	require.Len(t, rec.recs, 2)
	assert.Equal(t, "prompt", rec.recs[0].Source)
	assert.False(t, rec.recs[0].Success)
	assert.Equal(t, "11", rec.recs[0].PainRaw)
	assert.Equal(t, "Good", rec.recs[1].Status)
}

func TestSession_Cancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	s := &Session{In: pr, Out: io.Discard}
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// endless yields "1\n" forever.
type endless struct{}

func (endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = "1\n"[i%2]
	}
	return len(p) - len(p)%2, nil
}

func TestReadLines_StopsWhenDone(t *testing.T) {
	done := make(chan struct{})
	lines := readLines(endless{}, done)

	l := <-lines
	require.NoError(t, l.err)
	assert.Equal(t, "1", l.text)

	close(done)
	finished := make(chan struct{})
	go func() {
		for range lines {
		}
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still running after done was closed")
	}
}

func TestSession_OnceWithEndlessInput(t *testing.T) {
	var out bytes.Buffer
	s := Session{In: endless{}, Out: &out, Once: true}
	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "exudate is not one of None/Light/Moderate/Heavy")
}
