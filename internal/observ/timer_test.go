package observ

import (
	"bytes"
	"testing"
	"time"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	endCollect := tm.Begin("collect")
	endCheck := tm.Begin("check")
	endCheck("3 files")
	endCollect("")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("got %d phases", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 6 || r.Phases[1].DurationMS != 2 || r.TotalMS != 8 {
		t.Fatalf("report = %+v", r)
	}
	if r.Phases[1].Note != "3 files" {
		t.Fatalf("note = %q", r.Phases[1].Note)
	}

	var buf bytes.Buffer
	if err := tm.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	want := "timings:\n" +
		"  collect                 6.00 ms\n" +
		"  check                   2.00 ms  // 3 files\n" +
		"  total                   8.00 ms\n"
	if buf.String() != want {
		t.Fatalf("summary:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestNilTimerIsNoop(t *testing.T) {
	var tm *Timer
	tm.Begin("x")("done")
}
