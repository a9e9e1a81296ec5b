// README: Date normalizer tests (month-name parsing, idempotence, range splitting).
package dates

import (
	"fmt"
	"testing"
	"time"
)

func TestNormalizeMonthNameDay(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"sep25", "2025-09-25"},
		{"sep 25", "2025-09-25"},
		{"Sep25th", "2025-09-25"},
		{"september 25", "2025-09-25"},
		{"SEPT 25", "2025-09-25"},
		{"oct2", "2025-10-02"}, // day zero-padded
		{"december 3rd", "2025-12-03"},
		{"jan1st", "2025-01-01"},
		{"may 31", "2025-05-31"},
	}
	for _, tc := range cases {
		got := NormalizeWithYear(tc.in, 2025)
		if got != tc.want {
			t.Errorf("NormalizeWithYear(%q, 2025) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeUsesCurrentYear(t *testing.T) {
	want := fmt.Sprintf("%d-09-25", time.Now().Year())
	if got := Normalize("sep25"); got != want {
		t.Errorf("Normalize(sep25) = %q, want %q", got, want)
	}
}

func TestNormalizeISOIdempotent(t *testing.T) {
	for _, in := range []string{"2025-09-25", "2024-01-01", "2026-12-31"} {
		once := NormalizeWithYear(in, 2025)
		twice := NormalizeWithYear(once, 2025)
		if once != in || twice != in {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestNormalizeGenericFallback(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025/09/25", "2025-09-25"},
		{"January 2, 2026", "2026-01-02"},
		{"2 January 2026", "2026-01-02"},
	}
	for _, tc := range cases {
		if got := NormalizeWithYear(tc.in, 2025); got != tc.want {
			t.Errorf("NormalizeWithYear(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeUnparsedPassthrough(t *testing.T) {
	// Never throws, never mangles: unknown expressions come back verbatim.
	for _, in := range []string{"25th", "next friday", "whenever", "", "   "} {
		if got := NormalizeWithYear(in, 2025); got != in {
			t.Errorf("NormalizeWithYear(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestNormalizeRangeSplitting(t *testing.T) {
	cases := []struct {
		in      string
		wantDep string
		wantRet string
	}{
		{"sep25 to oct2", "2025-09-25", "2025-10-02"},
		{"sep25 through oct2", "2025-09-25", "2025-10-02"},
		{"sep25-oct2", "2025-09-25", "2025-10-02"},
		{"sep 25 - oct 2", "2025-09-25", "2025-10-02"},
		{"2025-09-25 to 2025-10-02", "2025-09-25", "2025-10-02"},
		// single dates never split
		{"sep25", "2025-09-25", ""},
		{"2025-09-25", "2025-09-25", ""},
		// unparsed halves degrade gracefully
		{"whenever to oct2", "whenever", "2025-10-02"},
	}
	for _, tc := range cases {
		dep, ret := normalizeRangeWithYear(tc.in, 2025)
		if dep != tc.wantDep || ret != tc.wantRet {
			t.Errorf("normalizeRangeWithYear(%q) = (%q, %q), want (%q, %q)",
				tc.in, dep, ret, tc.wantDep, tc.wantRet)
		}
	}
}

// Year boundaries are never auto-incremented: "dec 30 - jan 3" resolves both
// halves into the same calendar year. Known limitation, kept intentionally.
func TestNormalizeRangeNoYearInference(t *testing.T) {
	dep, ret := normalizeRangeWithYear("dec 30 - jan 3", 2025)
	if dep != "2025-12-30" || ret != "2025-01-03" {
		t.Errorf("got (%q, %q), want same-year resolution", dep, ret)
	}
}
