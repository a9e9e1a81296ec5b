// README: Ranking tests (duration parsing, stability, best-score ordering).
package ranking

import (
	"testing"

	"skylift/internal/types"
)

func offer(id string, price float64, duration string) types.FlightOffer {
	return types.FlightOffer{ID: id, Price: price, Duration: duration}
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"10h 00m", 600},
		{"8h 30m", 510},
		{"15h", 900}, // missing minutes -> 0
		{"45m", 45},  // missing hours -> 0
		{"", 0},      // both absent
		{"13h 5m", 785},
	}
	for _, tc := range cases {
		if got := DurationMinutes(tc.in); got != tc.want {
			t.Errorf("DurationMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSortFastestTieOnPrice(t *testing.T) {
	a := offer("A", 600, "10h 00m")
	b := offer("B", 600, "8h 00m")

	got := Sort([]types.FlightOffer{a, b}, ModeFastest)
	if got[0].ID != "B" || got[1].ID != "A" {
		t.Fatalf("fastest sort = [%s %s], want [B A]", got[0].ID, got[1].ID)
	}
}

func TestSortCheapestStableOnEqualPrice(t *testing.T) {
	a := offer("A", 600, "10h 00m")
	b := offer("B", 600, "8h 00m")

	got := Sort([]types.FlightOffer{a, b}, ModeCheapest)
	if got[0].ID != "A" || got[1].ID != "B" {
		t.Fatalf("cheapest sort = [%s %s], want original order [A B]", got[0].ID, got[1].ID)
	}
}

func TestSortBestScore(t *testing.T) {
	// A: 800/2 + 300 = 700; B: 400/2 + 1200 = 1400 -> A first.
	a := offer("A", 800, "5h 00m")
	b := offer("B", 400, "20h 00m")

	got := Sort([]types.FlightOffer{b, a}, ModeBest)
	if got[0].ID != "A" || got[1].ID != "B" {
		t.Fatalf("best sort = [%s %s], want [A B]", got[0].ID, got[1].ID)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := []types.FlightOffer{offer("A", 900, "5h 00m"), offer("B", 100, "5h 00m")}
	Sort(in, ModeCheapest)
	if in[0].ID != "A" {
		t.Fatal("Sort mutated its input slice")
	}
}

func TestPick(t *testing.T) {
	offers := []types.FlightOffer{
		offer("A", 800, "5h 00m"),
		offer("B", 400, "20h 00m"),
		offer("C", 500, "9h 00m"),
	}

	cases := []struct {
		mode Mode
		want string
	}{
		{ModeCheapest, "B"},
		{ModeFastest, "A"},
		{ModeBest, "A"}, // 700 vs 1400 vs 790
	}
	for _, tc := range cases {
		got, ok := Pick(offers, tc.mode)
		if !ok || got.ID != tc.want {
			t.Errorf("Pick(%s) = %q ok=%v, want %q", tc.mode, got.ID, ok, tc.want)
		}
	}

	if _, ok := Pick(nil, ModeBest); ok {
		t.Error("Pick on empty list must report no selection")
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"best", "cheapest", "fastest"} {
		if _, ok := ParseMode(valid); !ok {
			t.Errorf("ParseMode(%q) rejected a valid mode", valid)
		}
	}
	if _, ok := ParseMode("price"); ok {
		t.Error("ParseMode accepted an unknown mode")
	}
}
