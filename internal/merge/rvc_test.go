package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"keymerge/internal/curve"
)

func TestRestValueCrossing(t *testing.T) {
	tests := []struct {
		name      string
		committed []curve.Sample
		incoming  []curve.Sample
		want      []curve.Sample
	}{
		{
			// Exact-time matches at t=5 and t=10: the committed samples
			// fade halfway to the rest value and the incoming duplicates
			// are dropped; the unmatched incoming t=15 joins the tail.
			name:      "exact matches fade to rest",
			committed: seq([2]float64{0, 0}, [2]float64{5, 4}, [2]float64{10, 6}),
			incoming:  seq([2]float64{5, 8}, [2]float64{10, 2}, [2]float64{15, 0}),
			want:      seq([2]float64{0, 0}, [2]float64{5, 2}, [2]float64{10, 3}, [2]float64{15, 0}),
		},
		{
			// No exact time matches: values are untouched and the two
			// sequences interleave in one ascending pass.
			name:      "no exact matches interleaves",
			committed: seq([2]float64{0, 0}, [2]float64{6, 4}),
			incoming:  seq([2]float64{5, 8}, [2]float64{15, 2}),
			want:      seq([2]float64{0, 0}, [2]float64{5, 8}, [2]float64{6, 4}, [2]float64{15, 2}),
		},
		{
			name:      "no overlap concatenates",
			committed: seq([2]float64{0, 0}, [2]float64{3, 5}),
			incoming:  seq([2]float64{10, 1}, [2]float64{12, 2}),
			want:      seq([2]float64{0, 0}, [2]float64{3, 5}, [2]float64{10, 1}, [2]float64{12, 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RestValueCrossing(tt.committed, tt.incoming)
			if err != nil {
				t.Fatalf("RestValueCrossing() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpSamples...); diff != "" {
				t.Errorf("RestValueCrossing() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRestValueCrossing_MatchOutsideOverlapUntouched(t *testing.T) {
	// Only samples inside the overlap region may fade. The committed
	// sample at t=2 sits ahead of the overlap (which starts at t=5), so
	// it keeps its value no matter what the incoming curve does.
	committed := seq([2]float64{2, 4}, [2]float64{5, 4}, [2]float64{10, 6})
	incoming := seq([2]float64{5, 8}, [2]float64{12, 2})

	got, err := RestValueCrossing(committed, incoming)
	if err != nil {
		t.Fatalf("RestValueCrossing() error = %v", err)
	}

	want := seq([2]float64{2, 4}, [2]float64{5, 2}, [2]float64{10, 6}, [2]float64{12, 2})
	if diff := cmp.Diff(want, got, cmpSamples...); diff != "" {
		t.Errorf("RestValueCrossing() mismatch (-want +got):\n%s", diff)
	}
}
