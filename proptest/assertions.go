package proptest

import (
	"earthly/internal/catalog"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

func assertRecordsEqual(t *rapid.T, expected, actual []catalog.Destination) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func recordIDs(records []catalog.Destination) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func assertSubset(t *rapid.T, subset, superset []catalog.Destination) {
	t.Helper()
	superIDs := make(map[int]bool)
	for _, r := range superset {
		superIDs[r.ID] = true
	}
	for _, r := range subset {
		if !superIDs[r.ID] {
			t.Fatalf("subset contains id %d not in superset", r.ID)
		}
	}
}

// assertSubsequence fails unless subset appears in superset in the same
// relative order.
func assertSubsequence(t *rapid.T, subset, superset []catalog.Destination) {
	t.Helper()
	j := 0
	for _, r := range subset {
		for j < len(superset) && superset[j].ID != r.ID {
			j++
		}
		if j == len(superset) {
			t.Fatalf("order not preserved: %v is not a subsequence of %v", recordIDs(subset), recordIDs(superset))
		}
		j++
	}
}
