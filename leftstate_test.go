package halfloop

import "testing"

// TestEnumerateLeftStatesSorted exercises the full 2^24 state enumeration
// against a real good pair and checks the documented sort order; the
// candidate byte it finds is not independently recomputed here since that
// would just reimplement the function, but BuildLeftTable's join correctness
// (tested in lefttable_test.go) depends on this ordering holding.
func TestEnumerateLeftStatesSorted(t *testing.T) {
	key := U128(0x2b7e151628aed2a6, 0xabf7158809cf4f3c)
	pair := synthesizeGoodPair(t, key, 0x543bd88000017550, 0x10)

	states := EnumerateLeftStates(pair)
	for i := 1; i < len(states); i++ {
		prev, cur := states[i-1], states[i]
		if cur.Key < prev.Key || (cur.Key == prev.Key && cur.State < prev.State) {
			t.Fatalf("EnumerateLeftStates() not sorted at index %d: %+v then %+v", i, prev, cur)
		}
	}
}
