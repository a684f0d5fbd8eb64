package halfloop

import "testing"

func candKey(rk5b, leftKey byte, rk8910 uint64) CandidateKey {
	return CandidateKey{Left: LeftTableEntry{Key: leftKey}, RK8910: rk8910, RK5B: rk5b}
}

func TestSortCandidateKeysOrdersByRK5BThenKeyThenRK8910(t *testing.T) {
	keys := []CandidateKey{
		candKey(2, 0, 100),
		candKey(1, 5, 50),
		candKey(1, 2, 10),
		candKey(1, 2, 5),
	}
	SortCandidateKeys(keys)
	for i := 1; i < len(keys); i++ {
		if keys[i].less(keys[i-1]) {
			t.Fatalf("SortCandidateKeys() not sorted at %d: %+v before %+v", i, keys[i-1], keys[i])
		}
	}
	if keys[0].RK8910 != 5 || keys[1].RK8910 != 10 {
		t.Errorf("unexpected order: %+v", keys)
	}
}

func TestCandidateKeysIntersectionKeepsShared(t *testing.T) {
	set1 := []CandidateKey{candKey(1, 1, 1), candKey(1, 1, 2), candKey(2, 1, 1)}
	set2 := []CandidateKey{candKey(1, 1, 2), candKey(2, 1, 1)}
	SortCandidateKeys(set1)
	SortCandidateKeys(set2)

	got := CandidateKeysIntersection(set1, set2)
	if len(got) != 2 {
		t.Fatalf("CandidateKeysIntersection() = %d entries, want 2: %+v", len(got), got)
	}
	for _, k := range got {
		if !k.equal(candKey(1, 1, 2)) && !k.equal(candKey(2, 1, 1)) {
			t.Errorf("unexpected surviving candidate: %+v", k)
		}
	}
}

func TestCandidateKeysIntersectionEmptyWhenDisjoint(t *testing.T) {
	set1 := []CandidateKey{candKey(1, 1, 1)}
	set2 := []CandidateKey{candKey(2, 2, 2)}
	got := CandidateKeysIntersection(set1, set2)
	if len(got) != 0 {
		t.Errorf("CandidateKeysIntersection() = %+v, want empty", got)
	}
}

func TestFindCandidateKeysEmptyLeftTable(t *testing.T) {
	tp := TuplePair{A: Tuple{CT: 0x010203, Tweak: 0x543bd88000017550}}
	rightMSB := BuildRightTable(tp, tp, tp, false)
	rightMid := BuildRightTable(tp, tp, tp, true)
	got := FindCandidateKeys(tp, tp, tp, nil, rightMSB, rightMid)
	if len(got) != 0 {
		t.Errorf("FindCandidateKeys(empty left table) = %+v, want empty", got)
	}
}
