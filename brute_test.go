package halfloop

import "testing"

func TestTestPartialKeyMatchesItsOwnComputation(t *testing.T) {
	key := U128(0x2b7e151628aed2a6, 0xabf7158809cf4f3c)
	tweak := uint64(0x543bd88000017550)
	pt := uint32(0x0a0b0c)

	rk := keySchedule(key, tweak)
	ct := pt ^ rk[0]
	for i := 1; i < 8; i++ {
		ct = mixColumns(rotateRows(subBytes(ct))) ^ rk[i]
	}
	target := mixColumns(rotateRows(subBytes(ct)))

	if !testPartialKey(key, pt, tweak, target) {
		t.Error("testPartialKey() = false for a target built from the same key schedule")
	}
	if testPartialKey(key, pt, tweak, target^1) {
		t.Error("testPartialKey() = true for a mismatched target")
	}
}

func TestBruteForceStateNextWorkUnitExhausts(t *testing.T) {
	state := &bruteForceState{}
	seen := make(map[uint32]bool)
	for i := 0; i < rk7Space; i++ {
		v := state.nextWorkUnit(nil)
		if v >= rk7Space {
			t.Fatalf("nextWorkUnit() returned %d early, at iteration %d", v, i)
		}
		if seen[v] {
			t.Fatalf("nextWorkUnit() returned %d twice", v)
		}
		seen[v] = true
	}
	if got := state.nextWorkUnit(nil); got != rk7Space {
		t.Errorf("nextWorkUnit() after exhaustion = %d, want %d", got, rk7Space)
	}
	if got := state.nextWorkUnit(nil); got != rk7Space {
		t.Errorf("nextWorkUnit() called again after exhaustion = %d, want %d", got, rk7Space)
	}
}

func TestBruteForceStateNextWorkUnitIsSequential(t *testing.T) {
	state := &bruteForceState{}
	for want := uint32(0); want < 10; want++ {
		if got := state.nextWorkUnit(nil); got != want {
			t.Fatalf("nextWorkUnit() = %d, want %d", got, want)
		}
	}
}

// BruteForce48 and bruteForceWorker are not exercised directly here: each
// work unit runs a full BitsliceSearch over a 2^32 space, and the full rk7
// work queue is 65536 units, far too expensive to run inside a test.
