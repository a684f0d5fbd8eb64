package halfloop

import (
	"sync"
	"sync/atomic"
	"time"
)

// testPartialKey checks whether key's first eight key-schedule rounds carry
// pt to target, the known middle state recorded in a LeftTableEntry. This is
// cheaper than a full Encrypt and is used to confirm a full 128-bit key
// guess against the two tuple pairs not already consumed by BitsliceSearch.
// Mirrors test_key.
func testPartialKey(key u128, pt uint32, tweak uint64, target uint32) bool {
	rk := keySchedule(key, tweak)
	ct := pt ^ rk[0]
	for i := 1; i < 8; i++ {
		ct = mixColumns(rotateRows(subBytes(ct))) ^ rk[i]
	}
	ct = mixColumns(rotateRows(subBytes(ct)))
	return ct == target
}

// bruteForceState is the shared, mutex-protected work queue handed out to
// BruteForce48's worker goroutines, grounded in the reference
// implementation's mutex-protected rk7_i counter and percent-progress
// reporting in get_next_rk.
type bruteForceState struct {
	mu      sync.Mutex
	nextRK7 uint32
	lastPct int
	started time.Time

	success atomic.Bool
	found   atomic.Value // u128
}

const rk7Space = 0x10000

// nextWorkUnit returns the next round-key-7-low-16-bits value to try, or
// rk7Space if the search space is exhausted. Logs a progress line whenever
// the completed percentage advances, matching get_next_rk.
func (s *bruteForceState) nextWorkUnit(log *Logger) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nextRK7 >= rk7Space {
		return rk7Space
	}
	ret := s.nextRK7
	s.nextRK7++
	pct := int(100 * ret / rk7Space)
	if pct > s.lastPct {
		elapsed := time.Since(s.started).Seconds()
		if elapsed > 0 && log != nil {
			speed := uint64(float64(uint64(1)<<48) * 0.01 / elapsed)
			log.Info("%d%% done %d keys/second.", pct, speed)
		}
		s.lastPct = pct
		s.started = time.Now()
	}
	return ret
}

// BruteForce48 completes an 80-bit CandidateKey into a full 128-bit key by
// searching the remaining 48 bits (16 bits of round key 7, one value per
// work unit, plus the 32-bit rk56 that BitsliceSearch covers 64 values at a
// time). tp1,
// tp2 and tp3 must be the same triple of good pairs used to build candidate.
// Spawns numWorkers goroutines pulling from a shared work queue; the first
// goroutine to confirm a key cancels the rest. Mirrors brute_force_48 and
// brute_force_thread.
func BruteForce48(tp1, tp2, tp3 TuplePair, candidate CandidateKey, numWorkers int, log *Logger) (u128, bool) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	state := &bruteForceState{started: time.Now()}

	if log != nil {
		log.Info("Spawning %d threads.", numWorkers)
	}

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			bruteForceWorker(state, tp1, tp2, tp3, candidate, log)
		}()
	}
	wg.Wait()

	if !state.success.Load() {
		return u128{}, false
	}
	return state.found.Load().(u128), true
}

func bruteForceWorker(state *bruteForceState, tp1, tp2, tp3 TuplePair, candidate CandidateKey, log *Logger) {
	for !state.success.Load() {
		rk7i := state.nextWorkUnit(log)
		if rk7i >= rk7Space {
			return
		}

		key2 := u128From64(candidate.RK8910)
		key2 = key2.xor(u128From64(uint64(candidate.RK5B)).shl(120))
		rk7Guess := mixColumns(rotateRows(rk7i | uint32(candidate.Left.Key)<<16))
		key2 = key2.xor(u128From64(uint64(rk7Guess)).shl(64))

		tw := u128From64(tp1.A.Tweak)
		pkey := key2.xor(tw).xor(tw.shl(32)).xor(tw.shl(64)).xor(tw.shr(32))

		found := BitsliceSearch(tp1.A.PT, candidate.Left.SX, pkey)
		rk56Diff := uint32((tp1.A.Tweak >> 24) ^ (tp1.A.Tweak >> 56))

		for _, f := range found {
			if state.success.Load() {
				return
			}
			key2 := key2.and(u128From64(0x00ffffffff000000).shl(64).not())
			key2 = key2.xor(u128From64(uint64(f ^ rk56Diff)).shl(88))

			mask := u128FromHalves(0x00000000FFFFFFFF, 0xFFFFFFFFFFFFFFFF)
			key1 := key2.xor(key2.shr(32)).and(mask)
			g := keyScheduleG(uint32(key1.lo&0xffffffff), 1)
			key1 = key1.xor(u128From64(uint64(g)).shl(96)).xor(key2.and(u128From64(0xffffffff).shl(96)))

			if !testPartialKey(key1, tp2.A.PT, tp2.A.Tweak, candidate.Left.SY) {
				continue
			}
			if !testPartialKey(key1, tp3.A.PT, tp3.A.Tweak, candidate.Left.SZ) {
				continue
			}
			if state.success.CompareAndSwap(false, true) {
				state.found.Store(key1)
				if log != nil {
					log.Success("Found key: %016x%016x", key1.hi, key1.lo)
				}
			}
			return
		}
	}
}
