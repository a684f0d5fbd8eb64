package halfloop

import "sort"

// RecoverKey runs the full differential meet-in-the-middle pipeline over a
// set of good pairs: for every triple (i, j, k), build left and right
// tables, enumerate 80-bit candidate keys, and intersect the running
// candidate set against them; once the set holds exactly one candidate,
// stop building new triples and complete it via BruteForce48 using the
// first three good pairs. Mirrors main in the reference attack driver.
func RecoverKey(pairs []TuplePair, numWorkers int, log *Logger) (u128, error) {
	if len(pairs) < 3 {
		return u128{}, &AttackError{Stage: "good-pairs", Reason: "at least 3 good pairs are required"}
	}

	var candidateSet []CandidateKey
	haveSet := false

	for i := 0; i < len(pairs) && (!haveSet || len(candidateSet) > 1); i++ {
		states1 := EnumerateLeftStates(pairs[i])
		for j := i + 1; j < len(pairs) && (!haveSet || len(candidateSet) > 1); j++ {
			states2 := EnumerateLeftStates(pairs[j])
			for k := j + 1; k < len(pairs) && (!haveSet || len(candidateSet) > 1); k++ {
				states3 := EnumerateLeftStates(pairs[k])

				leftTable := BuildLeftTable(states1, states2, states3)
				if log != nil {
					log.Info("Left table size: %d", len(leftTable))
				}

				rightMSB := BuildRightTable(pairs[i], pairs[j], pairs[k], false)
				rightMid := BuildRightTable(pairs[i], pairs[j], pairs[k], true)

				keys := FindCandidateKeys(pairs[i], pairs[j], pairs[k], leftTable, rightMSB, rightMid)
				SortCandidateKeys(keys)

				if log != nil {
					log.Info("Found %d candidate keys.", len(keys))
				}

				if !haveSet {
					candidateSet = keys
					haveSet = true
				} else {
					candidateSet = CandidateKeysIntersection(candidateSet, keys)
					if log != nil {
						log.Info("%d candidate keys remaining.", len(candidateSet))
					}
					if len(candidateSet) == 0 {
						return u128{}, &AttackError{Stage: "intersection", Reason: "good pairs do not have a common key"}
					}
				}
			}
		}
	}

	sort.Slice(candidateSet, func(a, b int) bool { return candidateSet[a].less(candidateSet[b]) })

	for idx, candidate := range candidateSet {
		if log != nil {
			log.Info("Searching for remaining 48 bits for key %02x %02x %010x (%d/%d).",
				candidate.RK5B, candidate.Left.Key, candidate.RK8910, idx+1, len(candidateSet))
		}
		key, ok := BruteForce48(pairs[0], pairs[1], pairs[2], candidate, numWorkers, log)
		if ok {
			return key, nil
		}
	}
	return u128{}, &AttackError{Stage: "brute-force", Reason: "no candidate key completed to a valid 128-bit key"}
}
