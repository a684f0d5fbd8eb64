package halfloop

import "sort"

// BuildLeftTable joins three EnumerateLeftStates outputs (one per pair in a
// triple of good pairs) on a shared key byte, producing one LeftTableEntry
// per matching (state1, state2, state3) combination. Each input must already
// be sorted by Key as EnumerateLeftStates returns it; the join advances three
// cursors in lockstep rather than a full cross product. The result is sorted
// by (SX, SY, SZ, Key), mirroring build_left_table and compare_left_table.
func BuildLeftTable(states1, states2, states3 []LeftState) []LeftTableEntry {
	var table []LeftTableEntry
	j0, k0 := 0, 0
	for i := 0; i < len(states1); i++ {
		for j0 < len(states2) && states2[j0].Key < states1[i].Key {
			j0++
		}
		for k0 < len(states3) && states3[k0].Key < states1[i].Key {
			k0++
		}
		for j := j0; j < len(states2) && states2[j].Key == states1[i].Key; j++ {
			for k := k0; k < len(states3) && states3[k].Key == states1[i].Key; k++ {
				table = append(table, LeftTableEntry{
					SX:  states1[i].State,
					SY:  states2[j].State,
					SZ:  states3[k].State,
					Key: states1[i].Key,
				})
			}
		}
	}
	sort.Slice(table, func(a, b int) bool {
		x, y := table[a], table[b]
		if x.SX != y.SX {
			return x.SX < y.SX
		}
		if x.SY != y.SY {
			return x.SY < y.SY
		}
		if x.SZ != y.SZ {
			return x.SZ < y.SZ
		}
		return x.Key < y.Key
	})
	return table
}
