package halfloop

import "sort"

// BuildRightTable builds the 256-entry table used to guess one byte of round
// key 10 against a triple of good pairs x, y, z. middle selects between the
// middle byte of round key 10 (true) and its most significant byte (false);
// the two bytes are recovered by two independent calls sharing the same
// triple. The result is sorted by XYYZ for binary search via
// RightTableLookup, mirroring build_right_table and compare_right_table.
func BuildRightTable(x, y, z TuplePair, middle bool) []RightTableEntry {
	var cx, cy, cz byte
	if middle {
		cx = byte((uint64(x.A.CT>>8) ^ x.A.Tweak ^ (x.A.Tweak >> 32)) & 0xff)
		cy = byte((uint64(y.A.CT>>8) ^ y.A.Tweak ^ (y.A.Tweak >> 32)) & 0xff)
		cz = byte((uint64(z.A.CT>>8) ^ z.A.Tweak ^ (z.A.Tweak >> 32)) & 0xff)
	} else {
		cx = byte((uint64(x.A.CT>>16) ^ (x.A.Tweak >> 8) ^ (x.A.Tweak >> 40)) & 0xff)
		cy = byte((uint64(y.A.CT>>16) ^ (y.A.Tweak >> 8) ^ (y.A.Tweak >> 40)) & 0xff)
		cz = byte((uint64(z.A.CT>>16) ^ (z.A.Tweak >> 8) ^ (z.A.Tweak >> 40)) & 0xff)
	}

	table := make([]RightTableEntry, 0x100)
	for rk10 := 0; rk10 < 0x100; rk10++ {
		vx := cx ^ byte(rk10)
		vy := cy ^ byte(rk10)
		vz := cz ^ byte(rk10)
		if middle {
			vx = (vx >> 6) | (vx << 2)
			vy = (vy >> 6) | (vy << 2)
			vz = (vz >> 6) | (vz << 2)
		}
		vx = invSBox[vx]
		vy = invSBox[vy]
		vz = invSBox[vz]
		table[rk10] = RightTableEntry{
			XYYZ: uint16(vx^vy)<<8 | uint16(vy^vz),
			X:    vx,
			RK10: byte(rk10),
		}
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].XYYZ != table[j].XYYZ {
			return table[i].XYYZ < table[j].XYYZ
		}
		return table[i].X < table[j].X
	})
	return table
}

// RightTableLookup finds the first entry in rt (a 256-entry table from
// BuildRightTable) matching xyyz, returning its index and true, or (-1,
// false) if absent. Mirrors right_table_lookup: a binary search for any
// match, then a scan back to its first occurrence.
func RightTableLookup(rt []RightTableEntry, xyyz uint16) (int, bool) {
	left, right := 0, len(rt)-1
	for left <= right {
		m := (left + right) / 2
		switch {
		case rt[m].XYYZ < xyyz:
			left = m + 1
		case rt[m].XYYZ > xyyz:
			right = m - 1
		default:
			for m > 0 && rt[m-1].XYYZ == xyyz {
				m--
			}
			return m, true
		}
	}
	return -1, false
}
