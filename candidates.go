package halfloop

import "sort"

// FindCandidateKeys extends a left table with two right tables (the most
// significant and middle bytes of round key 10, both built over the same
// triple) into full 80-bit candidate keys: round key 8, the top two bytes of
// round key 9 plus its low byte brute forced over all 256 values, the top
// two bytes of round key 10, and the middle byte of round key 5. Mirrors
// find_candidate_keys.
func FindCandidateKeys(tp1, tp2, tp3 TuplePair, leftTable []LeftTableEntry, rightMSB, rightMid []RightTableEntry) []CandidateKey {
	ctxc := byte(tp1.A.CT & 0xff)
	ctyc := byte(tp2.A.CT & 0xff)
	ctzc := byte(tp3.A.CT & 0xff)
	tw5x := byte(tp1.A.Tweak >> 56)
	tw5y := byte(tp2.A.Tweak >> 56)
	tw5z := byte(tp3.A.Tweak >> 56)
	tw8x := uint32((tp1.A.Tweak>>8)^(tp1.A.Tweak>>40)) & Block24Mask
	tw8y := uint32((tp2.A.Tweak>>8)^(tp2.A.Tweak>>40)) & Block24Mask
	tw8z := uint32((tp3.A.Tweak>>8)^(tp3.A.Tweak>>40)) & Block24Mask
	tw9x := uint32((tp1.A.Tweak>>16)^(tp1.A.Tweak>>48)^(tp1.A.Tweak<<16)) & Block24Mask
	tw9y := uint32((tp2.A.Tweak>>16)^(tp2.A.Tweak>>48)^(tp2.A.Tweak<<16)) & Block24Mask
	tw9z := uint32((tp3.A.Tweak>>16)^(tp3.A.Tweak>>48)^(tp3.A.Tweak<<16)) & Block24Mask

	var out []CandidateKey
	for li := range leftTable {
		lp := leftTable[li]
		sx := lp.SX ^ tw8x
		sy := lp.SY ^ tw8y
		sz := lp.SZ ^ tw8z
		for rk8 := uint32(0); rk8 < 0x1000000; rk8++ {
			qx := mixColumns(rotateRows(subBytes(sx^rk8))) ^ tw9x
			qy := mixColumns(rotateRows(subBytes(sy^rk8))) ^ tw9y
			qz := mixColumns(rotateRows(subBytes(sz^rk8))) ^ tw9z

			xyyzMSB := uint16((((qx^qy)>>8)&0xff00)|((qy^qz)>>16)) & 0xffff
			msbMatch, ok := RightTableLookup(rightMSB, xyyzMSB)
			if !ok {
				continue
			}
			xyyzMid := uint16(((qx ^ qy) & 0xff00) | (((qy ^ qz) & 0xff00) >> 8))
			midMatch, ok := RightTableLookup(rightMid, xyyzMid)
			if !ok {
				continue
			}

			for m := msbMatch; m < 0x100 && rightMSB[m].XYYZ == xyyzMSB; m++ {
				for d := midMatch; d < 0x100 && rightMid[d].XYYZ == xyyzMid; d++ {
					msb := rightMSB[m]
					mid := rightMid[d]
					rk10 := uint32(msb.RK10)<<16 | uint32(mid.RK10)<<8
					rk9 := (qx ^ uint32(msb.X)<<16 ^ uint32(mid.X)<<8) & 0xffff00

					for rk9c := 0; rk9c < 0x100; rk9c++ {
						deltaXY := sbox[byte(rk9c)^byte(tw9x&0xff)] ^ sbox[byte(rk9c)^byte(tw9y&0xff)] ^ tw5x ^ tw5y
						deltaYZ := sbox[byte(rk9c)^byte(tw9z&0xff)] ^ sbox[byte(rk9c)^byte(tw9y&0xff)] ^ tw5z ^ tw5y
						wx := sbox[byte(qx&0xff)^byte(rk9c)]
						wy := sbox[byte(qy&0xff)^byte(rk9c)]
						wz := sbox[byte(qz&0xff)^byte(rk9c)]
						wx = (wx << 4) | (wx >> 4)
						wy = (wy << 4) | (wy >> 4)
						wz = (wz << 4) | (wz >> 4)
						if (wx^wy) != (ctxc ^ ctyc ^ deltaXY) {
							continue
						}
						if (wz^wy) != (ctzc ^ ctyc ^ deltaYZ) {
							continue
						}
						rk8910 := uint64(rk8)<<40 | uint64(rk9)<<16 | uint64(rk9c)<<16 | uint64(rk10)>>8
						rk5b := sbox[byte(rk9c)^byte(tw9x&0xff)] ^ ctxc ^ wx ^ tw5x ^ 2
						out = append(out, CandidateKey{
							Left:   lp,
							RK8910: rk8910,
							RK5B:   rk5b,
						})
					}
				}
			}
		}
	}
	return out
}

// SortCandidateKeys orders keys by (RK5B, Left.Key, RK8910), the ordering
// CandidateKeysIntersection requires.
func SortCandidateKeys(keys []CandidateKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })
}

// CandidateKeysIntersection removes from set1 any key not present in set2.
// Both must already be sorted by SortCandidateKeys; set2 is left unmodified.
// Mirrors candidate_keys_intersection.
func CandidateKeysIntersection(set1, set2 []CandidateKey) []CandidateKey {
	out := set1[:0]
	p := 0
	for i := 0; i < len(set1); i++ {
		for p < len(set2) && set2[p].less(set1[i]) {
			p++
		}
		if p < len(set2) && set2[p].equal(set1[i]) {
			out = append(out, set1[i])
		}
	}
	return out
}
