package halfloop

import "math/bits"

// lane holds 64 independent trial bits. Each lane bit position is one
// candidate value of the 32-bit quantity BitsliceSearch brute forces; every
// gate in the circuit below operates on all 64 candidates at once.
//
// The reference implementation bitslices 256 candidates at a time into
// AVX2 256-bit registers. Go has no portable equivalent, so this is a
// 64-lane fallback built on plain uint64 registers: the outer search loop
// steps by 64 instead of 256, and the two "which 64-lane word" selector
// bits the 256-lane version needs (since 2^8 lanes span four 64-bit words)
// become ordinary fixed bits of the outer loop counter, since our
// enumeration only ever spans a single 64-bit word.
type lane = uint64

type eightbits struct {
	b0, b1, b2, b3, b4, b5, b6, b7 lane // b0 = MSB, b7 = LSB
}

type twentyfourbits struct {
	msb, mid, lsb eightbits
}

func lmask(bit uint64) lane {
	if bit != 0 {
		return ^lane(0)
	}
	return 0
}

func bitU128(v u128, b uint) lane { return lmask(v.bit(127 - b)) }
func bitU64(v uint64, b uint) lane { return lmask((v >> (63 - b)) & 1) }
func bitU32(v uint32, b uint) lane { return lmask((uint64(v) >> (31 - b)) & 1) }

// The six within-word bit-position masks used to lay a 6-bit lane index
// (values 0..63) across a 64-lane register, one mask per index bit from
// most to least significant. These are the low six of the reference
// implementation's eight per-byte lane constants; its top two (which select
// one of four 64-bit words in a 256-bit register) have no analogue here
// since a single register already spans the whole enumeration.
const (
	enumBit0 = lane(0xFFFFFFFF00000000)
	enumBit1 = lane(0xFFFF0000FFFF0000)
	enumBit2 = lane(0xFF00FF00FF00FF00)
	enumBit3 = lane(0xF0F0F0F0F0F0F0F0)
	enumBit4 = lane(0xCCCCCCCCCCCCCCCC)
	enumBit5 = lane(0xAAAAAAAAAAAAAAAA)
)

// bitsliceSubBytes is a gate-level implementation of the Rijndael S-box.
// Ported directly from the Boyar-Peralta circuit in the reference
// implementation; the gate names are kept as-is for traceability.
func bitsliceSubBytes(in eightbits) eightbits {
	y14 := in.b3 ^ in.b5
	y13 := in.b0 ^ in.b6
	y9 := in.b0 ^ in.b3
	y8 := in.b0 ^ in.b5
	t0 := in.b1 ^ in.b2
	y1 := t0 ^ in.b7
	y4 := y1 ^ in.b3
	y12 := y13 ^ y14
	y2 := y1 ^ in.b0
	y5 := y1 ^ in.b6
	y3 := y5 ^ y8
	t1 := in.b4 ^ y12
	y15 := t1 ^ in.b5
	y20 := t1 ^ in.b1
	y6 := y15 ^ in.b7
	y10 := y15 ^ t0
	y11 := y20 ^ y9
	y7 := in.b7 ^ y11
	y17 := y10 ^ y11
	y19 := y10 ^ y8
	y16 := t0 ^ y11
	y21 := y13 ^ y16
	y18 := in.b0 ^ y16
	t2 := y12 & y15
	t3 := y3 & y6
	t4 := t3 ^ t2
	t5 := y4 & in.b7
	t6 := t5 ^ t2
	t7 := y13 & y16
	t8 := y5 & y1
	t9 := t8 ^ t7
	t10 := y2 & y7
	t11 := t10 ^ t7
	t12 := y9 & y11
	t13 := y14 & y17
	t14 := t13 ^ t12
	t15 := y8 & y10
	t16 := t15 ^ t12
	t17 := t4 ^ y20
	t18 := t6 ^ t16
	t19 := t9 ^ t14
	t20 := t11 ^ t16
	t21 := t17 ^ t14
	t22 := t18 ^ y19
	t23 := t19 ^ y21
	t24 := t20 ^ y18
	t25 := t21 ^ t22
	t26 := t21 & t23
	t27 := t24 ^ t26
	t28 := t25 & t27
	t29 := t28 ^ t22
	t30 := t23 ^ t24
	t31 := t22 ^ t26
	t32 := t31 & t30
	t33 := t32 ^ t24
	t34 := t23 ^ t33
	t35 := t27 ^ t33
	t36 := t24 & t35
	t37 := t36 ^ t34
	t38 := t27 ^ t36
	t39 := t29 & t38
	t40 := t25 ^ t39
	t41 := t40 ^ t37
	t42 := t29 ^ t33
	t43 := t29 ^ t40
	t44 := t33 ^ t37
	t45 := t42 ^ t41
	z0 := t44 & y15
	z1 := t37 & y6
	z2 := t33 & in.b7
	z3 := t43 & y16
	z4 := t40 & y1
	z5 := t29 & y7
	z6 := t42 & y11
	z7 := t45 & y17
	z8 := t41 & y10
	z9 := t44 & y12
	z10 := t37 & y3
	z11 := t33 & y4
	z12 := t43 & y13
	z13 := t40 & y5
	z14 := t29 & y2
	z15 := t42 & y9
	z16 := t45 & y14
	z17 := t41 & y8
	tc1 := z15 ^ z16
	tc2 := z10 ^ tc1
	tc3 := z9 ^ tc2
	tc4 := z0 ^ z2
	tc5 := z1 ^ z0
	tc6 := z3 ^ z4
	tc7 := z12 ^ tc4
	tc8 := z7 ^ tc6
	tc9 := z8 ^ tc7
	tc10 := tc8 ^ tc9
	tc11 := tc6 ^ tc5
	tc12 := z3 ^ z5
	tc13 := z13 ^ tc1
	tc14 := tc4 ^ tc12
	var out eightbits
	out.b3 = tc3 ^ tc11
	tc16 := z6 ^ tc8
	tc17 := z14 ^ tc10
	tc18 := tc13 ^ tc14
	out.b7 = ^(z12 ^ tc18)
	tc20 := z15 ^ tc16
	tc21 := tc2 ^ z11
	out.b0 = tc3 ^ tc16
	out.b6 = ^(tc10 ^ tc18)
	out.b4 = tc14 ^ out.b3
	out.b1 = ^(out.b3 ^ tc16)
	tc26 := tc17 ^ tc20
	out.b2 = ^(tc26 ^ z17)
	out.b5 = tc21 ^ tc17
	return out
}

func bitsliceRotateRows6(in eightbits) eightbits {
	return eightbits{
		b0: in.b6, b1: in.b7, b2: in.b0, b3: in.b1,
		b4: in.b2, b5: in.b3, b6: in.b4, b7: in.b5,
	}
}

func bitsliceRotateRows4(in eightbits) eightbits {
	return eightbits{
		b0: in.b4, b1: in.b5, b2: in.b6, b3: in.b7,
		b4: in.b0, b5: in.b1, b6: in.b2, b7: in.b3,
	}
}

func bitsliceMixColumns(in twentyfourbits) twentyfourbits {
	return twentyfourbits{
		lsb: eightbits{
			b7: in.lsb.b7 ^ in.lsb.b2 ^ in.mid.b0 ^ in.msb.b7,
			b6: in.lsb.b6 ^ in.lsb.b2 ^ in.lsb.b1 ^ in.mid.b7 ^ in.mid.b0 ^ in.msb.b6,
			b5: in.lsb.b5 ^ in.lsb.b1 ^ in.lsb.b0 ^ in.mid.b6 ^ in.msb.b5,
			b4: in.lsb.b7 ^ in.lsb.b4 ^ in.lsb.b2 ^ in.lsb.b0 ^ in.mid.b5 ^ in.mid.b0 ^ in.msb.b4,
			b3: in.lsb.b6 ^ in.lsb.b3 ^ in.lsb.b2 ^ in.lsb.b1 ^ in.mid.b4 ^ in.mid.b0 ^ in.msb.b3,
			b2: in.lsb.b5 ^ in.lsb.b2 ^ in.lsb.b1 ^ in.lsb.b0 ^ in.mid.b3 ^ in.msb.b2,
			b1: in.lsb.b4 ^ in.lsb.b1 ^ in.lsb.b0 ^ in.mid.b2 ^ in.msb.b1,
			b0: in.lsb.b3 ^ in.lsb.b0 ^ in.mid.b1 ^ in.msb.b0,
		},
		mid: eightbits{
			b7: in.lsb.b7 ^ in.mid.b7 ^ in.mid.b2 ^ in.msb.b0,
			b6: in.lsb.b6 ^ in.mid.b6 ^ in.mid.b2 ^ in.mid.b1 ^ in.msb.b7 ^ in.msb.b0,
			b5: in.lsb.b5 ^ in.mid.b5 ^ in.mid.b1 ^ in.mid.b0 ^ in.msb.b6,
			b4: in.lsb.b4 ^ in.mid.b7 ^ in.mid.b4 ^ in.mid.b2 ^ in.mid.b0 ^ in.msb.b5 ^ in.msb.b0,
			b3: in.lsb.b3 ^ in.mid.b6 ^ in.mid.b3 ^ in.mid.b2 ^ in.mid.b1 ^ in.msb.b4 ^ in.msb.b0,
			b2: in.lsb.b2 ^ in.mid.b5 ^ in.mid.b2 ^ in.mid.b1 ^ in.mid.b0 ^ in.msb.b3,
			b1: in.lsb.b1 ^ in.mid.b4 ^ in.mid.b1 ^ in.mid.b0 ^ in.msb.b2,
			b0: in.lsb.b0 ^ in.mid.b3 ^ in.mid.b0 ^ in.msb.b1,
		},
		msb: eightbits{
			b7: in.lsb.b0 ^ in.mid.b7 ^ in.msb.b7 ^ in.msb.b2,
			b6: in.lsb.b7 ^ in.lsb.b0 ^ in.mid.b6 ^ in.msb.b6 ^ in.msb.b2 ^ in.msb.b1,
			b5: in.lsb.b6 ^ in.mid.b5 ^ in.msb.b5 ^ in.msb.b1 ^ in.msb.b0,
			b4: in.lsb.b5 ^ in.lsb.b0 ^ in.mid.b4 ^ in.msb.b7 ^ in.msb.b4 ^ in.msb.b2 ^ in.msb.b0,
			b3: in.lsb.b4 ^ in.lsb.b0 ^ in.mid.b3 ^ in.msb.b6 ^ in.msb.b3 ^ in.msb.b2 ^ in.msb.b1,
			b2: in.lsb.b3 ^ in.mid.b2 ^ in.msb.b5 ^ in.msb.b2 ^ in.msb.b1 ^ in.msb.b0,
			b1: in.lsb.b2 ^ in.mid.b1 ^ in.msb.b4 ^ in.msb.b1 ^ in.msb.b0,
			b0: in.lsb.b1 ^ in.mid.b0 ^ in.msb.b3 ^ in.msb.b0,
		},
	}
}

// BitsliceSearch searches the 2^32 values of a partial key (the low byte of
// round key 5 and all of round key 6, jointly called rk56 here) for ones
// under which pt reaches ct, the state just before round key 8 is added,
// given the fixed partial key pkey, returning every value of rk56 that
// matches.
//
// pkey packs round keys 7, 8, 9 and the top two bytes of round key 10 into
// its least significant 88 bits, and the middle byte of round key 5 into its
// most significant 8 bits; the remaining 32 bits are ignored. Each returned
// value packs the low byte of round key 5 into its 8 most significant bits
// and round key 6 into the remaining 24. Mirrors halfloop_bitslice.
func BitsliceSearch(pt, ct uint32, pkey u128) []uint32 {
	ptBits := twentyfourbits{
		msb: eightbits{
			b0: bitU32(pt, 8), b1: bitU32(pt, 9), b2: bitU32(pt, 10), b3: bitU32(pt, 11),
			b4: bitU32(pt, 12), b5: bitU32(pt, 13), b6: bitU32(pt, 14), b7: bitU32(pt, 15),
		},
		mid: eightbits{
			b0: bitU32(pt, 16), b1: bitU32(pt, 17), b2: bitU32(pt, 18), b3: bitU32(pt, 19),
			b4: bitU32(pt, 20), b5: bitU32(pt, 21), b6: bitU32(pt, 22), b7: bitU32(pt, 23),
		},
		lsb: eightbits{
			b0: bitU32(pt, 24), b1: bitU32(pt, 25), b2: bitU32(pt, 26), b3: bitU32(pt, 27),
			b4: bitU32(pt, 28), b5: bitU32(pt, 29), b6: bitU32(pt, 30), b7: bitU32(pt, 31),
		},
	}

	shr64 := pkey.shr(64)
	peeled := invSubBytes(invRotateRows(invMixColumns(ct))) ^ uint32(shr64.lo)
	peeled &= Block24Mask
	target := invSubBytes(invRotateRows(invMixColumns(peeled)))

	gValue := keyScheduleG(uint32(pkey.xor(pkey.shr(32)).lo), 1)

	var found []uint32
	for rk56 := uint64(0); rk56 < 0x100000000; rk56 += 64 {
		state := ptBits

		// Add rk0.
		state.msb.b0 ^= bitU128(pkey, 0) ^ bitU32(gValue, 0)
		state.msb.b1 ^= bitU128(pkey, 1) ^ bitU32(gValue, 1)
		state.msb.b2 ^= bitU128(pkey, 2) ^ bitU32(gValue, 2)
		state.msb.b3 ^= bitU128(pkey, 3) ^ bitU32(gValue, 3)
		state.msb.b4 ^= bitU128(pkey, 4) ^ bitU32(gValue, 4)
		state.msb.b5 ^= bitU128(pkey, 5) ^ bitU32(gValue, 5)
		state.msb.b6 ^= bitU128(pkey, 6) ^ bitU32(gValue, 6)
		state.msb.b7 ^= bitU128(pkey, 7) ^ bitU32(gValue, 7)
		state.mid.b0 ^= bitU64(rk56, 32) ^ bitU32(gValue, 8)
		state.mid.b1 ^= bitU64(rk56, 33) ^ bitU32(gValue, 9)
		state.mid.b2 ^= bitU64(rk56, 34) ^ bitU32(gValue, 10)
		state.mid.b3 ^= bitU64(rk56, 35) ^ bitU32(gValue, 11)
		state.mid.b4 ^= bitU64(rk56, 36) ^ bitU32(gValue, 12)
		state.mid.b5 ^= bitU64(rk56, 37) ^ bitU32(gValue, 13)
		state.mid.b6 ^= bitU64(rk56, 38) ^ bitU32(gValue, 14)
		state.mid.b7 ^= bitU64(rk56, 39) ^ bitU32(gValue, 15)
		state.lsb.b0 ^= bitU64(rk56, 40) ^ bitU32(gValue, 16)
		state.lsb.b1 ^= bitU64(rk56, 41) ^ bitU32(gValue, 17)
		state.lsb.b2 ^= bitU64(rk56, 42) ^ bitU32(gValue, 18)
		state.lsb.b3 ^= bitU64(rk56, 43) ^ bitU32(gValue, 19)
		state.lsb.b4 ^= bitU64(rk56, 44) ^ bitU32(gValue, 20)
		state.lsb.b5 ^= bitU64(rk56, 45) ^ bitU32(gValue, 21)
		state.lsb.b6 ^= bitU64(rk56, 46) ^ bitU32(gValue, 22)
		state.lsb.b7 ^= bitU64(rk56, 47) ^ bitU32(gValue, 23)

		state.msb = bitsliceSubBytes(state.msb)
		state.mid = bitsliceRotateRows6(bitsliceSubBytes(state.mid))
		state.lsb = bitsliceRotateRows4(bitsliceSubBytes(state.lsb))
		state = bitsliceMixColumns(state)

		// Add rk1. mid is the byte being searched across lanes, jointly with
		// rk56's bits 56 and 57 (the word-selector bits the 256-lane version
		// needs and this one does not).
		state.msb.b0 ^= bitU64(rk56, 48) ^ bitU32(gValue, 24)
		state.msb.b1 ^= bitU64(rk56, 49) ^ bitU32(gValue, 25)
		state.msb.b2 ^= bitU64(rk56, 50) ^ bitU32(gValue, 26)
		state.msb.b3 ^= bitU64(rk56, 51) ^ bitU32(gValue, 27)
		state.msb.b4 ^= bitU64(rk56, 52) ^ bitU32(gValue, 28)
		state.msb.b5 ^= bitU64(rk56, 53) ^ bitU32(gValue, 29)
		state.msb.b6 ^= bitU64(rk56, 54) ^ bitU32(gValue, 30)
		state.msb.b7 ^= bitU64(rk56, 55) ^ bitU32(gValue, 31)
		state.mid.b0 ^= bitU64(rk56, 56) ^ bitU128(pkey, 0)
		state.mid.b1 ^= bitU64(rk56, 57) ^ bitU128(pkey, 1)
		state.mid.b2 ^= enumBit0 ^ bitU128(pkey, 2)
		state.mid.b3 ^= enumBit1 ^ bitU128(pkey, 3)
		state.mid.b4 ^= enumBit2 ^ bitU128(pkey, 4)
		state.mid.b5 ^= enumBit3 ^ bitU128(pkey, 5)
		state.mid.b6 ^= enumBit4 ^ bitU128(pkey, 6)
		state.mid.b7 ^= enumBit5 ^ bitU128(pkey, 7)
		state.lsb.b0 ^= bitU128(pkey, 40) ^ bitU64(rk56, 32)
		state.lsb.b1 ^= bitU128(pkey, 41) ^ bitU64(rk56, 33)
		state.lsb.b2 ^= bitU128(pkey, 42) ^ bitU64(rk56, 34)
		state.lsb.b3 ^= bitU128(pkey, 43) ^ bitU64(rk56, 35)
		state.lsb.b4 ^= bitU128(pkey, 44) ^ bitU64(rk56, 36)
		state.lsb.b5 ^= bitU128(pkey, 45) ^ bitU64(rk56, 37)
		state.lsb.b6 ^= bitU128(pkey, 46) ^ bitU64(rk56, 38)
		state.lsb.b7 ^= bitU128(pkey, 47) ^ bitU64(rk56, 39)

		state.msb = bitsliceSubBytes(state.msb)
		state.mid = bitsliceRotateRows6(bitsliceSubBytes(state.mid))
		state.lsb = bitsliceRotateRows4(bitsliceSubBytes(state.lsb))
		state = bitsliceMixColumns(state)

		// Add rk2. lsb carries the same searched byte a second time.
		state.msb.b0 ^= bitU128(pkey, 48) ^ bitU64(rk56, 40)
		state.msb.b1 ^= bitU128(pkey, 49) ^ bitU64(rk56, 41)
		state.msb.b2 ^= bitU128(pkey, 50) ^ bitU64(rk56, 42)
		state.msb.b3 ^= bitU128(pkey, 51) ^ bitU64(rk56, 43)
		state.msb.b4 ^= bitU128(pkey, 52) ^ bitU64(rk56, 44)
		state.msb.b5 ^= bitU128(pkey, 53) ^ bitU64(rk56, 45)
		state.msb.b6 ^= bitU128(pkey, 54) ^ bitU64(rk56, 46)
		state.msb.b7 ^= bitU128(pkey, 55) ^ bitU64(rk56, 47)
		state.mid.b0 ^= bitU128(pkey, 56) ^ bitU64(rk56, 48)
		state.mid.b1 ^= bitU128(pkey, 57) ^ bitU64(rk56, 49)
		state.mid.b2 ^= bitU128(pkey, 58) ^ bitU64(rk56, 50)
		state.mid.b3 ^= bitU128(pkey, 59) ^ bitU64(rk56, 51)
		state.mid.b4 ^= bitU128(pkey, 60) ^ bitU64(rk56, 52)
		state.mid.b5 ^= bitU128(pkey, 61) ^ bitU64(rk56, 53)
		state.mid.b6 ^= bitU128(pkey, 62) ^ bitU64(rk56, 54)
		state.mid.b7 ^= bitU128(pkey, 63) ^ bitU64(rk56, 55)
		state.lsb.b0 ^= bitU64(rk56, 56) ^ bitU128(pkey, 64)
		state.lsb.b1 ^= bitU64(rk56, 57) ^ bitU128(pkey, 65)
		state.lsb.b2 ^= bitU128(pkey, 66) ^ enumBit0
		state.lsb.b3 ^= bitU128(pkey, 67) ^ enumBit1
		state.lsb.b4 ^= bitU128(pkey, 68) ^ enumBit2
		state.lsb.b5 ^= bitU128(pkey, 69) ^ enumBit3
		state.lsb.b6 ^= bitU128(pkey, 70) ^ enumBit4
		state.lsb.b7 ^= bitU128(pkey, 71) ^ enumBit5

		state.msb = bitsliceSubBytes(state.msb)
		state.mid = bitsliceRotateRows6(bitsliceSubBytes(state.mid))
		state.lsb = bitsliceRotateRows4(bitsliceSubBytes(state.lsb))
		state = bitsliceMixColumns(state)

		// Add rk3.
		state.msb.b0 ^= bitU128(pkey, 72) ^ bitU128(pkey, 40)
		state.msb.b1 ^= bitU128(pkey, 73) ^ bitU128(pkey, 41)
		state.msb.b2 ^= bitU128(pkey, 74) ^ bitU128(pkey, 42)
		state.msb.b3 ^= bitU128(pkey, 75) ^ bitU128(pkey, 43)
		state.msb.b4 ^= bitU128(pkey, 76) ^ bitU128(pkey, 44)
		state.msb.b5 ^= bitU128(pkey, 77) ^ bitU128(pkey, 45)
		state.msb.b6 ^= bitU128(pkey, 78) ^ bitU128(pkey, 46)
		state.msb.b7 ^= bitU128(pkey, 79) ^ bitU128(pkey, 47)
		state.mid.b0 ^= bitU128(pkey, 80) ^ bitU128(pkey, 48)
		state.mid.b1 ^= bitU128(pkey, 81) ^ bitU128(pkey, 49)
		state.mid.b2 ^= bitU128(pkey, 82) ^ bitU128(pkey, 50)
		state.mid.b3 ^= bitU128(pkey, 83) ^ bitU128(pkey, 51)
		state.mid.b4 ^= bitU128(pkey, 84) ^ bitU128(pkey, 52)
		state.mid.b5 ^= bitU128(pkey, 85) ^ bitU128(pkey, 53)
		state.mid.b6 ^= bitU128(pkey, 86) ^ bitU128(pkey, 54)
		state.mid.b7 ^= bitU128(pkey, 87) ^ bitU128(pkey, 55)
		state.lsb.b0 ^= bitU128(pkey, 88) ^ bitU128(pkey, 56)
		state.lsb.b1 ^= bitU128(pkey, 89) ^ bitU128(pkey, 57)
		state.lsb.b2 ^= bitU128(pkey, 90) ^ bitU128(pkey, 58)
		state.lsb.b3 ^= bitU128(pkey, 91) ^ bitU128(pkey, 59)
		state.lsb.b4 ^= bitU128(pkey, 92) ^ bitU128(pkey, 60)
		state.lsb.b5 ^= bitU128(pkey, 93) ^ bitU128(pkey, 61)
		state.lsb.b6 ^= bitU128(pkey, 94) ^ bitU128(pkey, 62)
		state.lsb.b7 ^= bitU128(pkey, 95) ^ bitU128(pkey, 63)

		state.msb = bitsliceSubBytes(state.msb)
		state.mid = bitsliceRotateRows6(bitsliceSubBytes(state.mid))
		state.lsb = bitsliceRotateRows4(bitsliceSubBytes(state.lsb))
		state = bitsliceMixColumns(state)

		// Add rk4.
		state.msb.b0 ^= bitU128(pkey, 96) ^ bitU128(pkey, 64)
		state.msb.b1 ^= bitU128(pkey, 97) ^ bitU128(pkey, 65)
		state.msb.b2 ^= bitU128(pkey, 98) ^ bitU128(pkey, 66)
		state.msb.b3 ^= bitU128(pkey, 99) ^ bitU128(pkey, 67)
		state.msb.b4 ^= bitU128(pkey, 100) ^ bitU128(pkey, 68)
		state.msb.b5 ^= bitU128(pkey, 101) ^ bitU128(pkey, 69)
		state.msb.b6 ^= bitU128(pkey, 102) ^ bitU128(pkey, 70)
		state.msb.b7 ^= bitU128(pkey, 103) ^ bitU128(pkey, 71)
		state.mid.b0 ^= bitU128(pkey, 104) ^ bitU128(pkey, 72)
		state.mid.b1 ^= bitU128(pkey, 105) ^ bitU128(pkey, 73)
		state.mid.b2 ^= bitU128(pkey, 106) ^ bitU128(pkey, 74)
		state.mid.b3 ^= bitU128(pkey, 107) ^ bitU128(pkey, 75)
		state.mid.b4 ^= bitU128(pkey, 108) ^ bitU128(pkey, 76)
		state.mid.b5 ^= bitU128(pkey, 109) ^ bitU128(pkey, 77)
		state.mid.b6 ^= bitU128(pkey, 110) ^ bitU128(pkey, 78)
		state.mid.b7 ^= bitU128(pkey, 111) ^ bitU128(pkey, 79)
		state.lsb.b0 ^= bitU128(pkey, 112) ^ bitU128(pkey, 80)
		state.lsb.b1 ^= bitU128(pkey, 113) ^ bitU128(pkey, 81)
		state.lsb.b2 ^= bitU128(pkey, 114) ^ bitU128(pkey, 82)
		state.lsb.b3 ^= bitU128(pkey, 115) ^ bitU128(pkey, 83)
		state.lsb.b4 ^= bitU128(pkey, 116) ^ bitU128(pkey, 84)
		state.lsb.b5 ^= bitU128(pkey, 117) ^ bitU128(pkey, 85)
		state.lsb.b6 ^= bitU128(pkey, 118) ^ bitU128(pkey, 86)
		state.lsb.b7 ^= bitU128(pkey, 119) ^ bitU128(pkey, 87)

		state.msb = bitsliceSubBytes(state.msb)
		state.mid = bitsliceRotateRows6(bitsliceSubBytes(state.mid))
		state.lsb = bitsliceRotateRows4(bitsliceSubBytes(state.lsb))
		state = bitsliceMixColumns(state)

		// Add rk5.
		state.msb.b0 ^= bitU128(pkey, 120) ^ bitU128(pkey, 88)
		state.msb.b1 ^= bitU128(pkey, 121) ^ bitU128(pkey, 89)
		state.msb.b2 ^= bitU128(pkey, 122) ^ bitU128(pkey, 90)
		state.msb.b3 ^= bitU128(pkey, 123) ^ bitU128(pkey, 91)
		state.msb.b4 ^= bitU128(pkey, 124) ^ bitU128(pkey, 92)
		state.msb.b5 ^= bitU128(pkey, 125) ^ bitU128(pkey, 93)
		state.msb.b6 ^= bitU128(pkey, 126) ^ bitU128(pkey, 94)
		state.msb.b7 ^= bitU128(pkey, 127) ^ bitU128(pkey, 95)
		state.mid.b0 ^= bitU128(pkey, 0)
		state.mid.b1 ^= bitU128(pkey, 1)
		state.mid.b2 ^= bitU128(pkey, 2)
		state.mid.b3 ^= bitU128(pkey, 3)
		state.mid.b4 ^= bitU128(pkey, 4)
		state.mid.b5 ^= bitU128(pkey, 5)
		state.mid.b6 ^= bitU128(pkey, 6)
		state.mid.b7 ^= bitU128(pkey, 7)
		state.lsb.b0 ^= bitU64(rk56, 32)
		state.lsb.b1 ^= bitU64(rk56, 33)
		state.lsb.b2 ^= bitU64(rk56, 34)
		state.lsb.b3 ^= bitU64(rk56, 35)
		state.lsb.b4 ^= bitU64(rk56, 36)
		state.lsb.b5 ^= bitU64(rk56, 37)
		state.lsb.b6 ^= bitU64(rk56, 38)
		state.lsb.b7 ^= bitU64(rk56, 39)

		state.msb = bitsliceSubBytes(state.msb)
		state.mid = bitsliceRotateRows6(bitsliceSubBytes(state.mid))
		state.lsb = bitsliceRotateRows4(bitsliceSubBytes(state.lsb))
		state = bitsliceMixColumns(state)

		// Add rk6. lsb carries the searched byte a third time; no further
		// rounds follow, so the result is compared against target directly.
		state.msb.b0 ^= bitU64(rk56, 40)
		state.msb.b1 ^= bitU64(rk56, 41)
		state.msb.b2 ^= bitU64(rk56, 42)
		state.msb.b3 ^= bitU64(rk56, 43)
		state.msb.b4 ^= bitU64(rk56, 44)
		state.msb.b5 ^= bitU64(rk56, 45)
		state.msb.b6 ^= bitU64(rk56, 46)
		state.msb.b7 ^= bitU64(rk56, 47)
		state.mid.b0 ^= bitU64(rk56, 48)
		state.mid.b1 ^= bitU64(rk56, 49)
		state.mid.b2 ^= bitU64(rk56, 50)
		state.mid.b3 ^= bitU64(rk56, 51)
		state.mid.b4 ^= bitU64(rk56, 52)
		state.mid.b5 ^= bitU64(rk56, 53)
		state.mid.b6 ^= bitU64(rk56, 54)
		state.mid.b7 ^= bitU64(rk56, 55)
		state.lsb.b0 ^= bitU64(rk56, 56)
		state.lsb.b1 ^= bitU64(rk56, 57)
		state.lsb.b2 ^= enumBit0
		state.lsb.b3 ^= enumBit1
		state.lsb.b4 ^= enumBit2
		state.lsb.b5 ^= enumBit3
		state.lsb.b6 ^= enumBit4
		state.lsb.b7 ^= enumBit5

		cmp := state.msb.b0 ^ bitU32(target, 8)
		cmp |= state.msb.b1 ^ bitU32(target, 9)
		cmp |= state.msb.b2 ^ bitU32(target, 10)
		cmp |= state.msb.b3 ^ bitU32(target, 11)
		cmp |= state.msb.b4 ^ bitU32(target, 12)
		cmp |= state.msb.b5 ^ bitU32(target, 13)
		cmp |= state.msb.b6 ^ bitU32(target, 14)
		cmp |= state.msb.b7 ^ bitU32(target, 15)
		cmp |= state.mid.b0 ^ bitU32(target, 16)
		cmp |= state.mid.b1 ^ bitU32(target, 17)
		cmp |= state.mid.b2 ^ bitU32(target, 18)
		cmp |= state.mid.b3 ^ bitU32(target, 19)
		cmp |= state.mid.b4 ^ bitU32(target, 20)
		cmp |= state.mid.b5 ^ bitU32(target, 21)
		cmp |= state.mid.b6 ^ bitU32(target, 22)
		cmp |= state.mid.b7 ^ bitU32(target, 23)
		cmp |= state.lsb.b0 ^ bitU32(target, 24)
		cmp |= state.lsb.b1 ^ bitU32(target, 25)
		cmp |= state.lsb.b2 ^ bitU32(target, 26)
		cmp |= state.lsb.b3 ^ bitU32(target, 27)
		cmp |= state.lsb.b4 ^ bitU32(target, 28)
		cmp |= state.lsb.b5 ^ bitU32(target, 29)
		cmp |= state.lsb.b6 ^ bitU32(target, 30)
		cmp |= state.lsb.b7 ^ bitU32(target, 31)
		cmp = ^cmp

		for cmp != 0 {
			low := bits.TrailingZeros64(cmp)
			found = append(found, uint32(rk56)|uint32(low))
			cmp &^= 1 << uint(low)
		}
	}
	return found
}
