// Package halfloop implements cryptanalytic attacks against HALFLOOP-24, a
// 24-bit-block, 128-bit-key, 64-bit-tweak block cipher used in HF automatic
// link establishment (ALE).
//
// The package exposes the cipher primitives themselves (this file), the
// tweak codec, the differential meet-in-the-middle key-recovery pipeline
// (ingest, good-pair filter, left/right table construction, candidate
// enumeration and intersection), the bitsliced brute-force search, and an
// independent boomerang attack. See DESIGN.md for how each piece traces back
// to its reference implementation.
package halfloop

import "fmt"

// Block24Mask masks a 32-bit word down to HALFLOOP's 24-bit block width.
const Block24Mask = 0xFFFFFF

var (
	sbox    [256]byte
	invSBox [256]byte

	table2, table6, table8, table9, table39 [256]byte
)

func init() {
	sbox = [256]byte{
		0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
		0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
		0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
		0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
		0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
		0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
		0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
		0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
		0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
		0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
		0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
		0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
		0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
		0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
		0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
		0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
	}
	invSBox = [256]byte{
		0x52, 0x09, 0x6a, 0xd5, 0x30, 0x36, 0xa5, 0x38, 0xbf, 0x40, 0xa3, 0x9e, 0x81, 0xf3, 0xd7, 0xfb,
		0x7c, 0xe3, 0x39, 0x82, 0x9b, 0x2f, 0xff, 0x87, 0x34, 0x8e, 0x43, 0x44, 0xc4, 0xde, 0xe9, 0xcb,
		0x54, 0x7b, 0x94, 0x32, 0xa6, 0xc2, 0x23, 0x3d, 0xee, 0x4c, 0x95, 0x0b, 0x42, 0xfa, 0xc3, 0x4e,
		0x08, 0x2e, 0xa1, 0x66, 0x28, 0xd9, 0x24, 0xb2, 0x76, 0x5b, 0xa2, 0x49, 0x6d, 0x8b, 0xd1, 0x25,
		0x72, 0xf8, 0xf6, 0x64, 0x86, 0x68, 0x98, 0x16, 0xd4, 0xa4, 0x5c, 0xcc, 0x5d, 0x65, 0xb6, 0x92,
		0x6c, 0x70, 0x48, 0x50, 0xfd, 0xed, 0xb9, 0xda, 0x5e, 0x15, 0x46, 0x57, 0xa7, 0x8d, 0x9d, 0x84,
		0x90, 0xd8, 0xab, 0x00, 0x8c, 0xbc, 0xd3, 0x0a, 0xf7, 0xe4, 0x58, 0x05, 0xb8, 0xb3, 0x45, 0x06,
		0xd0, 0x2c, 0x1e, 0x8f, 0xca, 0x3f, 0x0f, 0x02, 0xc1, 0xaf, 0xbd, 0x03, 0x01, 0x13, 0x8a, 0x6b,
		0x3a, 0x91, 0x11, 0x41, 0x4f, 0x67, 0xdc, 0xea, 0x97, 0xf2, 0xcf, 0xce, 0xf0, 0xb4, 0xe6, 0x73,
		0x96, 0xac, 0x74, 0x22, 0xe7, 0xad, 0x35, 0x85, 0xe2, 0xf9, 0x37, 0xe8, 0x1c, 0x75, 0xdf, 0x6e,
		0x47, 0xf1, 0x1a, 0x71, 0x1d, 0x29, 0xc5, 0x89, 0x6f, 0xb7, 0x62, 0x0e, 0xaa, 0x18, 0xbe, 0x1b,
		0xfc, 0x56, 0x3e, 0x4b, 0xc6, 0xd2, 0x79, 0x20, 0x9a, 0xdb, 0xc0, 0xfe, 0x78, 0xcd, 0x5a, 0xf4,
		0x1f, 0xdd, 0xa8, 0x33, 0x88, 0x07, 0xc7, 0x31, 0xb1, 0x12, 0x10, 0x59, 0x27, 0x80, 0xec, 0x5f,
		0x60, 0x51, 0x7f, 0xa9, 0x19, 0xb5, 0x4a, 0x0d, 0x2d, 0xe5, 0x7a, 0x9f, 0x93, 0xc9, 0x9c, 0xef,
		0xa0, 0xe0, 0x3b, 0x4d, 0xae, 0x2a, 0xf5, 0xb0, 0xc8, 0xeb, 0xbb, 0x3c, 0x83, 0x53, 0x99, 0x61,
		0x17, 0x2b, 0x04, 0x7e, 0xba, 0x77, 0xd6, 0x26, 0xe1, 0x69, 0x14, 0x63, 0x55, 0x21, 0x0c, 0x7d,
	}
	for i := 0; i < 256; i++ {
		table2[i] = ffmul(2, byte(i))
		table6[i] = ffmul(6, byte(i))
		table8[i] = ffmul(8, byte(i))
		table9[i] = ffmul(9, byte(i))
		table39[i] = ffmul(39, byte(i))
	}
}

// ffmul multiplies two bytes in GF(2^8) with reduction polynomial 0x11b.
func ffmul(a, b byte) byte {
	var c uint32
	for x := uint(0); x < 8; x++ {
		for y := uint(0); y < 8; y++ {
			if (a>>x)&(b>>y)&1 != 0 {
				c ^= 1 << (x + y)
			}
		}
	}
	for c > 0xff {
		c ^= 0x11b << (bitsLen(c) - 9)
	}
	return byte(c)
}

// bitsLen returns the position (1-based) of the highest set bit, mirroring
// the clz-based reduction loop in the reference ffmul.
func bitsLen(v uint32) uint {
	n := uint(0)
	for v != 0 {
		v >>= 1
		n++
	}
	return n
}

func subBytes(state uint32) uint32 {
	a0 := byte(state >> 16)
	a1 := byte(state >> 8)
	a2 := byte(state)
	return uint32(sbox[a0])<<16 | uint32(sbox[a1])<<8 | uint32(sbox[a2])
}

func invSubBytes(state uint32) uint32 {
	a0 := byte(state >> 16)
	a1 := byte(state >> 8)
	a2 := byte(state)
	return uint32(invSBox[a0])<<16 | uint32(invSBox[a1])<<8 | uint32(invSBox[a2])
}

func rotateRows(state uint32) uint32 {
	a0 := byte(state >> 16)
	a1 := byte(state >> 8)
	a2 := byte(state)
	a1 = (a1 << 6) | (a1 >> 2)
	a2 = (a2 << 4) | (a2 >> 4)
	return uint32(a0)<<16 | uint32(a1)<<8 | uint32(a2)
}

func invRotateRows(state uint32) uint32 {
	a0 := byte(state >> 16)
	a1 := byte(state >> 8)
	a2 := byte(state)
	a1 = (a1 >> 6) | (a1 << 2)
	a2 = (a2 >> 4) | (a2 << 4)
	return uint32(a0)<<16 | uint32(a1)<<8 | uint32(a2)
}

func mixColumns(in uint32) uint32 {
	a := byte(in >> 16)
	b := byte(in >> 8)
	c := byte(in)
	out := uint32(table9[a]^b^table2[c]) << 16
	out |= uint32(table2[a]^table9[b]^c) << 8
	out |= uint32(a ^ table2[b] ^ table9[c])
	return out
}

func invMixColumns(in uint32) uint32 {
	a := byte(in >> 16)
	b := byte(in >> 8)
	c := byte(in)
	out := uint32(table6[a]^table8[b]^table39[c]) << 16
	out |= uint32(table39[a]^table6[b]^table8[c]) << 8
	out |= uint32(table8[a] ^ table39[b] ^ table6[c])
	return out
}

// keyScheduleG is the AES-style SubWord+Rcon+rotate function reused by
// HALFLOOP's key expansion.
func keyScheduleG(word uint32, rc uint32) uint32 {
	b0 := byte(word >> 24)
	b1 := byte(word >> 16)
	b2 := byte(word >> 8)
	b3 := byte(word)
	return (uint32(sbox[b1])^rc)<<24 ^ uint32(sbox[b2])<<16 ^ uint32(sbox[b3])<<8 ^ uint32(sbox[b0])
}

// roundKeys holds the 11 24-bit round keys produced by keySchedule.
type roundKeys [11]uint32

// keySchedule derives the 11 round keys from a 128-bit key and 64-bit tweak.
func keySchedule(key u128, tweak uint64) roundKeys {
	var rk roundKeys
	k := key.xor(u128{hi: tweak})
	rk[0] = uint32(k.shr(104).lo) & Block24Mask
	rk[1] = uint32(k.shr(80).lo) & Block24Mask
	rk[2] = uint32(k.shr(56).lo) & Block24Mask
	rk[3] = uint32(k.shr(32).lo) & Block24Mask
	rk[4] = uint32(k.shr(8).lo) & Block24Mask
	rk[5] = uint32(k.lo&0xff) << 16

	g1 := keyScheduleG(uint32(k.lo&0xFFFFFFFF), 1)
	k = k.xor(u128From64(uint64(g1)).shl(96))
	k = k.xor(u128From64(uint64(uint32(k.shr(96).lo))).shl(64))
	k = k.xor(u128From64(uint64(uint32(k.shr(64).lo))).shl(32))
	k = k.xor(u128From64(uint64(uint32(k.shr(32).lo))).shl(0))

	rk[5] |= uint32(k.shr(112).lo) & 0xFFFF
	rk[6] = uint32(k.shr(88).lo) & Block24Mask
	rk[7] = uint32(k.shr(64).lo) & Block24Mask
	rk[8] = uint32(k.shr(40).lo) & Block24Mask
	rk[9] = uint32(k.shr(16).lo) & Block24Mask
	rk[10] = uint32(k.lo&0xFFFF) << 8

	g2 := keyScheduleG(uint32(k.lo&0xFFFFFFFF), 2)
	k = k.xor(u128From64(uint64(g2)).shl(96))
	rk[10] |= uint32(k.shr(120).lo) & 0xFF

	return rk
}

func encryptRound(state, roundKey uint32, lastRound bool) uint32 {
	state = subBytes(state)
	state = rotateRows(state)
	if !lastRound {
		state = mixColumns(state)
	}
	return state ^ roundKey
}

func decryptRound(state, roundKey uint32, lastRound bool) uint32 {
	state ^= roundKey
	if !lastRound {
		state = invMixColumns(state)
	}
	state = invRotateRows(state)
	return invSubBytes(state)
}

// Encrypt encrypts a 24-bit plaintext block under the given 128-bit key and
// 64-bit tweak. pt must fit in 24 bits, else a *ValidationError is returned.
func Encrypt(pt uint32, key u128, tweak uint64) (uint32, error) {
	if pt&0xFF000000 != 0 {
		return 0, &ValidationError{Field: "pt", Value: fmt.Sprintf("%#x", pt), Reason: "plaintext exceeds 24 bits"}
	}
	rk := keySchedule(key, tweak)
	ct := pt ^ rk[0]
	for i := 1; i < 10; i++ {
		ct = encryptRound(ct, rk[i], false)
	}
	ct = encryptRound(ct, rk[10], true)
	return ct, nil
}

// Decrypt decrypts a 24-bit ciphertext block under the given 128-bit key and
// 64-bit tweak.
func Decrypt(ct uint32, key u128, tweak uint64) (uint32, error) {
	if ct&0xFF000000 != 0 {
		return 0, &ValidationError{Field: "ct", Value: fmt.Sprintf("%#x", ct), Reason: "ciphertext exceeds 24 bits"}
	}
	rk := keySchedule(key, tweak)
	pt := decryptRound(ct, rk[10], true)
	for i := 9; i > 0; i-- {
		pt = decryptRound(pt, rk[i], false)
	}
	pt ^= rk[0]
	return pt, nil
}

// TestVectorKey, TestVectorTweak, TestVectorPlaintext and TestVectorCiphertext
// are the reference implementation's official self-test vector.
var (
	TestVectorKey        = u128{hi: 0x2b7e151628aed2a6, lo: 0xabf7158809cf4f3c}
	TestVectorTweak      = uint64(0x543bd88000017550)
	TestVectorPlaintext  = uint32(0x010203)
	TestVectorCiphertext = uint32(0xf28c1e)
)

// SelfTest verifies the cipher against its known-answer vector and the
// S-box/inverse-S-box relationship, mirroring halfloop-common.c's
// test_halfloop.
func SelfTest() error {
	ct, err := Encrypt(TestVectorPlaintext, TestVectorKey, TestVectorTweak)
	if err != nil {
		return err
	}
	if ct != TestVectorCiphertext {
		return &InternalError{Reason: fmt.Sprintf("test vector mismatch: got %06x want %06x", ct, TestVectorCiphertext)}
	}
	pt, err := Decrypt(TestVectorCiphertext, TestVectorKey, TestVectorTweak)
	if err != nil {
		return err
	}
	if pt != TestVectorPlaintext {
		return &InternalError{Reason: fmt.Sprintf("test vector decrypt mismatch: got %06x want %06x", pt, TestVectorPlaintext)}
	}
	for x := 0; x < 256; x++ {
		if invSBox[sbox[x]] != byte(x) {
			return &InternalError{Reason: "S-box is not an involution with its inverse"}
		}
	}
	return nil
}
