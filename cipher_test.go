package halfloop

import "testing"

func TestSelfTest(t *testing.T) {
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest() = %v, want nil", err)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := U128(0x0011223344556677, 0x8899aabbccddeeff)
	tweak := uint64(0x543bd88000017550)

	for _, pt := range []uint32{0x000000, 0x000001, 0x7fffff, 0xffffff, 0x5a5a5a} {
		ct, err := Encrypt(pt, key, tweak)
		if err != nil {
			t.Fatalf("Encrypt(%06x) = %v", pt, err)
		}
		got, err := Decrypt(ct, key, tweak)
		if err != nil {
			t.Fatalf("Decrypt(%06x) = %v", ct, err)
		}
		if got != pt {
			t.Errorf("round trip pt=%06x: got %06x", pt, got)
		}
	}
}

func TestEncryptTestVector(t *testing.T) {
	ct, err := Encrypt(TestVectorPlaintext, TestVectorKey, TestVectorTweak)
	if err != nil {
		t.Fatalf("Encrypt() = %v", err)
	}
	if ct != TestVectorCiphertext {
		t.Errorf("Encrypt(test vector) = %06x, want %06x", ct, TestVectorCiphertext)
	}
}

func TestEncryptRejectsOversizedPlaintext(t *testing.T) {
	_, err := Encrypt(0x01000000, TestVectorKey, TestVectorTweak)
	if err == nil {
		t.Fatal("Encrypt(oversized pt) = nil error, want ValidationError")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("Encrypt(oversized pt) error type = %T, want *ValidationError", err)
	}
}

func TestDecryptRejectsOversizedCiphertext(t *testing.T) {
	_, err := Decrypt(0x01000000, TestVectorKey, TestVectorTweak)
	if err == nil {
		t.Fatal("Decrypt(oversized ct) = nil error, want ValidationError")
	}
}

func TestDifferentTweaksProduceDifferentCiphertexts(t *testing.T) {
	pt := uint32(0x112233)
	ct1, err := Encrypt(pt, TestVectorKey, 0x543bd88000017550)
	if err != nil {
		t.Fatal(err)
	}
	ct2, err := Encrypt(pt, TestVectorKey, 0x543bd88000017551^(1<<40))
	if err != nil {
		t.Fatal(err)
	}
	if ct1 == ct2 {
		t.Error("tweak change did not affect ciphertext")
	}
}

func TestSBoxIsInvolutionPair(t *testing.T) {
	for i := 0; i < 256; i++ {
		if invSBox[sbox[i]] != byte(i) {
			t.Fatalf("invSBox[sbox[%d]] = %d, want %d", i, invSBox[sbox[i]], i)
		}
	}
}

func TestMixColumnsRoundTrip(t *testing.T) {
	for _, v := range []uint32{0x000000, 0xffffff, 0x123456, 0xabcdef} {
		if got := invMixColumns(mixColumns(v)); got != v {
			t.Errorf("invMixColumns(mixColumns(%06x)) = %06x, want %06x", v, got, v)
		}
	}
}

func TestRotateRowsRoundTrip(t *testing.T) {
	for _, v := range []uint32{0x000000, 0xffffff, 0x123456, 0xabcdef} {
		if got := invRotateRows(rotateRows(v)); got != v {
			t.Errorf("invRotateRows(rotateRows(%06x)) = %06x, want %06x", v, got, v)
		}
	}
}
