// Command halfloop-boomerang demonstrates the independent boomerang attack
// against HALFLOOP-24: it synthesizes a random key, tweak and plaintext,
// then recovers three key bytes via a sandwich differential, reporting the
// oracle query count.
package main

import (
	"crypto/rand"
	"os"

	halfloop "github.com/halfloop/halfloop"
)

func randomByte() (byte, error) {
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func randomNonzeroByte() (byte, error) {
	for {
		b, err := randomByte()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			return b, nil
		}
	}
}

func main() {
	log := halfloop.NewStderrLogger()

	log.Info("Initializing HALFLOOP-24 library.")
	if err := halfloop.SelfTest(); err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}

	beta, err := randomNonzeroByte()
	if err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitMemoryError)
	}
	gamma, err := randomNonzeroByte()
	if err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitMemoryError)
	}

	var ptBuf [4]byte
	if _, err := rand.Read(ptBuf[:]); err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitMemoryError)
	}
	pt0 := uint32(ptBuf[0])<<16 | uint32(ptBuf[1])<<8 | uint32(ptBuf[2])

	var twBuf [8]byte
	if _, err := rand.Read(twBuf[:]); err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitMemoryError)
	}
	var tweak0 uint64
	for _, c := range twBuf {
		tweak0 = tweak0<<8 | uint64(c)
	}

	var keyBuf [16]byte
	if _, err := rand.Read(keyBuf[:]); err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitMemoryError)
	}
	var hi, lo uint64
	for _, c := range keyBuf[:8] {
		hi = hi<<8 | uint64(c)
	}
	for _, c := range keyBuf[8:] {
		lo = lo<<8 | uint64(c)
	}
	key := halfloop.U128(hi, lo)

	ct0, err := halfloop.Encrypt(pt0, key, tweak0)
	if err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}
	pt0x, err := halfloop.Decrypt(ct0, key, tweak0^halfloop.GammaShift(gamma))
	if err != nil {
		log.Error("%v", err)
		os.Exit(halfloop.ExitCodeFor(err))
	}
	operations := 1

	log.Info("Key:        %016x%016x", hi, lo)
	log.Info("Tweak:      %016x", tweak0)
	log.Info("Plaintext:  %06x", pt0)
	log.Info("Ciphertext: %06x", ct0)
	log.Info("Beta:       %02x", beta)
	log.Info("Gamma:      %02x", gamma)

	for n := 0; n < 3; n++ {
		if _, err := halfloop.RestoreByte(key, tweak0, pt0, ct0, pt0x, beta, gamma, n, &operations, log); err != nil {
			os.Exit(halfloop.ExitCodeFor(err))
		}
	}

	log.Info("Performed %d encryptions and %d decryptions.", operations, operations)
}
