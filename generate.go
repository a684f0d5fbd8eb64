package halfloop

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDFKind selects the key-derivation function the data generator's -demo
// mode uses to turn a passphrase into key and tweak material, mirroring
// the teacher's PasswordKeyProvider split between Argon2id and PBKDF2.
type KDFKind uint8

const (
	// KDFArgon2id derives via Argon2id, the recommended default.
	KDFArgon2id KDFKind = iota
	// KDFPBKDF2 derives via PBKDF2-SHA256, for parity with environments
	// that cannot link Argon2id.
	KDFPBKDF2
)

// demoMaterialSize is the 24 bytes of pseudorandom output a demo key/tweak
// derivation produces: a 128-bit key followed by a 64-bit tweak seed, cut
// from one KDF call rather than two so a given (passphrase, salt) pair
// always reproduces the same (key, tweak) combination.
const demoMaterialSize = 16 + 8

// DeriveDemoMaterial derives reproducible key and tweak-seed bytes from a
// passphrase and salt, in place of randomU128's crypto/rand call.
// Grounded in the teacher's PasswordKeyProvider.DeriveKey: Argon2id with
// the same parameter defaults (64 MiB, 3 iterations, parallelism 4) unless
// kind selects PBKDF2-SHA256 with 100,000 iterations.
func DeriveDemoMaterial(passphrase, salt []byte, kind KDFKind) (key u128, tweakSeed uint64, err error) {
	if len(passphrase) == 0 {
		return u128{}, 0, &ValidationError{Field: "passphrase", Reason: "must not be empty"}
	}
	if len(salt) == 0 {
		return u128{}, 0, &ValidationError{Field: "salt", Reason: "must not be empty"}
	}

	var material []byte
	switch kind {
	case KDFArgon2id:
		material = argon2.IDKey(passphrase, salt, 3, 64*1024, 4, demoMaterialSize)
	case KDFPBKDF2:
		material = pbkdf2.Key(passphrase, salt, 100_000, demoMaterialSize, sha256.New)
	default:
		return u128{}, 0, &ValidationError{Field: "kdf", Reason: "unknown kind"}
	}

	key = u128FromHalves(beU64(material[0:8]), beU64(material[8:16]))
	tweakSeed = beU64(material[16:24])
	return key, tweakSeed, nil
}

func beU64(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

// GenerateSalt returns a fresh random salt sized for a KDF call, mirroring
// PasswordKeyProvider.GenerateSalt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, &InternalError{Reason: fmt.Sprintf("generate salt: %v", err)}
	}
	return salt, nil
}

// randomU128 draws 128 bits from crypto/rand, used by GeneratePairs' default
// (non-demo) path.
func randomU128() (u128, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return u128{}, &InternalError{Reason: fmt.Sprintf("random key: %v", err)}
	}
	return u128FromHalves(beU64(b[0:8]), beU64(b[8:16])), nil
}

func randomTweakSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, &InternalError{Reason: fmt.Sprintf("random tweak: %v", err)}
	}
	return beU64(b[:]), nil
}

// randomTweakFromSeed folds an arbitrary 64 bits of entropy into a valid
// Tweak by reducing each field modulo its range, exactly as the reference
// generator does with ABS(...) % range before calling create_tweak.
func randomTweakFromSeed(seed uint64) (uint64, error) {
	month := int(seed>>60)%12 + 1
	day := int((seed>>52)&0x1f)%daysInMonth[month-1] + 1
	coarse := int((seed >> 40) & 0x7ff) % 1440
	fine := int((seed >> 32) & 0x3f) % 60
	word := int((seed >> 20) & 0xff) % 256
	freq := int(seed&0xfffff)%270000*100 + 3_000_000

	return CreateTweak(Tweak{
		Month:      month,
		Day:        day,
		CoarseTime: coarse,
		FineTime:   fine,
		Word:       word,
		Frequency:  freq,
	})
}

// GeneratePairs synthesizes numPairs good pairs under a single random (or,
// if key/tweakSeed are non-zero, demo-derived) key, by chosen-plaintext
// query exactly as generate-data does: pick a random 24-bit pt0, encrypt the
// 256 variants pt0^d under tweak0^(d<<40) for d in 0..255, and keep any
// (i, j) whose
// ciphertext difference matches the single-active-S-box template. Returns
// the key used (so a caller can print it for verification) and the
// generated tuples, interleaved A,B per pair as the reference prints them.
func GeneratePairs(numPairs int, key u128, tweakSeed uint64, log *Logger) (u128, []Tuple, error) {
	if numPairs <= 0 {
		return u128{}, nil, &ValidationError{Field: "num_pairs", Reason: "must be positive"}
	}

	var err error
	if key == (u128{}) {
		key, err = randomU128()
		if err != nil {
			return u128{}, nil, err
		}
	}
	if tweakSeed == 0 {
		tweakSeed, err = randomTweakSeed()
		if err != nil {
			return u128{}, nil, err
		}
	}
	tweak0, err := randomTweakFromSeed(tweakSeed)
	if err != nil {
		return u128{}, nil, err
	}

	if log != nil {
		log.Info("Key: %016x%016x", key.hi, key.lo)
	}

	var tuples []Tuple
	found := 0
	queries := 0
	var ct [256]uint32
	var ptBuf [4]byte
	for found < numPairs {
		if _, err := rand.Read(ptBuf[:]); err != nil {
			return u128{}, nil, &InternalError{Reason: fmt.Sprintf("random plaintext: %v", err)}
		}
		pt0 := beU32(ptBuf[:]) & Block24Mask

		for delta := uint32(0); delta < 0x100; delta++ {
			tw := tweak0 ^ (uint64(delta) << 40)
			c, err := Encrypt(pt0^delta, key, tw)
			if err != nil {
				return u128{}, nil, err
			}
			ct[delta] = c
		}
		queries += 256

		for i := 0; i < 0x100 && found < numPairs; i++ {
			for j := i + 1; j < 0x100 && found < numPairs; j++ {
				outDiff := uint32(i^j) << 16
				if ct[i]^ct[j] != outDiff {
					continue
				}
				tuples = append(tuples,
					Tuple{PT: pt0 ^ uint32(i), CT: ct[i], Tweak: tweak0 ^ (uint64(i) << 40)},
					Tuple{PT: pt0 ^ uint32(j), CT: ct[j], Tweak: tweak0 ^ (uint64(j) << 40)},
				)
				found++
			}
		}
	}

	if log != nil {
		log.Info("%d pairs generated.", found)
		log.Info("Number of chosen plaintext queries: %d", queries)
	}
	return key, tuples, nil
}

func beU32(b []byte) uint32 {
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v
}
