package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func mustSalt(t *testing.T) []byte {
	t.Helper()
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	return salt
}

func TestDeriveScalar_Deterministic(t *testing.T) {
	salt := mustSalt(t)

	a, err := DeriveScalar([]byte("my_password"), salt, FastKDFParams)
	if err != nil {
		t.Fatalf("DeriveScalar: %v", err)
	}
	b, err := DeriveScalar([]byte("my_password"), salt, FastKDFParams)
	if err != nil {
		t.Fatalf("DeriveScalar: %v", err)
	}
	if a.Cmp(b) != 0 {
		t.Fatal("same password and salt produced different scalars")
	}
	if a.Sign() <= 0 || a.Cmp(curveN) >= 0 {
		t.Fatalf("scalar %x outside [1, N-1]", a)
	}
}

func TestDeriveScalar_DifferentSalts(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 8; i++ {
		kp, err := DeriveKeyPair([]byte("my_password"), mustSalt(t), FastKDFParams)
		if err != nil {
			t.Fatalf("DeriveKeyPair: %v", err)
		}
		pub := kp.Public().String()
		if seen[pub] {
			t.Fatalf("public key %s repeated across salts", pub)
		}
		seen[pub] = true
	}
}

func TestDeriveScalar_ParamsAreInput(t *testing.T) {
	salt := mustSalt(t)
	a, err := DeriveScalar([]byte("pw"), salt, FastKDFParams)
	if err != nil {
		t.Fatalf("DeriveScalar: %v", err)
	}
	other := FastKDFParams
	other.Time = 2
	b, err := DeriveScalar([]byte("pw"), salt, other)
	if err != nil {
		t.Fatalf("DeriveScalar: %v", err)
	}
	if a.Cmp(b) == 0 {
		t.Fatal("changing the time cost did not change the scalar")
	}
}

func TestDeriveScalar_Errors(t *testing.T) {
	salt := mustSalt(t)
	tests := []struct {
		name     string
		password []byte
		salt     []byte
		params   KDFParams
	}{
		{"empty password", nil, salt, FastKDFParams},
		{"short salt", []byte("pw"), salt[:8], FastKDFParams},
		{"long salt", []byte("pw"), append(bytes.Clone(salt), 1), FastKDFParams},
		{"zero salt", []byte("pw"), make([]byte, SaltSize), FastKDFParams},
		{"zero time", []byte("pw"), salt, KDFParams{Time: 0, MemoryKiB: 64, Threads: 1}},
		{"zero threads", []byte("pw"), salt, KDFParams{Time: 1, MemoryKiB: 64, Threads: 0}},
		{"tiny memory", []byte("pw"), salt, KDFParams{Time: 1, MemoryKiB: 8, Threads: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveScalar(tt.password, tt.salt, tt.params)
			if !errors.Is(err, ErrDerivation) {
				t.Fatalf("got %v, want ErrDerivation", err)
			}
		})
	}
}

func TestNewSalt_Fresh(t *testing.T) {
	a, b := mustSalt(t), mustSalt(t)
	if len(a) != SaltSize {
		t.Fatalf("salt is %d bytes, want %d", len(a), SaltSize)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two salts are identical")
	}
}
