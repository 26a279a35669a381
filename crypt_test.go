package cryptem_test

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"cryptem"
	"cryptem/internal/crypto"
)

func newCrypt(c *qt.C, password string) *cryptem.Crypt {
	cr, err := cryptem.NewWithParams([]byte(password), crypto.FastKDFParams)
	c.Assert(err, qt.IsNil)
	return cr
}

func TestCrypt_EncryptDecrypt(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	msg := []byte("Hello there!")

	first, err := a.Encrypt(msg)
	c.Assert(err, qt.IsNil)
	c.Assert(first, qt.Not(qt.DeepEquals), msg)
	c.Assert(first, qt.HasLen, len(msg)+cryptem.Overhead)

	for i := 0; i < 5; i++ {
		ct, err := a.Encrypt(msg)
		c.Assert(err, qt.IsNil)
		c.Assert(ct, qt.Not(qt.DeepEquals), first)

		got, err := a.Decrypt(ct)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.DeepEquals, msg)
	}
}

func TestCrypt_SignVerify(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")

	sig, err := a.Sign([]byte("Hello there!"))
	c.Assert(err, qt.IsNil)
	c.Assert(sig, qt.HasLen, cryptem.SignatureSize)

	ok, err := a.Verify([]byte("Hello there!"), sig)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	ok, err = a.Verify([]byte("Hello there!!"), sig)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	_, err = a.Verify([]byte("Hello there!"), sig[:10])
	c.Assert(err, qt.ErrorIs, cryptem.ErrMalformedInput)
}

func TestCrypt_DecryptTampered(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	ct, err := a.Encrypt([]byte("Hello there!"))
	c.Assert(err, qt.IsNil)

	for _, i := range []int{0, 33, 45, 61, len(ct) - 1} {
		m := bytes.Clone(ct)
		m[i] ^= 0x10
		got, err := a.Decrypt(m)
		c.Assert(err, qt.ErrorIs, cryptem.ErrAuthentication, qt.Commentf("byte %d", i))
		c.Assert(got, qt.IsNil)
	}

	_, err = a.Decrypt(ct[:cryptem.Overhead-1])
	c.Assert(err, qt.ErrorIs, cryptem.ErrMalformedInput)
}

func TestRestore_Deterministic(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")

	b, err := cryptem.RestoreWithParams([]byte("my_password"), a.Salt(), a.Params())
	c.Assert(err, qt.IsNil)
	c.Assert(b.PublicKey().Equal(a.PublicKey()), qt.IsTrue)

	ct, err := a.Encrypt([]byte("across sessions"))
	c.Assert(err, qt.IsNil)
	got, err := b.Decrypt(ct)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "across sessions")

	wrong, err := cryptem.RestoreWithParams([]byte("my_passwore"), a.Salt(), a.Params())
	c.Assert(err, qt.IsNil)
	c.Assert(wrong.PublicKey().Equal(a.PublicKey()), qt.IsFalse)
	_, err = wrong.Decrypt(ct)
	c.Assert(err, qt.ErrorIs, cryptem.ErrAuthentication)
}

func TestNew_SaltsDoNotCollide(t *testing.T) {
	c := qt.New(t)
	seenKeys := map[string]bool{}
	seenSalts := map[string]bool{}
	for i := 0; i < 16; i++ {
		cr := newCrypt(c, "my_password")
		c.Assert(cr.Salt(), qt.HasLen, cryptem.SaltSize)
		salt, pub := string(cr.Salt()), cr.PublicKey().String()
		c.Assert(seenSalts[salt], qt.IsFalse)
		c.Assert(seenKeys[pub], qt.IsFalse)
		seenSalts[salt], seenKeys[pub] = true, true
	}
}

func TestCrypt_SaltIsCopied(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	s := a.Salt()
	s[0] ^= 0xff
	c.Assert(a.Salt()[0], qt.Not(qt.Equals), s[0])
}

func TestRestore_InvalidInput(t *testing.T) {
	c := qt.New(t)
	salt := make([]byte, cryptem.SaltSize)
	salt[0] = 1

	tests := []struct {
		name     string
		password []byte
		salt     []byte
		params   cryptem.KDFParams
	}{
		{"empty password", nil, salt, crypto.FastKDFParams},
		{"short salt", []byte("pw"), salt[:8], crypto.FastKDFParams},
		{"zero salt", []byte("pw"), make([]byte, cryptem.SaltSize), crypto.FastKDFParams},
		{"zero time", []byte("pw"), salt, cryptem.KDFParams{MemoryKiB: 64, Threads: 1}},
	}
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			_, err := cryptem.RestoreWithParams(tt.password, tt.salt, tt.params)
			c.Assert(err, qt.ErrorIs, cryptem.ErrDerivation)
		})
	}
}

func TestCrypt_EncryptTo(t *testing.T) {
	c := qt.New(t)
	alice, bob := newCrypt(c, "alice"), newCrypt(c, "bob")

	ct, err := alice.EncryptTo([]byte("hi bob"), bob.PublicKey())
	c.Assert(err, qt.IsNil)

	got, err := bob.Decrypt(ct)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "hi bob")

	_, err = alice.Decrypt(ct)
	c.Assert(err, qt.ErrorIs, cryptem.ErrAuthentication)
}

func TestCrypt_ConcurrentUse(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := []byte(fmt.Sprintf("message %d", i))
			ct, err := a.Encrypt(msg)
			if err != nil {
				errs <- err
				return
			}
			pt, err := a.Decrypt(ct)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(pt, msg) {
				errs <- fmt.Errorf("goroutine %d: round trip mismatch", i)
				return
			}
			sig, err := a.Sign(msg)
			if err != nil {
				errs <- err
				return
			}
			if ok, err := a.Verify(msg, sig); err != nil || !ok {
				errs <- errors.Join(fmt.Errorf("goroutine %d: verify = %v", i, ok), err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		c.Error(err)
	}
}
