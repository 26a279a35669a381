package cryptem_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"cryptem"
)

func writeInput(c *qt.C, dir string, b []byte) string {
	path := filepath.Join(dir, "input.bin")
	c.Assert(os.WriteFile(path, b, 0o600), qt.IsNil)
	return path
}

func dirEntries(c *qt.C, dir string) []string {
	entries, err := os.ReadDir(dir)
	c.Assert(err, qt.IsNil)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFile_RoundTrip(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")

	large := make([]byte, 200_000)
	_, err := rand.Read(large)
	c.Assert(err, qt.IsNil)

	for name, content := range map[string][]byte{
		"empty": {},
		"small": []byte("Hello there!"),
		"large": large,
	} {
		c.Run(name, func(c *qt.C) {
			dir := c.TempDir()
			in := writeInput(c, dir, content)
			enc := filepath.Join(dir, "input.bin.enc")
			dec := filepath.Join(dir, "output.bin")

			c.Assert(a.EncryptFile(in, enc), qt.IsNil)
			c.Assert(a.DecryptFile(enc, dec), qt.IsNil)

			got, err := os.ReadFile(dec)
			c.Assert(err, qt.IsNil)
			c.Assert(bytes.Equal(got, content), qt.IsTrue)
			c.Assert(dirEntries(c, dir), qt.HasLen, 3)
		})
	}
}

func TestFile_EncryptorToCrypt(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	dir := t.TempDir()

	in := writeInput(c, dir, []byte("sent by a peer"))
	enc := filepath.Join(dir, "msg.enc")
	dec := filepath.Join(dir, "msg.txt")

	c.Assert(a.Encryptor().EncryptFile(in, enc), qt.IsNil)
	c.Assert(a.DecryptFile(enc, dec), qt.IsNil)
	got, err := os.ReadFile(dec)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "sent by a peer")
}

func TestFile_MissingInput(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	for _, fn := range []func(string, string) error{a.EncryptFile, a.DecryptFile} {
		err := fn(filepath.Join(dir, "missing"), out)
		c.Assert(err, qt.ErrorIs, fs.ErrNotExist)
		var pe *fs.PathError
		c.Assert(errors.As(err, &pe), qt.IsTrue)
		c.Assert(dirEntries(c, dir), qt.HasLen, 0)
	}
}

func TestFile_UnwritableOutput(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	dir := t.TempDir()
	in := writeInput(c, dir, []byte("x"))

	err := a.EncryptFile(in, filepath.Join(dir, "no", "such", "dir", "out"))
	var pe *fs.PathError
	c.Assert(errors.As(err, &pe), qt.IsTrue)
}

func TestFile_TamperedLeavesNoOutput(t *testing.T) {
	c := qt.New(t)
	a := newCrypt(c, "my_password")
	dir := t.TempDir()

	content := make([]byte, 150_000)
	in := writeInput(c, dir, content)
	enc := filepath.Join(dir, "input.bin.enc")
	c.Assert(a.EncryptFile(in, enc), qt.IsNil)

	b, err := os.ReadFile(enc)
	c.Assert(err, qt.IsNil)
	b[len(b)-1] ^= 0x01
	c.Assert(os.WriteFile(enc, b, 0o600), qt.IsNil)

	dec := filepath.Join(dir, "output.bin")
	err = a.DecryptFile(enc, dec)
	c.Assert(err, qt.ErrorIs, cryptem.ErrAuthentication)

	_, err = os.Stat(dec)
	c.Assert(err, qt.ErrorIs, fs.ErrNotExist)
	c.Assert(dirEntries(c, dir), qt.DeepEquals, []string{"input.bin", "input.bin.enc"})
}

func TestFile_FailureKeepsExistingOutput(t *testing.T) {
	c := qt.New(t)
	a, other := newCrypt(c, "my_password"), newCrypt(c, "someone else")
	dir := t.TempDir()

	in := writeInput(c, dir, []byte("secret"))
	enc := filepath.Join(dir, "secret.enc")
	c.Assert(other.Encryptor().EncryptFile(in, enc), qt.IsNil)

	dec := filepath.Join(dir, "existing.txt")
	c.Assert(os.WriteFile(dec, []byte("keep me"), 0o600), qt.IsNil)
	c.Assert(a.DecryptFile(enc, dec), qt.ErrorIs, cryptem.ErrAuthentication)

	got, err := os.ReadFile(dec)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "keep me")
}
