package stream

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"cryptem/internal/crypto"
	"cryptem/internal/log"
	"cryptem/internal/util/memzero"
)

// ChunkSize is the plaintext size of every chunk except the last.
const ChunkSize = 64 * 1024

// HeaderSize is the encoded size of the stream header.
const HeaderSize = len(magic) + crypto.PublicKeySize

var magic = [8]byte{'C', 'R', 'Y', 'P', 'T', 'E', 'M', 0x01}

// Encrypt reads src until EOF and writes the encrypted stream for recipient
// to dst. It returns the number of bytes written to dst.
func Encrypt(dst io.Writer, src io.Reader, recipient crypto.PublicKey) (int64, error) {
	eph, key, err := crypto.EncapsulateKey(recipient, crypto.StreamInfo)
	if err != nil {
		return 0, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return 0, err
	}

	header := make([]byte, 0, HeaderSize)
	header = append(header, magic[:]...)
	header = append(header, eph.Bytes()...)
	if _, err := dst.Write(header); err != nil {
		return 0, err
	}
	written := int64(len(header))

	r := bufio.NewReaderSize(src, ChunkSize)
	buf := make([]byte, ChunkSize+crypto.TagSize)
	var nonce [crypto.NonceSize]byte

	for counter := uint64(0); ; counter++ {
		n, last, err := readChunk(r, buf[:ChunkSize])
		if err != nil {
			return written, err
		}
		setNonce(&nonce, counter, last)
		sealed := aead.Seal(buf[:0], nonce[:], buf[:n], header)

		m, err := dst.Write(sealed)
		written += int64(m)
		if err != nil {
			return written, err
		}
		if last {
			log.Debugw("stream encrypted", "chunks", counter+1, "bytes", written, "recipient", recipient.Fingerprint())
			return written, nil
		}
	}
}

// Decrypt reads an encrypted stream from src and writes the plaintext to dst
// using kp's private key. It returns the number of plaintext bytes written.
func Decrypt(dst io.Writer, src io.Reader, kp *crypto.KeyPair) (int64, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(src, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: stream header truncated", crypto.ErrMalformedInput)
		}
		return 0, err
	}
	if !bytes.Equal(header[:len(magic)], magic[:]) {
		return 0, fmt.Errorf("%w: not a cryptem stream", crypto.ErrMalformedInput)
	}
	eph, err := crypto.ParsePublicKey(header[len(magic):])
	if err != nil {
		return 0, err
	}
	key, err := crypto.DecapsulateKey(kp, eph, crypto.StreamInfo)
	if err != nil {
		return 0, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return 0, err
	}

	r := bufio.NewReaderSize(src, ChunkSize+crypto.TagSize)
	buf := make([]byte, ChunkSize+crypto.TagSize)
	var nonce [crypto.NonceSize]byte
	var written int64

	for counter := uint64(0); ; counter++ {
		n, last, err := readChunk(r, buf)
		if err != nil {
			return written, err
		}
		if n < crypto.TagSize {
			return written, fmt.Errorf("%w: chunk %d truncated", crypto.ErrAuthentication, counter)
		}
		setNonce(&nonce, counter, last)
		plaintext, err := aead.Open(buf[:0], nonce[:], buf[:n], header)
		if err != nil {
			return written, fmt.Errorf("%w: chunk %d", crypto.ErrAuthentication, counter)
		}

		m, err := dst.Write(plaintext)
		written += int64(m)
		if err != nil {
			return written, err
		}
		if last {
			log.Debugw("stream decrypted", "chunks", counter+1, "bytes", written)
			return written, nil
		}
	}
}

// readChunk fills buf from r. last reports whether r is exhausted after
// this chunk, which is known once a read comes up short or a one-byte peek
// hits EOF.
func readChunk(r *bufio.Reader, buf []byte) (n int, last bool, err error) {
	n, err = io.ReadFull(r, buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, true, nil
	case err != nil:
		return n, false, err
	}
	if _, err := r.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return n, true, nil
		}
		return n, false, err
	}
	return n, false, nil
}

func setNonce(nonce *[crypto.NonceSize]byte, counter uint64, last bool) {
	nonce[0], nonce[1], nonce[2] = 0, 0, 0
	binary.BigEndian.PutUint64(nonce[3:11], counter)
	if last {
		nonce[11] = 1
	} else {
		nonce[11] = 0
	}
}
