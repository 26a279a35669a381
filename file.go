package cryptem

import (
	"io"
	"os"

	"cryptem/internal/log"
	"cryptem/internal/util/atomicfile"
)

const outputFileMode = 0o600

// transformFile streams inPath through fn into a temp file that replaces
// outPath only if fn succeeds.
func transformFile(inPath, outPath string, fn func(io.Writer, io.Reader) (int64, error)) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var n int64
	err = atomicfile.Write(outPath, outputFileMode, func(w io.Writer) error {
		var ferr error
		n, ferr = fn(w, in)
		return ferr
	})
	if err != nil {
		return err
	}
	log.Debugw("file written", "in", inPath, "out", outPath, "bytes", n)
	return nil
}
