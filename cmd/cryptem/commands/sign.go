package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cryptem/internal/crypto"
)

var errBadSignature = errors.New("signature does not match")

var (
	okMark  = color.New(color.FgHiGreen, color.Bold)
	badMark = color.New(color.FgHiRed, color.Bold)
)

func signCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file and print the hex signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c, err := loadIdentity()
			if err != nil {
				return err
			}
			sig, err := c.Sign(msg)
			if err != nil {
				return err
			}
			if out != "" {
				return os.WriteFile(out, []byte(crypto.ToHex(sig)+"\n"), 0o644)
			}
			fmt.Fprintln(Stdout, crypto.ToHex(sig))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the signature to this file instead of stdout")
	return cmd
}

// verify [--key peer|hex] <file> <signature hex | signature file>
func verifyCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "verify <file> <signature>",
		Short: "Verify a file signature from yourself or a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sig, err := readSignature(args[1])
			if err != nil {
				return err
			}
			signer, err := recipient(key)
			if err != nil {
				return err
			}
			ok, err := signer.Verify(msg, sig)
			if err != nil {
				return err
			}
			if !ok {
				badMark.Fprintf(Stdout, "✗ ")
				fmt.Fprintf(Stdout, "bad signature for %s\n", args[0])
				return errBadSignature
			}
			okMark.Fprintf(Stdout, "✓ ")
			fmt.Fprintf(Stdout, "good signature from %s\n", signer.PublicKey().Fingerprint())
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "peer name or hex public key (default: yourself)")
	return cmd
}

// readSignature accepts a hex signature or the path of a file holding one.
func readSignature(arg string) ([]byte, error) {
	if b, err := os.ReadFile(arg); err == nil {
		arg = strings.TrimSpace(string(b))
	}
	sig, err := crypto.FromHex(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: signature is not hex: %v", crypto.ErrMalformedInput, err)
	}
	return sig, nil
}
