package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptem"
)

// encrypt [--to peer|hex] <in> <out>
func encryptCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "encrypt <in> <out>",
		Short: "Encrypt a file to yourself or to a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := recipient(to)
			if err != nil {
				return err
			}
			if err := e.EncryptFile(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(Stdout, "encrypted %s -> %s for %s\n", args[0], args[1], e.PublicKey().Fingerprint())
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "peer name or hex public key (default: yourself)")
	return cmd
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <in> <out>",
		Short: "Decrypt a file with your passphrase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadIdentity()
			if err != nil {
				return err
			}
			if err := c.DecryptFile(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(Stdout, "decrypted %s -> %s\n", args[0], args[1])
			return nil
		},
	}
}

// recipient resolves --to, falling back to the local public key, which
// needs no passphrase.
func recipient(to string) (*cryptem.Encryptor, error) {
	if to != "" {
		return appCtx.Peers.Resolve(to)
	}
	pub, err := appCtx.IDs.PublicKey()
	if err != nil {
		return nil, err
	}
	return cryptem.NewEncryptor(pub)
}

func loadIdentity() (*cryptem.Crypt, error) {
	pass, err := promptPassphrase("Passphrase: ")
	if err != nil {
		return nil, err
	}
	return appCtx.IDs.LoadIdentity(pass)
}
