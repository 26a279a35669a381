package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := appCtx.IDs.FingerprintIdentity()
			if err != nil {
				return err
			}
			fmt.Fprintf(Stdout, "Fingerprint: %s\n", fp)
			return nil
		},
	}
}

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the identity public key (hex) for sharing with peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := appCtx.IDs.PublicKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(Stdout, pub)
			return nil
		},
	}
}
