package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Derive a new identity from a passphrase and save its public profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := promptNewPassphrase()
			if err != nil {
				return err
			}
			c, fp, err := appCtx.IDs.GenerateIdentity(pass, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(Stdout, "Identity created.\nPublic key:  %s\nFingerprint: %s\n", c.PublicKey(), fp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing identity")
	return cmd
}
