package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cryptem/internal/crypto"
	"cryptem/internal/domain"
)

func peerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peer",
		Short: "Manage the address book of peer public keys",
	}
	cmd.AddCommand(peerAddCmd(), peerListCmd(), peerRmCmd())
	return cmd
}

func peerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <public key hex>",
		Short: "Add or replace a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := appCtx.Peers.AddPeer(domain.PeerName(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(Stdout, "added %s (%s)\n", p.Name, crypto.Fingerprint(p.PublicKey))
			return nil
		},
	}
}

func peerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List peers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			peers, err := appCtx.Peers.ListPeers()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFINGERPRINT\tPUBLIC KEY")
			for _, p := range peers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, crypto.Fingerprint(p.PublicKey), p.PublicKey)
			}
			return w.Flush()
		},
	}
}

func peerRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Peers.RemovePeer(domain.PeerName(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(Stdout, "removed %s\n", args[0])
			return nil
		},
	}
}
