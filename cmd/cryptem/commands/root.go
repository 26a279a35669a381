package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"cryptem/internal/app"
	"cryptem/internal/log"
)

var (
	home       string
	passphrase string
	logLevel   string
	configPath string
	appCtx     *app.App

	// Stdout and Stdin are swapped out by tests.
	Stdout io.Writer = os.Stdout
	Stdin  *os.File  = os.Stdin
)

// NewRootCmd returns the cryptem command tree.
func NewRootCmd() *cobra.Command {
	stdinReader = nil
	root := &cobra.Command{
		Use:           "cryptem",
		Short:         "Password-derived encryption and signing",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log.Init(cfg.LogLevel, "stderr")
			appCtx, err = app.New(cfg)
			if err != nil {
				return err
			}
			log.Debugw("app ready", "home", cfg.Home)
			return nil
		},
	}
	root.SetOut(Stdout)

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cryptem)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase (prompted for when omitted)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn, error or fatal")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/cryptem.yml)")

	root.AddCommand(
		initCmd(),
		pubkeyCmd(),
		fingerprintCmd(),
		encryptCmd(),
		decryptCmd(),
		signCmd(),
		verifyCmd(),
		peerCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
