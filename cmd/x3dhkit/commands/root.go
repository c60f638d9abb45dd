package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"x3dhkit/internal/app"
)

// cli holds flag values and the wired dependencies for one command tree.
type cli struct {
	home       string
	passphrase string
	logLevel   string
	wire       *app.Wire
}

var errNoPassphrase = errors.New("passphrase required (-p)")

// Execute runs the CLI against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "x3dhkit",
		Short:        "Encrypt messages between X25519 identities",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				c.home = filepath.Join(dir, ".x3dhkit")
			}

			level, err := logrus.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(level)

			w, err := app.NewWire(app.Config{Home: c.home, Logger: logger})
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.home, "home", "", "config dir (default ~/.x3dhkit)")
	root.PersistentFlags().StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase protecting your identity")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		initCmd(c),
		fingerprintCmd(c),
		exportCmd(c),
		encryptCmd(c),
		decryptCmd(c),
	)
	return root
}

func (c *cli) requirePassphrase() error {
	if c.passphrase == "" {
		return errNoPassphrase
	}
	return nil
}
