package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate identity keys and store them securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			_, fp, err := c.wire.Identity.GenerateIdentity(c.passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Identity created.\nFingerprint: %s\n", fp)
			return nil
		},
	}
}
