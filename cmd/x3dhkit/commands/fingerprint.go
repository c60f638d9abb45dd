package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print identity fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			fp, err := c.wire.Identity.FingerprintIdentity(c.passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
