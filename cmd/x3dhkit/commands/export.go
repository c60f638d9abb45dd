package commands

import (
	"github.com/spf13/cobra"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/store"
)

// export <name>: write the public contact card for this identity.
func exportCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write your contact card, labelled <name>, for a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			card, err := c.wire.Identity.ExportContact(c.passphrase, domain.ContactName(args[0]))
			if err != nil {
				return err
			}
			if out != "" {
				return c.wire.Contacts.SaveContact(out, card)
			}
			b, err := store.MarshalContact(card)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the card to this file instead of stdout")
	return cmd
}
