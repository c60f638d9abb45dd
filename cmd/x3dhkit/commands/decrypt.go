package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"x3dhkit/internal/wire"
)

// decrypt --from <card> <envelope-file|->: open an envelope from a contact.
func decryptCmd(c *cli) *cobra.Command {
	var (
		from             string
		additionalSecret string
	)
	cmd := &cobra.Command{
		Use:   "decrypt <envelope-file|->",
		Short: "Decrypt an envelope from a contact card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			card, err := c.wire.Contacts.LoadContact(from)
			if err != nil {
				return err
			}

			var raw []byte
			if args[0] == "-" {
				raw, err = io.ReadAll(cmd.InOrStdin())
			} else {
				raw, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			env, err := wire.UnmarshalEnvelope(raw)
			if err != nil {
				return err
			}

			msg, err := c.wire.Messages.Open(c.passphrase, card, []byte(additionalSecret), env)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(msg.Plaintext, '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "sender contact card (YAML)")
	cmd.Flags().StringVar(&additionalSecret, "additional-secret", "", "shared secret for an extra encryption layer")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}
