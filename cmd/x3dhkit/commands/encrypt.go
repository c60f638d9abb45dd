package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"x3dhkit/internal/domain"
	"x3dhkit/internal/wire"
)

// encrypt --to <card> <message>: seal a message for a contact.
func encryptCmd(c *cli) *cobra.Command {
	var (
		to               string
		mode             string
		additionalSecret string
		out              string
	)
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message to a contact card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requirePassphrase(); err != nil {
				return err
			}
			m := domain.ParseMode(mode)
			if m == domain.ModeNone {
				return fmt.Errorf("unknown mode %q (want static or forward)", mode)
			}
			card, err := c.wire.Contacts.LoadContact(to)
			if err != nil {
				return err
			}
			env, err := c.wire.Messages.Seal(c.passphrase, card, m, []byte(additionalSecret), []byte(args[0]))
			if err != nil {
				return err
			}
			b, err := wire.MarshalEnvelope(env)
			if err != nil {
				return err
			}
			b = append(b, '\n')
			if out != "" {
				return os.WriteFile(out, b, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient contact card (YAML)")
	cmd.Flags().StringVar(&mode, "mode", "forward", "session mode: static or forward")
	cmd.Flags().StringVar(&additionalSecret, "additional-secret", "", "shared secret for an extra encryption layer")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the envelope to this file instead of stdout")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
