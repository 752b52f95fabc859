package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/cmd/idtheory/internal/config"
)

func newConvertCommand(st *state) *cobra.Command {
	var (
		from      string
		to        string
		alphabet  string
		minLength int
	)

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert an identifier between encodings",
		Long: `Convert an identifier from one encoding to others.

Input forms:  hex, uuid, string, int, bigint, base64
Output forms: hex, uuid, string, int, bigint, base64 (default: all)

A single output form prints the bare value; several print "form: value" lines.`,
		Example: `  idtheory convert --from uuid 550e8400-e29b-41d4-a716-446655440000
  idtheory convert --from int --to hex,string 255
  idtheory convert --from string --alphabet base58 --to hex StV1DL6CwTryKyV`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forms, err := parseForms(to)
			if err != nil {
				return err
			}

			var opts []idtheory.Option
			if cmd.Flags().Changed("alphabet") {
				opts = append(opts, idtheory.WithAlphabet(config.ResolveAlphabet(alphabet)))
			}
			if cmd.Flags().Changed("min-length") {
				opts = append(opts, idtheory.WithMinLength(minLength))
			}

			from = strings.ToLower(strings.TrimSpace(from))
			id, err := decode(st.identifier(opts...), from, args[0])
			if err != nil {
				return err
			}

			lines, err := render(id, forms)
			if err != nil {
				return err
			}
			st.log.Debug("converted identifier", map[string]any{
				"from":  from,
				"to":    strings.Join(forms, ","),
				"bytes": id.Len(),
			})
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", formHex, "input form")
	cmd.Flags().StringVarP(&to, "to", "t", "", "comma-separated output forms")
	cmd.Flags().StringVarP(&alphabet, "alphabet", "a", "", "radix alphabet or alphabet name")
	cmd.Flags().IntVarP(&minLength, "min-length", "m", 0, "minimum radix string length")
	return cmd
}
