package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/pkg/basex"
)

func newAlphabetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List named radix alphabets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %s\n", "default", idtheory.DefaultAlphabet)

			names := make([]string, 0, len(basex.Named))
			for name := range basex.Named {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%-8s %s\n", name, basex.Named[name])
			}
			return nil
		},
	}
}
