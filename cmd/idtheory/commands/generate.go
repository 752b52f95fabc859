package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/cmd/idtheory/internal/config"
)

const (
	kindObjectID = "objectid"
	kindBigInt   = "bigint"
	kindUUID     = "uuid"
	kindULID     = "ulid"
)

func newGenerateCommand(st *state) *cobra.Command {
	var (
		version   int
		count     int
		to        string
		alphabet  string
		minLength int
	)

	cmd := &cobra.Command{
		Use:   "generate objectid|bigint|uuid|ulid",
		Short: "Generate new identifiers",
		Long: `Generate identifiers.

  objectid  12 bytes: seconds, milliseconds, 5 random bytes
  bigint    8 bytes: seconds, milliseconds, 2 random bytes
  uuid      UUID v1 or v4 (--version)
  ulid      16-byte ULID`,
		Example: `  idtheory generate objectid
  idtheory generate uuid --version 1 --count 3
  idtheory generate bigint --to int`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{kindObjectID, kindBigInt, kindUUID, kindULID},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := strings.ToLower(args[0])
			if count < 1 {
				return fmt.Errorf("--count must be >= 1, got %d", count)
			}
			if !cmd.Flags().Changed("version") && st.cfg.UUIDVersion != 0 {
				version = st.cfg.UUIDVersion
			}

			forms, err := parseForms(defaultFormFor(kind, to))
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
			base := st.identifier(opts...)

			for i := 0; i < count; i++ {
				id, err := generate(base, kind, idtheory.UUIDVersion(version))
				if err != nil {
					return err
				}
				lines, err := render(id, forms)
				if err != nil {
					return err
				}
				for _, line := range lines {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&version, "version", int(idtheory.UUIDv4), "UUID version (1 or 4)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to generate")
	cmd.Flags().StringVarP(&to, "to", "t", "", "comma-separated output forms")
	cmd.Flags().StringVarP(&alphabet, "alphabet", "a", "", "radix alphabet or alphabet name")
	cmd.Flags().IntVarP(&minLength, "min-length", "m", 0, "minimum radix string length")
	return cmd
}

func generate(base idtheory.Identifier, kind string, version idtheory.UUIDVersion) (idtheory.Identifier, error) {
	switch kind {
	case kindObjectID:
		return base.GenerateObjectID(), nil
	case kindBigInt:
		return base.GenerateBigInt(), nil
	case kindUUID:
		return base.GenerateUUID(version)
	case kindULID:
		return base.GenerateULID()
	default:
		return base, fmt.Errorf("unknown kind %q (want objectid, bigint, uuid or ulid)", kind)
	}
}

func defaultFormFor(kind, to string) string {
	if strings.TrimSpace(to) != "" {
		return to
	}
	switch kind {
	case kindUUID, kindULID:
		return formUUID
	default:
		return formHex
	}
}
