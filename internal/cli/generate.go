package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-feconfig/internal/style"
	"github.com/goliatone/go-feconfig/pkg/chip"
	"github.com/goliatone/go-feconfig/pkg/form"
	"github.com/goliatone/go-feconfig/pkg/store"
)

var errValuesRequired = errors.New("a values file is required (use --values)")

// submitError carries a failed submission out of a command. Its text is the
// user-facing notification message.
type submitError struct {
	err error
}

func (e submitError) Error() string { return form.FailureMessage(e.err) }

func (e submitError) Unwrap() error { return e.err }

func newGenerateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the FE document from a values file",
		Long: `Generate reads field values from a YAML or JSON file, converts them and
writes the FE document without prompting. Fields missing from the file keep
their defaults. The exit status is non-zero when the submission fails.`,
		Example: `
  feconfig generate --values chip.yaml
  feconfig generate --values chip.yaml -o out/Chip.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetString(keyValues) == "" {
				return errValuesRequired
			}

			quiet := v.GetBool(keyQuiet)
			out := cmd.OutOrStdout()
			notifier := form.NotifierFuncs{
				OnSuccess: func(_ context.Context, _, message string) error {
					if !quiet {
						style.Success(out, message)
					}
					return nil
				},
			}

			controller, err := newController(cmd, v, store.NewOS(), notifier)
			if err != nil {
				return err
			}
			if _, err := controller.Submit(cmd.Context()); err != nil {
				return submitError{err: err}
			}
			return nil
		},
	}
}

func newPreviewCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the FE document without writing it",
		Long: `Preview converts the values file and prints the FE document to standard
output. Nothing is written to disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString(keyValues)
			if path == "" {
				return errValuesRequired
			}

			chipForm := chip.DefaultForm()
			values, err := loadValuesFile(cmd.Context(), store.NewOS(), path, chipForm)
			if err != nil {
				return err
			}
			merged := chip.Defaults(chipForm)
			for label, text := range values {
				merged[label] = text
			}

			renderer, err := chip.NewRenderer(v.GetString(keyTemplates))
			if err != nil {
				return err
			}
			doc, err := chip.Generate(renderer, merged)
			if err != nil {
				return submitError{err: err}
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
}
