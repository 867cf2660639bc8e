package cli

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-feconfig/internal/style"
	"github.com/goliatone/go-feconfig/pkg/form"
	"github.com/goliatone/go-feconfig/pkg/renderers/tui"
	"github.com/goliatone/go-feconfig/pkg/store"
)

// Config keys, shared by flags, the config file and FECONFIG_* variables.
const (
	keyLogLevel  = "log-level"
	keyOutput    = "output"
	keyTemplates = "templates"
	keyValues    = "values"
	keyQuiet     = "quiet"
)

// NewRootCommand builds the feconfig command tree. Every call returns an
// independent tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "feconfig",
		Short: "FE Configuration Generator",
		Long: `feconfig collects the chip parameters of a NAND part and writes them to
Chip.txt in FE format.

Run without a subcommand for the interactive form, or use "feconfig generate"
with a values file for scripted runs.`,
		Version:      getVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile, cmd.ErrOrStderr()); err != nil {
				return err
			}
			initLogging(v, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.feconfig/config.yaml)")
	flags.String(keyLogLevel, "disabled", "log level (debug, info, warn, error)")
	flags.StringP(keyOutput, "o", store.DefaultPath, "path the FE document is written to")
	flags.String(keyTemplates, "", "directory searched for a chip.tpl override")
	flags.String(keyValues, "", "YAML or JSON file with field values keyed by label or field name")
	flags.BoolP(keyQuiet, "q", false, "suppress non-essential output")

	for _, key := range []string{keyLogLevel, keyOutput, keyTemplates, keyValues, keyQuiet} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(
		newGenerateCommand(v),
		newPreviewCommand(v),
		newExportTemplateCommand(),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return fang.Execute(context.Background(), NewRootCommand(), fang.WithColorSchemeFunc(func(lightDark lipgloss.LightDarkFunc) fang.ColorScheme {
		return fang.ColorScheme{
			Base:           style.PrimaryTextColor,
			Title:          style.AccentColor,
			Description:    style.PrimaryTextColor,
			Codeblock:      style.CodeColor,
			Program:        style.AccentColor,
			DimmedArgument: style.MutedColor,
			Comment:        style.MutedColor,
			Flag:           style.InfoColor,
			FlagDefault:    style.MutedColor,
			Command:        style.SuccessColor,
			QuotedString:   style.WarningColor,
			Argument:       style.PrimaryTextColor,
			Help:           style.InfoColor,
			Dash:           style.MutedColor,
			ErrorHeader:    [2]color.Color{style.ErrorColor, style.ErrorBgColor},
			ErrorDetails:   style.ErrorColor,
		}
	}))
}

// initConfig reads in config file and ENV variables if set. A config file
// named with --config must exist; the default locations are optional.
func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".feconfig"))
		}
		v.AddConfigPath(".")
		v.AddConfigPath(".feconfig")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FECONFIG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	if !v.GetBool(keyQuiet) {
		fmt.Fprintf(stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}
	return nil
}

// initLogging configures the global logger
func initLogging(v *viper.Viper, stderr io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch v.GetString(keyLogLevel) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})
}

// newController wires a form controller from the resolved configuration and
// applies the values file when one is configured.
func newController(cmd *cobra.Command, v *viper.Viper, s *store.Store, notifier form.Notifier) (*form.Controller, error) {
	controller := form.New(
		form.WithOutputPath(v.GetString(keyOutput)),
		form.WithTemplateDir(v.GetString(keyTemplates)),
		form.WithStore(s),
		form.WithNotifier(notifier),
		form.WithLogger(log.Logger),
	)

	path := v.GetString(keyValues)
	if path == "" {
		return controller, nil
	}
	values, err := loadValuesFile(cmd.Context(), s, path, controller.Form())
	if err != nil {
		return nil, err
	}
	if err := controller.SetFields(values); err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}
	log.Debug().Str("path", path).Int("fields", len(values)).Msg("loaded values file")
	return controller, nil
}

func runInteractive(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()
	notifier := tui.NewNotifier(tui.WithOutput(out))

	controller, err := newController(cmd, v, store.NewOS(), notifier)
	if err != nil {
		return err
	}
	session, err := tui.NewSession(controller, tui.WithOutput(out))
	if err != nil {
		return err
	}

	if err := session.Run(cmd.Context()); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			if !v.GetBool(keyQuiet) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
			}
			return nil
		}
		return err
	}
	return nil
}
