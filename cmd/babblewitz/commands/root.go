// Package commands implements the CLI commands for babblewitz.
package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/babblewitz/internal/app"
	"go.trai.ch/babblewitz/internal/build"
	"go.trai.ch/babblewitz/internal/core/domain"
	"go.trai.ch/babblewitz/internal/core/ports"
	"go.trai.ch/zerr"
)

// Application is the set of use cases the CLI drives.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) error
	RunTask(ctx context.Context, name string, opts app.TaskOptions) error
	SyncAssets(ctx context.Context, dest string) error
}

// Settings file looked up in the working directory.
const settingsName = "babblewitz"

// CLI represents the command line interface for babblewitz.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	v       *viper.Viper
	logJSON func(bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "babblewitz",
		Short:         "Conformance and performance harness for Clausewitz parsers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.String("impls-dir", app.DefaultImplsDir, "Directory holding one subdirectory per implementation")
	flags.String("implementation", "", "Restrict the command to one implementation directory")
	flags.String("format", string(ports.FormatTable), "Output format: table, github or json")
	flags.Bool("log-json", false, "Write logs as JSON")

	v := viper.New()
	v.SetEnvPrefix("BABBLEWITZ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"impls-dir", "implementation", "format", "log-json"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if err := c.readSettings(); err != nil {
			return err
		}
		if c.logJSON != nil {
			c.logJSON(v.GetBool("log-json"))
		}
		return nil
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTaskCmd())
	rootCmd.AddCommand(c.newSyncAssetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// SetLogJSONHook registers fn to receive the resolved log-json setting before
// any command runs.
func (c *CLI) SetLogJSONHook(fn func(bool)) {
	c.logJSON = fn
}

// SetSettingsDir sets where the optional babblewitz.yaml is looked up.
// Defaults to the working directory.
func (c *CLI) SetSettingsDir(dir string) {
	c.v.AddConfigPath(dir)
}

func (c *CLI) readSettings() error {
	c.v.SetConfigName(settingsName)
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read babblewitz.yaml")
	}
	return nil
}

func (c *CLI) format() (ports.Format, error) {
	f := ports.Format(strings.ToLower(c.v.GetString("format")))
	switch f {
	case ports.FormatTable, ports.FormatGitHub, ports.FormatJSON:
		return f, nil
	default:
		return "", zerr.With(domain.ErrUnknownFormat, "format", string(f))
	}
}
