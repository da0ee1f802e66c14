package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/babblewitz/internal/app"
	"go.trai.ch/babblewitz/internal/engine/scheduler"
)

func (c *CLI) newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task <name>",
		Short: "Run a task against every implementation that supports it",
		Long: "Run a task against every implementation that supports it.\n\n" +
			"can-parse and custom tasks run over the categorized corpus; " +
			"deserialization runs over the save files.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.format()
			if err != nil {
				return err
			}
			return c.app.RunTask(cmd.Context(), args[0], app.TaskOptions{
				ImplsDir:       c.v.GetString("impls-dir"),
				CorpusDir:      c.v.GetString("corpus-dir"),
				SavesDir:       c.v.GetString("saves-dir"),
				Implementation: c.v.GetString("implementation"),
				Timeout:        c.v.GetDuration("timeout"),
				Workers:        c.v.GetInt("workers"),
				Format:         format,
				Record:         c.v.GetBool("record"),
				DBPath:         c.v.GetString("db"),
			})
		},
	}

	flags := cmd.Flags()
	flags.String("corpus-dir", app.DefaultCorpusDir, "Directory holding the categorized corpus")
	flags.String("saves-dir", app.DefaultSavesDir, "Directory holding the save files, per game")
	flags.Duration("timeout", scheduler.DefaultTimeout, "Time limit for one invocation")
	flags.Int("workers", runtime.NumCPU(), "Concurrent invocations for conformance tasks")
	flags.Bool("record", false, "Persist every outcome to the results database")
	flags.String("db", app.DefaultDBPath, "Path of the results database")
	for _, key := range []string{"corpus-dir", "saves-dir", "timeout", "workers", "record", "db"} {
		_ = c.v.BindPFlag(key, flags.Lookup(key))
	}
	return cmd
}
