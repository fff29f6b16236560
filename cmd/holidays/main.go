// Command holidays prints public holiday calendars and serves them over
// HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands
type app struct {
	logLevel string
	logger   *slog.Logger
	stderr   io.Writer
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func (a *app) setupLogger(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))
	return nil
}

// newRootCmd builds the command tree.
func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	c := &cobra.Command{
		Use:           "holidays",
		Short:         "Public holiday calendars",
		Long:          "Compute public holidays per country and year, check workdays and serve feeds.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogger(a.logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Usage()
		},
	}
	c.SetErr(stderr)
	c.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	c.AddCommand(newListCmd(a))
	c.AddCommand(newCountiesCmd(a))
	c.AddCommand(newWorkdayCmd(a))
	c.AddCommand(newServeCmd(a))
	return c
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
