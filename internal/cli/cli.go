package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/K4R-IAI/UROSActionLib/internal/app"
)

const longHelp = `actiongen - generates ROS action message definitions.

Each .action file holds a Goal, a Result and a Feedback section separated by
"---" lines. actiongen writes the six derived messages
(<Name>ActionGoal.msg, <Name>Goal.msg, <Name>ActionResult.msg,
<Name>Result.msg, <Name>ActionFeedback.msg, <Name>Feedback.msg) into the msg
directory next to the action directory, using the name of the package
directory two levels above the file as the package name.

Arguments:
  ACTION_FILE  a .action file, or a directory searched for .action files.

Alternatively, -c points at a project file (.hcl, .yaml, .yml) listing the
packages and actions of a whole workspace.`

type flagValues struct {
	config    string
	pkg       string
	out       string
	mkdir     bool
	dryRun    bool
	watch     bool
	workers   int
	logLevel  string
	logFormat string
}

func newRootCommand(values *flagValues, positional *[]string, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "actiongen [flags] [ACTION_FILE ...]",
		Short:         "Generate ROS action messages from .action definitions",
		Long:          longHelp,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				*positional = args
			}
			*ran = true
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&values.config, "config", "c", "", "Project file (.hcl, .yaml, .yml) listing packages and actions.")
	flags.StringVarP(&values.pkg, "package", "p", "", "Package name. Default: derived from the action file location.")
	flags.StringVarP(&values.out, "out", "o", "", "Output directory. Default: <action dir>/../msg.")
	flags.BoolVar(&values.mkdir, "mkdir", false, "Create missing output directories.")
	flags.BoolVar(&values.dryRun, "dry-run", false, "Print generated messages instead of writing them.")
	flags.BoolVar(&values.watch, "watch", false, "Keep running and regenerate when an action file changes.")
	flags.IntVarP(&values.workers, "workers", "w", 4, "Number of actions compiled concurrently.")
	flags.StringVar(&values.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&values.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	return cmd
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		values     flagValues
		positional []string
		ran        bool
	)
	cmd := newRootCommand(&values, &positional, &ran)
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if !ran {
		// --help was handled by cobra.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.", "positional", positional)

	if len(positional) == 0 && values.config == "" {
		slog.Debug("No inputs provided, printing usage and exiting.")
		fmt.Fprintln(output, cmd.UsageString())
		return nil, false, &ExitError{Code: ExitUsage, Message: "no action path or project file provided"}
	}

	logFormat := strings.ToLower(values.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(values.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ActionPaths: positional,
		ProjectPath: values.config,
		Package:     values.pkg,
		OutputDir:   values.out,
		MakeDirs:    values.mkdir,
		DryRun:      values.dryRun,
		Watch:       values.watch,
		WorkerCount: values.workers,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
