package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "dossier config validate [options]",
				Description: "Validates the configuration file, checking the theme, data directories, and user translation catalogs.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationOutput struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	out := validationOutput{Valid: true}
	if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
		out.Valid = false
		out.Errors = splitErrors(err)
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		if err := iojson.WriteWith(w, c.Root().ErrWriter, out); err != nil {
			return err
		}
	} else {
		writeText(w, out)
	}

	if !out.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func writeText(w io.Writer, out validationOutput) {
	if out.Valid {
		_, _ = fmt.Fprintln(w, styles.StepCompleteStyle.Render(styles.MarkComplete+" Configuration is valid"))
		return
	}

	for _, e := range out.Errors {
		_, _ = fmt.Fprintln(w, styles.StatusErrorStyle.Render(styles.MarkFailed+" "+e))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%d error(s) found\n", len(out.Errors))
}

// splitErrors breaks a multi-line validation error into one entry per line.
func splitErrors(err error) []string {
	var lines []string
	for line := range strings.SplitSeq(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
