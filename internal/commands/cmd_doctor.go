package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/doctor"
	"github.com/colonyops/dossier/internal/core/styles"
	"github.com/colonyops/dossier/pkg/iojson"
)

type DoctorCmd struct {
	flags   *Flags
	format  string
	autofix bool
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your dossier setup",
		UsageText:   "dossier doctor [options]",
		Description: "Runs diagnostic checks on configuration, data directories, stored documents, and the terminal.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "autofix",
				Usage:       "automatically fix issues (e.g., delete orphaned letters)",
				Destination: &cmd.autofix,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) checks() []doctor.Check {
	cfg := cmd.flags.Config
	return []doctor.Check{
		doctor.NewConfigCheck(cfg, cmd.flags.ConfigPath),
		doctor.NewDirsCheck([]doctor.Dir{
			{Label: "data", Path: cfg.DataDir},
			{Label: "documents", Path: cfg.DocumentsDir()},
			{Label: "letters", Path: cfg.LettersDir()},
			{Label: "locales", Path: cfg.LocalesDir()},
			{Label: "exports", Path: cfg.ExportDir()},
		}),
		doctor.NewDocumentsCheck(cfg.DocumentsDir()),
		doctor.NewOrphanLettersCheck(cfg.LettersDir(), cfg.DocumentsDir(), cmd.autofix),
		doctor.NewTerminalCheck(),
	}
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := doctor.RunAll(ctx, cmd.checks())

	var err error
	if cmd.format == "json" {
		err = cmd.outputJSON(c, results)
	} else {
		cmd.outputText(c.Root().Writer, results)
	}
	if err != nil {
		return err
	}

	if _, _, failed := doctor.Summary(results); failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy bool            `json:"healthy"`
		Summary summaryJSON     `json:"summary"`
		Checks  []doctor.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
}

func (cmd *DoctorCmd) outputText(w io.Writer, results []doctor.Result) {
	divider := styles.DividerStyle.Render(strings.Repeat("─", 40))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render("Dossier Doctor"))
	_, _ = fmt.Fprintln(w, divider)
	_, _ = fmt.Fprintln(w)

	for _, result := range results {
		_, _ = fmt.Fprintln(w, styles.TitleStyle.Render(result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + styles.TextMutedStyle.Render(item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = styles.TextSuccessStyle.Render("✔")
			case doctor.StatusWarn:
				icon = styles.TextWarningStyle.Render("●")
			case doctor.StatusFail:
				icon = styles.TextErrorStyle.Render("✘")
			}

			_, _ = fmt.Fprintf(w, "  %s %s%s\n", icon, item.Label, detail)
		}

		_, _ = fmt.Fprintln(w)
	}

	passed, warned, failed := doctor.Summary(results)
	_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
		styles.TextSuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
		styles.TextWarningStyle.Render(fmt.Sprintf("%d warnings", warned)),
		styles.TextErrorStyle.Render(fmt.Sprintf("%d failed", failed)),
	)

	if !cmd.autofix {
		if fixable := doctor.CountFixable(results); fixable > 0 {
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, styles.TextMutedStyle.Render(fmt.Sprintf("Run 'dossier doctor --autofix' to fix %d issue(s)", fixable)))
		}
	}
}
