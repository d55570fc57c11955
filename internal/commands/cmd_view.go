package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/logging"
	"github.com/colonyops/dossier/internal/tui"
)

type ViewCmd struct {
	flags *Flags
	view  viewFlags
}

// NewViewCmd creates a new view command
func NewViewCmd(flags *Flags) *ViewCmd {
	return &ViewCmd{flags: flags}
}

// Register adds the view command to the application
func (cmd *ViewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "view",
		Usage:     "Open the interactive details view of a document",
		UsageText: "dossier view [--type <type>] [--answer] <id>",
		Description: `Opens the details view for the document stored at
<data-dir>/documents/<id>.json.

The view shows a skeleton while the document loads and a retry panel when
loading fails. With watching enabled in the config, edits to the document
or its letters are picked up while the view is open.`,
		Flags:  cmd.Flags(),
		Action: cmd.run,
	})

	return app
}

// Flags returns the view flags for registration on the root command
func (cmd *ViewCmd) Flags() []cli.Flag {
	return cmd.view.flags()
}

// Run executes the view. Exported for use as default command.
func (cmd *ViewCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ViewCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := documentArg(c)
	if err != nil {
		return err
	}

	ctx = logging.WithDocumentID(logging.WithCommand(ctx, "view"), id)

	opts, cleanup, err := buildOptions(ctx, cmd.flags.Config, id, cmd.view, cmd.flags.Config.Watch)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info().Ctx(ctx).Str("type", string(opts.Type)).Bool("answer", opts.Answer).Msg("opening details view")

	if err := tui.Run(ctx, cmd.flags.Config, opts); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
