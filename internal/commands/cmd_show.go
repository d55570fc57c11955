package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/dossier/internal/core/logging"
	"github.com/colonyops/dossier/internal/tui"
)

const (
	defaultShowWidth  = 100
	defaultShowHeight = 40
)

type ShowCmd struct {
	flags  *Flags
	view   viewFlags
	width  int
	height int
	plain  bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Print the details view of a document once",
		UsageText: "dossier show [--width <n>] [--plain] <id>",
		Description: `Loads the document, renders a single frame of the details view and
prints it. Exits non-zero when the document cannot be loaded; the retry
panel is still printed.`,
		Flags: append(cmd.view.flags(),
			&cli.IntFlag{
				Name:        "width",
				Aliases:     []string{"w"},
				Usage:       "frame width (defaults to the terminal width)",
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "frame height",
				Value:       defaultShowHeight,
				Destination: &cmd.height,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "strip colors and styling",
				Destination: &cmd.plain,
			},
		),
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := documentArg(c)
	if err != nil {
		return err
	}

	ctx = logging.WithDocumentID(logging.WithCommand(ctx, "show"), id)

	opts, cleanup, err := buildOptions(ctx, cmd.flags.Config, id, cmd.view, false)
	if err != nil {
		return err
	}
	defer cleanup()

	frame, loadErr := tui.Render(ctx, cmd.flags.Config, opts, cmd.frameWidth(), cmd.height)
	if cmd.plain {
		frame = ansi.Strip(frame)
	}

	if _, err := fmt.Fprintln(c.Root().Writer, frame); err != nil {
		return err
	}

	if loadErr != nil {
		log.Error().Ctx(ctx).Err(loadErr).Msg("load document")
		return cli.Exit(fmt.Sprintf("load document %s: %v", id, loadErr), 1)
	}
	return nil
}

func (cmd *ShowCmd) frameWidth() int {
	if cmd.width > 0 {
		return cmd.width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultShowWidth
}
