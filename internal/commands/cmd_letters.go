package commands

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/messaging"
	"github.com/colonyops/dossier/internal/store/jsonfile"
	"github.com/colonyops/dossier/pkg/iojson"
)

type LettersCmd struct {
	flags *Flags

	// add flags
	addSubject string
	addSender  string
	addFile    string
	addSource  string

	// list flags
	listUnread bool

	importReader iojson.FileReader[messaging.Letter]

	// stdin is read for bodies when no argument or file is given
	stdin io.Reader
}

// NewLettersCmd creates a new letters command.
func NewLettersCmd(flags *Flags) *LettersCmd {
	return &LettersCmd{flags: flags, stdin: os.Stdin}
}

// Register adds the letters command to the application.
func (cmd *LettersCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "letters",
		Usage: "Read and write the correspondence of a document",
		Description: `Letters are stored per document at <data-dir>/letters/<id>.json.

New letters are unread. An open details view picks them up and, when
started with --answer, presents them in the side overlay.`,
		Commands: []*cli.Command{
			cmd.listCmd(),
			cmd.addCmd(),
			cmd.importCmd(),
		},
	})

	return app
}

func (cmd *LettersCmd) store() *jsonfile.LetterStore {
	return jsonfile.NewLetterStore(cmd.flags.Config.LettersDir())
}

func (cmd *LettersCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List the letters of a document",
		UsageText: "dossier letters list [--unread] <id>",
		Description: `Lists letters as JSON lines, oldest first.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "unread",
				Aliases:     []string{"u"},
				Usage:       "only unread letters",
				Destination: &cmd.listUnread,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *LettersCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Append a letter to a document",
		UsageText: "dossier letters add [--subject <s>] [--sender <name>] <id> [body]",
		Description: `Appends an unread letter. The markdown body can be provided as:
- A command-line argument
- From a file with -f/--file
- From stdin`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "subject",
				Aliases:     []string{"s"},
				Usage:       "letter subject",
				Destination: &cmd.addSubject,
			},
			&cli.StringFlag{
				Name:        "sender",
				Usage:       "sender name (defaults to letters.sender from config)",
				Destination: &cmd.addSender,
			},
			&cli.StringFlag{
				Name:        "source",
				Usage:       "source tag (defaults to letters.source from config)",
				Destination: &cmd.addSource,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "read the body from a markdown file",
				Destination: &cmd.addFile,
			},
		},
		Action: cmd.runAdd,
	}
}

func (cmd *LettersCmd) importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Append a letter given as JSON",
		UsageText: "dossier letters import [-f letter.json]",
		Description: `Reads a letter JSON object and appends it. Missing ids and timestamps
are filled in.`,
		Flags:  []cli.Flag{cmd.importReader.Flag()},
		Action: cmd.runImport,
	}
}

func (cmd *LettersCmd) runList(ctx context.Context, c *cli.Command) error {
	id, err := documentArg(c)
	if err != nil {
		return err
	}

	letters, err := cmd.store().List(ctx, id)
	if err != nil {
		return fmt.Errorf("list letters: %w", err)
	}
	if cmd.listUnread {
		letters = messaging.Unread(letters)
	}

	for _, l := range letters {
		if err := iojson.WriteLine(c.Root().Writer, l); err != nil {
			return err
		}
	}
	return nil
}

func (cmd *LettersCmd) runAdd(ctx context.Context, c *cli.Command) error {
	id, err := documentArg(c)
	if err != nil {
		return err
	}

	var body string
	switch {
	case c.NArg() >= 2:
		body = strings.Join(c.Args().Slice()[1:], " ")
	case cmd.addFile != "":
		data, err := os.ReadFile(cmd.addFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		body = string(data)
	default:
		data, err := io.ReadAll(cmd.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		body = string(data)
	}

	letter, err := messaging.NewLetter(id, cmd.addSubject, strings.TrimSpace(body))
	if err != nil {
		return err
	}
	letter.ID = uuid.NewString()
	letter.Sender = cmp.Or(cmd.addSender, cmd.flags.Config.Letters.Sender)
	letter.Source = cmp.Or(cmd.addSource, cmd.flags.Config.Letters.Source)

	return cmd.add(ctx, c, letter)
}

func (cmd *LettersCmd) runImport(ctx context.Context, c *cli.Command) error {
	letter, err := cmd.importReader.Read()
	if err != nil {
		return err
	}
	if letter.Source == "" {
		letter.Source = cmd.flags.Config.Letters.Source
	}
	return cmd.add(ctx, c, letter)
}

func (cmd *LettersCmd) add(ctx context.Context, c *cli.Command, letter messaging.Letter) error {
	saved, err := cmd.store().Add(ctx, letter)
	if err != nil {
		return fmt.Errorf("add letter: %w", err)
	}

	log.Info().Str("document_id", saved.DocumentID).Str("letter_id", saved.ID).Msg("letter added")
	return iojson.WriteLine(c.Root().Writer, saved)
}
