package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/messaging"
	"github.com/colonyops/dossier/internal/store/jsonfile"
	"github.com/colonyops/dossier/pkg/iojson"
	"github.com/colonyops/dossier/pkg/randid"
)

type DemoCmd struct {
	flags  *Flags
	prefix string
	now    func() time.Time
}

// NewDemoCmd creates a new demo command.
func NewDemoCmd(flags *Flags) *DemoCmd {
	return &DemoCmd{flags: flags, now: time.Now}
}

// Register adds the demo command to the application.
func (cmd *DemoCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "demo",
		Usage:     "Write sample documents and letters into the data directory",
		UsageText: "dossier demo [--prefix <p>]",
		Description: `Creates one document per status, with attachments, a linked document
and unread letters, and prints their ids as JSON lines.

Open one with 'dossier view <id>'.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "prefix",
				Usage:       "id prefix of the generated documents",
				Value:       "demo",
				Destination: &cmd.prefix,
			},
		},
		Action: cmd.run,
	})

	return app
}

type demoEntry struct {
	ID      string          `json:"id"`
	Type    document.Type   `json:"type"`
	Status  document.Status `json:"status"`
	Letters int             `json:"letters"`
}

func (cmd *DemoCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	docs := jsonfile.NewDocumentStore(cfg.DocumentsDir())
	letters := jsonfile.NewLetterStore(cfg.LettersDir())

	for _, sample := range cmd.samples() {
		if err := docs.Save(ctx, sample.doc); err != nil {
			return fmt.Errorf("save %s: %w", sample.doc.ID, err)
		}
		for _, l := range sample.letters {
			if _, err := letters.Add(ctx, l); err != nil {
				return fmt.Errorf("add letter to %s: %w", sample.doc.ID, err)
			}
		}

		entry := demoEntry{
			ID:      sample.doc.ID,
			Type:    sample.doc.Type,
			Status:  sample.doc.Status,
			Letters: len(sample.letters),
		}
		if err := iojson.WriteLine(c.Root().Writer, entry); err != nil {
			return err
		}
	}

	log.Info().Str("dir", cfg.DocumentsDir()).Msg("demo data written")
	return nil
}

type demoSample struct {
	doc     document.DetailsState
	letters []messaging.Letter
}

func (cmd *DemoCmd) samples() []demoSample {
	now := cmd.now()
	id := func() string { return randid.Prefixed(cmd.prefix, 6) }
	source := cmd.flags.Config.Letters.Source

	statement := document.DetailsState{
		ID:        id(),
		Number:    "1024",
		CreatedAt: now.AddDate(0, 0, -1),
		Type:      document.TypeAccountStatement,
		Status:    document.StatusCreated,
		Account:   document.Account{Number: "40817810099910004312", Description: "Current account"},
		ItemCount: 1,
		Fee:       "0.00 RUB",
		Attachments: []document.Attachment{
			{ID: uuid.NewString(), Name: "application.pdf", Size: 48_213, FileState: document.FileUploaded},
		},
	}

	complaint := document.DetailsState{
		ID:        id(),
		Number:    "2051",
		CreatedAt: now.AddDate(0, 0, -3),
		Type:      document.TypeComplaint,
		Status:    document.StatusInProgress,
		Account:   statement.Account,
		ItemCount: 2,
		Fee:       "0.00 RUB",
		Attachments: []document.Attachment{
			{ID: uuid.NewString(), Name: "receipt.jpg", Size: 1_204_881, FileState: document.FileSigned},
			{ID: uuid.NewString(), Name: "statement.pdf", Size: 310_044, FileState: document.FileUploaded},
		},
		LinkedDocument: &document.LinkedDocument{ID: statement.ID, Number: statement.Number, Type: statement.Type},
	}

	certificate := document.DetailsState{
		ID:        id(),
		Number:    "3310",
		CreatedAt: now.AddDate(0, -1, 0),
		Type:      document.TypeCertificate,
		Status:    document.StatusDone,
		Account:   document.Account{Number: "40817810500000001122", Description: "Savings account"},
		ItemCount: 1,
		Fee:       "150.00 RUB",
		Attachments: []document.Attachment{
			{ID: uuid.NewString(), Name: "certificate.pdf", Size: 92_330, FileState: document.FileSigned},
		},
	}

	reissue := document.DetailsState{
		ID:        id(),
		Number:    "4402",
		CreatedAt: now.AddDate(0, 0, -10),
		Type:      document.TypeCardReissue,
		Status:    document.StatusRejected,
		Account:   statement.Account,
		ItemCount: 1,
		Fee:       "500.00 RUB",
	}

	letter := document.DetailsState{
		ID:        id(),
		CreatedAt: now,
		Type:      document.TypeFreeForm,
		Status:    document.StatusCancelled,
	}

	return []demoSample{
		{doc: statement},
		{
			doc: complaint,
			letters: []messaging.Letter{
				{
					DocumentID: complaint.ID,
					Source:     source,
					Sender:     "Support",
					Subject:    "We are looking into it",
					Body:       "Thank you for the complaint.\n\nWe have asked the merchant for **transaction details** and will reply within 5 days.",
					CreatedAt:  now.Add(-48 * time.Hour),
				},
				{
					DocumentID: complaint.ID,
					Source:     source,
					Sender:     "Support",
					Subject:    "Additional documents",
					Body:       "Please sign `statement.pdf` so we can forward it:\n\n- open the document\n- select the file\n- press enter",
					CreatedAt:  now.Add(-2 * time.Hour),
				},
			},
		},
		{doc: certificate},
		{doc: reissue},
		{doc: letter},
	}
}
