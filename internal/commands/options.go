package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/dossier/internal/core/config"
	"github.com/colonyops/dossier/internal/core/document"
	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/validate"
	"github.com/colonyops/dossier/internal/store/jsonfile"
	"github.com/colonyops/dossier/internal/tui"
	"github.com/colonyops/dossier/internal/tui/skeleton"
)

// viewFlags are shared by the commands that open the details view.
type viewFlags struct {
	docType string
	answer  bool
}

func (f *viewFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "document type (defaults to the type stored in the document)",
			Local:       true,
			Destination: &f.docType,
		},
		&cli.BoolFlag{
			Name:        "answer",
			Aliases:     []string{"a"},
			Usage:       "open to answer correspondence; presents unread letters",
			Local:       true,
			Destination: &f.answer,
		},
	}
}

func documentArg(c *cli.Command) (string, error) {
	id := c.Args().First()
	if err := validate.DocumentIDField("id", id); err != nil {
		return "", err
	}
	return id, nil
}

// buildOptions resolves everything the details view needs for document id.
// When watch is set the returned cleanup closes the file watchers.
func buildOptions(ctx context.Context, cfg *config.Config, id string, vf viewFlags, watch bool) (tui.Options, func(), error) {
	cleanup := func() {}

	tr, err := i18n.Load(cfg.Locale, cfg.LocalesDir())
	if err != nil {
		return tui.Options{}, cleanup, fmt.Errorf("load translations: %w", err)
	}

	sk, err := skeleton.DefaultConfig().WithOverrides(cfg.Skeleton)
	if err != nil {
		return tui.Options{}, cleanup, fmt.Errorf("skeleton config: %w", err)
	}

	docs := jsonfile.NewDocumentStore(cfg.DocumentsDir())

	docType := document.Type(vf.docType)
	if docType == "" {
		// Best effort: a missing document still opens and shows the retry region.
		if d, err := docs.Load(ctx, id); err == nil {
			docType = d.Type
		} else {
			log.Debug().Err(err).Str("document_id", id).Msg("peek document type")
		}
	}

	opts := tui.Options{
		DocumentID: id,
		Type:       docType,
		Answer:     vf.answer,
		Documents:  docs,
		Letters:    jsonfile.NewLetterStore(cfg.LettersDir()),
		Translator: tr,
		Skeleton:   sk,
	}

	if !watch {
		return opts, cleanup, nil
	}

	var watchers []*jsonfile.Watcher
	cleanup = func() {
		for _, w := range watchers {
			_ = w.Close()
		}
	}

	if w, err := jsonfile.NewWatcher(cfg.DocumentsDir()); err != nil {
		log.Warn().Err(err).Msg("document watcher disabled")
	} else {
		watchers = append(watchers, w)
		opts.DocumentWatcher = w
	}
	if w, err := jsonfile.NewWatcher(cfg.LettersDir()); err != nil {
		log.Warn().Err(err).Msg("letters watcher disabled")
	} else {
		watchers = append(watchers, w)
		opts.LettersWatcher = w
	}

	return opts, cleanup, nil
}
