// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/dossier/internal/core/document"
)

// DocumentID validates that id can name a document file: non-empty, without
// whitespace or path separators, and not a relative path element.
func DocumentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return document.ErrEmptyID
	}
	if strings.ContainsAny(id, "/\\ \t\r\n") || id == "." || id == ".." {
		return fmt.Errorf("invalid document id %q", id)
	}
	return nil
}

// DocumentIDField returns a criterio validator for document ids.
func DocumentIDField(field, id string) error {
	return criterio.Run(field, id, DocumentID)
}
