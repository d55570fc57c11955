package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/colonyops/dossier/internal/core/document"
)

// DocumentsCheck decodes every stored document and reports files the
// details view cannot show properly.
type DocumentsCheck struct {
	dir string
}

// NewDocumentsCheck creates a new documents check for dir.
func NewDocumentsCheck(dir string) *DocumentsCheck {
	return &DocumentsCheck{dir: dir}
}

func (c *DocumentsCheck) Name() string {
	return "Documents"
}

func (c *DocumentsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	files, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		result.Items = append(result.Items, CheckItem{Label: "documents", Status: StatusFail, Detail: err.Error()})
		return result
	}

	if len(files) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "documents",
			Status: StatusPass,
			Detail: "none stored (run 'dossier demo' to create samples)",
		})
		return result
	}

	valid := 0
	for _, file := range files {
		id := strings.TrimSuffix(filepath.Base(file), ".json")
		if item, ok := checkDocument(id, file); !ok {
			result.Items = append(result.Items, item)
			continue
		}
		valid++
	}

	result.Items = append([]CheckItem{{
		Label:  "documents",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d of %d readable", valid, len(files)),
	}}, result.Items...)
	return result
}

func checkDocument(id, file string) (CheckItem, bool) {
	data, err := os.ReadFile(file)
	if err != nil {
		return CheckItem{Label: id, Status: StatusFail, Detail: fmt.Sprintf("cannot read: %v", err)}, false
	}

	var d document.DetailsState
	if err := json.Unmarshal(data, &d); err != nil {
		return CheckItem{Label: id, Status: StatusFail, Detail: fmt.Sprintf("invalid JSON: %v", err)}, false
	}

	switch {
	case d.ID != id:
		return CheckItem{Label: id, Status: StatusFail, Detail: fmt.Sprintf("id %q does not match file name", d.ID)}, false
	case document.Classify(d.Type) == document.ServiceUnknown:
		return CheckItem{Label: id, Status: StatusWarn, Detail: fmt.Sprintf("unknown type %q", d.Type)}, false
	case !knownStatus(d.Status):
		return CheckItem{Label: id, Status: StatusWarn, Detail: fmt.Sprintf("unknown status %q", d.Status)}, false
	}
	return CheckItem{}, true
}

func knownStatus(s document.Status) bool {
	switch s {
	case document.StatusCreated, document.StatusInProgress, document.StatusDone,
		document.StatusRejected, document.StatusCancelled:
		return true
	default:
		return false
	}
}
