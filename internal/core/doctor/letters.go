package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OrphanLettersCheck finds correspondence files whose document no longer
// exists. With autofix set the files are removed.
type OrphanLettersCheck struct {
	lettersDir   string
	documentsDir string
	autofix      bool
}

// NewOrphanLettersCheck creates a new orphaned letters check.
func NewOrphanLettersCheck(lettersDir, documentsDir string, autofix bool) *OrphanLettersCheck {
	return &OrphanLettersCheck{lettersDir: lettersDir, documentsDir: documentsDir, autofix: autofix}
}

func (c *OrphanLettersCheck) Name() string {
	return "Letters"
}

func (c *OrphanLettersCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	files, err := filepath.Glob(filepath.Join(c.lettersDir, "*.json"))
	if err != nil {
		result.Items = append(result.Items, CheckItem{Label: "letters", Status: StatusFail, Detail: err.Error()})
		return result
	}

	for _, file := range files {
		id := strings.TrimSuffix(filepath.Base(file), ".json")
		if _, err := os.Stat(filepath.Join(c.documentsDir, id+".json")); err == nil {
			continue
		}

		if !c.autofix {
			result.Items = append(result.Items, CheckItem{
				Label:   id,
				Status:  StatusWarn,
				Detail:  "letters for a missing document",
				Fixable: true,
			})
			continue
		}

		if err := os.Remove(file); err != nil {
			result.Items = append(result.Items, CheckItem{
				Label:  id,
				Status: StatusFail,
				Detail: fmt.Sprintf("remove orphaned letters: %v", err),
			})
			continue
		}
		result.Items = append(result.Items, CheckItem{
			Label:  id,
			Status: StatusPass,
			Detail: "removed orphaned letters",
		})
	}

	if len(result.Items) == 0 {
		result.Items = append(result.Items, CheckItem{
			Label:  "letters",
			Status: StatusPass,
			Detail: fmt.Sprintf("%d file(s), no orphans", len(files)),
		})
	}
	return result
}
