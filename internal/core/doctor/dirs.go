package doctor

import (
	"context"
	"fmt"
	"os"
)

// Dir is a labelled directory the application reads or writes.
type Dir struct {
	Label string
	Path  string
}

// DirsCheck verifies that the data directories exist and are accessible.
// Missing directories are created on first use, so they only warn.
type DirsCheck struct {
	dirs []Dir
}

// NewDirsCheck creates a new directories check.
func NewDirsCheck(dirs []Dir) *DirsCheck {
	return &DirsCheck{dirs: dirs}
}

func (c *DirsCheck) Name() string {
	return "Directories"
}

func (c *DirsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	for _, dir := range c.dirs {
		info, err := os.Stat(dir.Path)
		switch {
		case os.IsNotExist(err):
			result.Items = append(result.Items, CheckItem{
				Label:  dir.Label,
				Status: StatusWarn,
				Detail: dir.Path + " does not exist (created on first use)",
			})
		case err != nil:
			result.Items = append(result.Items, CheckItem{
				Label:  dir.Label,
				Status: StatusFail,
				Detail: fmt.Sprintf("inaccessible: %v", err),
			})
		case !info.IsDir():
			result.Items = append(result.Items, CheckItem{
				Label:  dir.Label,
				Status: StatusFail,
				Detail: dir.Path + " is not a directory",
			})
		default:
			result.Items = append(result.Items, CheckItem{
				Label:  dir.Label,
				Status: StatusPass,
				Detail: dir.Path,
			})
		}
	}

	return result
}
