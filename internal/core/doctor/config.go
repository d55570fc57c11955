package doctor

import (
	"context"
	"strings"

	"github.com/colonyops/dossier/internal/core/config"
)

// ConfigCheck runs deep validation of the loaded configuration.
type ConfigCheck struct {
	cfg  *config.Config
	path string
}

// NewConfigCheck creates a new configuration check for the file at path.
func NewConfigCheck(cfg *config.Config, path string) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, path: path}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	err := c.cfg.ValidateDeep(c.path)
	if err == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "config",
			Status: StatusPass,
			Detail: c.path,
		})
		return result
	}

	for line := range strings.SplitSeq(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		result.Items = append(result.Items, CheckItem{
			Label:  "config",
			Status: StatusFail,
			Detail: line,
		})
	}
	return result
}
