package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/dossier/internal/core/i18n"
	"github.com/colonyops/dossier/internal/core/styles"
)

// ValidateDeep performs comprehensive validation of the configuration
// including file accessibility, theme names, and user translation catalogs.
// The configPath argument specifies the config file location to validate
// (empty string skips the config file check). This calls Validate() first
// for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateTheme(),
		c.validateCatalogs(),
	)
}

func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("export.dir", c.ExportDir(), isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that the path is a directory or doesn't
// exist yet (it will be created on first use).
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func (c *Config) validateTheme() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return criterio.NewFieldErrors("theme", fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames()))
	}
	return nil
}

// validateCatalogs checks that every user catalog is valid YAML.
func (c *Config) validateCatalogs() error {
	files, err := filepath.Glob(filepath.Join(c.LocalesDir(), "*.yaml"))
	if err != nil {
		return criterio.NewFieldErrors("locales", err)
	}

	var errs criterio.FieldErrorsBuilder
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errs = errs.Append(fmt.Sprintf("locales[%s]", filepath.Base(file)), fmt.Errorf("cannot read: %w", err))
			continue
		}
		if _, err := i18n.Parse(data); err != nil {
			errs = errs.Append(fmt.Sprintf("locales[%s]", filepath.Base(file)), fmt.Errorf("invalid catalog: %w", err))
		}
	}

	return errs.ToError()
}
