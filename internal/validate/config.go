package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iiroan/piestyle/internal/config"
)

// Config validates the piestyle configuration file at configPath.
func Config(configPath string) Result {
	result := Result{}
	name := filepath.Base(configPath)

	if _, err := os.Stat(configPath); err != nil {
		result.AddPending(name + " not found")
		result.AddItem(StatusPending, name, "not found, using defaults")
		return result
	}

	loadedCfg, err := config.Load(configPath)
	if err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	if err := loadedCfg.Validate(); err != nil {
		result.AddError(fmt.Sprintf("Config: %v", err))
		result.AddItem(StatusError, name, err.Error())
		return result
	}
	result.AddItem(StatusSuccess, name, "")
	return result
}
