package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger is the global logger instance. It discards everything until Setup runs.
var Logger = zap.NewNop()

// Setup builds Logger for one invocation. Every entry carries the app name,
// version and a runID unique to this process run.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
		"runID":      uuid.New().String(),
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
