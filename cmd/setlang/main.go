// Command setlang writes the rfsuite deployment language into the editor
// settings file of the current directory.
//
// Usage:
//
//	setlang [language-code]
//
// The code defaults to "en" and is stored under "rfsuite.deploy.language" in
// .vscode/settings.json; every other key of that file is kept.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/rfsuite-setlang/internal/app"
	"github.com/MKhiriev/rfsuite-setlang/internal/config"
	"github.com/MKhiriev/rfsuite-setlang/internal/logger"
	"github.com/MKhiriev/rfsuite-setlang/internal/settings"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("setlang", zerolog.WarnLevel)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// validated by config
	level, _ := logger.ParseLevel(cfg.Log.Level)
	zerolog.SetGlobalLevel(level)

	logBuildInfo(log)
	log.Debug().Any("config", cfg).Msg("received configs")

	patcher := settings.NewPatcher(settings.NewFileStore(), log.GetChildLogger())
	a := app.NewApp(cfg, patcher, os.Stdout, log)

	if err = a.Run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg(app.MsgApplyFailed)
	}
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Debug().
		Str("version", buildVersion).
		Str("date", buildDate).
		Str("commit", buildCommit).
		Msg("build info")
}
