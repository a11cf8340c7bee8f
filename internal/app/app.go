package app

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/rfsuite-setlang/internal/config"
	"github.com/MKhiriev/rfsuite-setlang/internal/locale"
	"github.com/MKhiriev/rfsuite-setlang/internal/logger"
)

// App runs one setlang invocation.
type App struct {
	cfg     *config.StructuredConfig
	applier LanguageApplier
	stdout  io.Writer
	log     *logger.Logger

	getwd func() (string, error)
}

// NewApp returns an App that resolves paths against the process working
// directory and prints to stdout.
func NewApp(cfg *config.StructuredConfig, applier LanguageApplier, stdout io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:     cfg,
		applier: applier,
		stdout:  stdout,
		log:     log,
		getwd:   os.Getwd,
	}
}

// Run applies the language code given as args[0], or the configured default
// when args is empty. args are the command-line arguments without the
// program name; they are taken verbatim, so "-x" is a code like any other.
func (a *App) Run(args []string) error {
	code := a.cfg.Language.Default
	if len(args) > 0 {
		code = args[0]
	}
	if len(args) > 1 {
		a.log.Warn().Strs("ignored", args[1:]).Msg("extra arguments ignored")
	}

	a.inspect(code)

	cwd, err := a.getwd()
	if err != nil {
		return fmt.Errorf("error resolving working directory: %w", err)
	}
	settingsPath := a.cfg.SettingsPath(cwd)

	if err = a.applier.ApplyLanguage(code, settingsPath); err != nil {
		return err
	}

	if _, err = fmt.Fprintf(a.stdout, MsgLanguageSet, code); err != nil {
		return fmt.Errorf("error printing confirmation: %w", err)
	}

	return nil
}

// inspect logs how code reads as a language tag. It never rejects a code.
func (a *App) inspect(code string) {
	info := locale.Inspect(code)

	switch {
	case !info.WellFormed:
		a.log.Warn().Str("code", code).Msg("language code is not a well-formed BCP 47 tag, writing it as given")
	case !info.Canonical():
		a.log.Info().Str("code", code).Str("canonical", info.Tag).Str("name", info.Name).
			Msg("language code is not in canonical form, writing it as given")
	default:
		a.log.Debug().Str("code", code).Str("name", info.Name).Msg("language code")
	}
}
