package app

// LanguageApplier writes a deployment language into a settings file.
// [settings.Patcher] is the production implementation.
type LanguageApplier interface {
	ApplyLanguage(code, settingsPath string) error
}
