// Package locale inspects deployment language codes.
//
// Codes are never rejected: the settings file receives whatever the caller
// passed. Inspect only reports how the code reads as a BCP 47 tag so the
// caller can log a hint for typos such as "fr_FR.UTF-8" or "francais".
package locale

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Info describes a language code.
type Info struct {
	// Code is the input, unchanged.
	Code string
	// WellFormed reports whether Code parsed as a BCP 47 tag with known
	// subtags.
	WellFormed bool
	// Tag is the canonical form of Code, empty when not well-formed.
	Tag string
	// Base is the base language subtag of Tag, e.g. "pt" for "pt-BR".
	Base string
	// Name is the English display name of Tag, empty when unknown.
	Name string
}

// Inspect parses code as a BCP 47 language tag.
func Inspect(code string) Info {
	info := Info{Code: code}

	tag, err := language.Parse(code)
	if err != nil {
		return info
	}

	info.WellFormed = true
	info.Tag = tag.String()
	base, _ := tag.Base()
	info.Base = base.String()
	info.Name = display.English.Tags().Name(tag)

	return info
}

// Canonical reports whether the code is already written in canonical form.
func (i Info) Canonical() bool {
	return i.WellFormed && i.Tag == i.Code
}
