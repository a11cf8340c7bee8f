// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgLanguageSet is the confirmation line printed to stdout once the
	// settings file has been written. The verb receives the language code.
	MsgLanguageSet = "Deployment language set to: %s\n"

	// MsgApplyFailed is logged when the settings file could not be updated.
	MsgApplyFailed = "error applying deployment language"
)
