// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the setlang process lifecycle.
//
// It picks the language code from the command line, resolves the settings
// path against the working directory, applies the code and prints the
// confirmation line.
package app
