// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"regexp"
	"strings"
)

// csi matches ANSI Control Sequence Introducer escapes such as colour codes.
var csi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes colour and cursor escapes from s.
func StripAnsiCodes(s string) string {
	return csi.ReplaceAllString(s, "")
}

// Lines splits CLI output into lines without colour codes, dropping the
// trailing newline. Empty output yields no lines.
func Lines(s string) []string {
	s = strings.TrimSuffix(StripAnsiCodes(s), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
