// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold prepares user typed fragments for case-insensitive LIKE
// matching.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC so composed and decomposed input compare equal.
// 2. Lowercases with Unicode rules, matching LOWER() on the column side.
// 3. Removes the LIKE wildcards "%" and "_".
package fold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var wildcards = strings.NewReplacer("%", "", "_", "")

// Lower returns the NFC, lowercased form of s.
func Lower(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// Contains turns fragment into a "%fragment%" LIKE pattern.
//
// Example:
//
//	fold.Contains("Beam_Dump%") // "%beamdump%"
func Contains(fragment string) string {
	return "%" + wildcards.Replace(Lower(fragment)) + "%"
}
