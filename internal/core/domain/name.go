// Package domain contains the core domain model for the installation report
// compiler: canonical package names, origin descriptors, the provenance
// variant set, and the report document itself.
package domain

import (
	"regexp"
	"strings"
)

// CanonicalName is a package name normalized per the index naming rules:
// lowercase, with runs of hyphens, underscores and dots collapsed to a
// single hyphen. Two requirements refer to the same package iff their
// canonical names are equal, regardless of casing or separator style.
type CanonicalName string

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// Canonicalize normalizes a package name to its canonical form.
func Canonicalize(name string) CanonicalName {
	return CanonicalName(nameSeparators.ReplaceAllString(strings.ToLower(name), "-"))
}

// String returns the canonical name as a plain string.
func (n CanonicalName) String() string {
	return string(n)
}
