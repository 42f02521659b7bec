package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type DisplayNamer interface {
	DisplayName() string
}

// DisplayName turns a hyphenated API name like "mr-mime" into "Mr Mime".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}
