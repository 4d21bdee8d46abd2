// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"io"
	"text/template"

	"github.com/matt-FFFFFF/cat/internal/argv"
)

var helpTemplate = template.Must(template.New("help").Parse(
	"usage: {{.Program}} [option] [file ...]\n" +
		"{{range .Options}}      --{{.Name}}\t\t{{.Usage}}\n{{end}}"))

// writeHelp prints the usage line and one line per recognised option.
func writeHelp(w io.Writer, program string) error {
	return helpTemplate.Execute(w, struct {
		Program string
		Options []argv.Option
	}{
		Program: program,
		Options: argv.Options,
	})
}
