// Package views holds the html/template files, embedded so rendering
// works regardless of the working directory.
package views

import "embed"

//go:embed *.html
var FS embed.FS
