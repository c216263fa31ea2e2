// Package views embeds the HTML templates.
package views

import "embed"

// FS holds every template under this directory.
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
