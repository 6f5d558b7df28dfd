// Package templates embeds the HTML pages served by the application so the
// binary (and the test suite) can render them from any working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
