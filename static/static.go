// Package static embeds the public assets served under /static.
package static

import "embed"

// FS holds the stylesheet tree.
//
//go:embed css
var FS embed.FS
