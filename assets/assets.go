// Package assets embeds the prebuilt web UI. Run cmd/minify to regenerate
// index.html from the template and source assets.
package assets

import _ "embed"

//go:embed index.html
var Index []byte
