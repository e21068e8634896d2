package static

import "embed"

// Assets holds the script and styles of the stub widget page.
//
//go:embed widget.js widget.css
var Assets embed.FS
