// Package web embeds the static front end so the binary ships as a single
// artifact: the page, its script and styles, the manifest, and the service
// worker that precaches them for offline use.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the embedded asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The subtree is part of the binary; a miss is a build defect.
		panic(err)
	}
	return sub
}
