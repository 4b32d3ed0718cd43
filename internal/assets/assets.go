// Package assets embeds the static images served under /images.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed images
var files embed.FS

// Images returns the image tree rooted so that "logos/lumi.svg" resolves
// to the file served at /images/logos/lumi.svg.
func Images() fs.FS {
	sub, err := fs.Sub(files, "images")
	if err != nil {
		panic("images directory missing from embed: " + err.Error())
	}
	return sub
}
