// Package asset holds the built-in configuration and demo slides
package asset

import (
	"embed"
	"io/fs"
)

//go:embed slides
var slides embed.FS

// Slides returns the embedded demo slide tree, paths are rooted at "slides/"
func Slides() fs.FS {
	return slides
}
