// Package web embeds the shell templates and stylesheet served by the
// dashboard.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Templates returns the HTML templates rooted at the templates directory.
func Templates() fs.FS {
	return mustSub(templateFiles, "templates")
}

// Static returns the assets served under /static.
func Static() fs.FS {
	return mustSub(staticFiles, "static")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
