package handler

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticAssets returns the files served under /static.
func StaticAssets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}

	return sub
}
