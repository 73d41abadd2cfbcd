package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// AssetsFS returns the files served under /assets/.
func AssetsFS() (fs.FS, error) {
	return fs.Sub(static, "static/assets")
}
