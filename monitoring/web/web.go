// Package web holds the status page served by the monitor.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// DevModeEnv names the variable that makes the monitor serve the status page
// from the source tree, so edits show up without rebuilding.
const DevModeEnv = "TICKLOOP_MONITOR_DEV"

//go:embed dist/*
var dist embed.FS

// GetAssets returns the file system the monitor serves at its root.
func GetAssets() http.FileSystem {
	if devMode() {
		dir := sourceDistDir()
		fmt.Fprintf(os.Stderr, "Serving monitor pages from %s\n", dir)

		return http.Dir(dir)
	}

	pages, err := fs.Sub(dist, "dist")
	if err != nil {
		panic(err)
	}

	return http.FS(pages)
}

func devMode() bool {
	on, err := strconv.ParseBool(os.Getenv(DevModeEnv))
	return err == nil && on
}

// sourceDistDir locates dist next to this file in the source tree.
func sourceDistDir() string {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot locate the monitor page sources")
	}

	return filepath.Join(filepath.Dir(self), "dist")
}
