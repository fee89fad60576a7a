// Package fs provides file-based storage for readable articles.
package fs

import (
	"os"
	"path/filepath"
	"runtime"
)

// CacheDirEnv names the environment variable that overrides the cache directory.
const CacheDirEnv = "READVIEW_CACHE_DIR"

const appName = "readview"

// DefaultCacheDir resolves the cache directory for the current process.
func DefaultCacheDir() string {
	return ResolveCacheDir(os.Getenv, runtime.GOOS)
}

// ResolveCacheDir returns the first resolvable cache directory, in order:
// $READVIEW_CACHE_DIR, $XDG_CACHE_HOME/readview, the platform cache
// directory, ~/.cache/readview, and finally a directory under os.TempDir().
func ResolveCacheDir(getenv func(string) string, goos string) string {
	if dir := getenv(CacheDirEnv); dir != "" {
		return dir
	}
	if dir := getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}

	home := getenv("HOME")
	switch goos {
	case "darwin":
		if home != "" {
			return filepath.Join(home, "Library", "Caches", appName)
		}
	case "windows":
		if dir := getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, appName)
		}
	}

	if home == "" {
		home = getenv("USERPROFILE")
	}
	if home != "" {
		return filepath.Join(home, ".cache", appName)
	}

	return filepath.Join(os.TempDir(), appName+"-cache")
}
