package api

import (
	"net/url"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// StaticConfig locates the front-end bundle
type StaticConfig struct {
	Root          string
	EntryDocument string
}

func (s StaticConfig) entryPath() string {
	return filepath.Join(s.Root, s.EntryDocument)
}

// resolve maps a request path to a file under Root. The path is cleaned
// as if rooted so it cannot climb above Root.
func (s StaticConfig) resolve(requestPath string) (string, error) {
	unescaped, err := url.PathUnescape(requestPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.Root, filepath.FromSlash(path.Clean("/"+unescaped))), nil
}

func serveEntry(cfg StaticConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.File(cfg.entryPath())
	}
}

func serveAsset(cfg StaticConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		name, err := cfg.resolve(c.Param("*"))
		if err != nil {
			return echo.ErrNotFound
		}
		return c.File(name)
	}
}
