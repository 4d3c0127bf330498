// Package site carries the portfolio page served when no page is given.
package site

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed index.html
var defaultPage []byte

// DefaultPage opens the bundled portfolio page.
func DefaultPage() io.Reader {
	return bytes.NewReader(defaultPage)
}
