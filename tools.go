//go:build tools
// +build tools

package uikit

// Pins the templ CLI and the refresh dev server for use with "go run".
import (
	_ "github.com/a-h/templ/cmd/templ"
	_ "github.com/networkteam/refresh"
)
