// Package gamedata provides the embedded game catalog and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds all catalog files from this directory at build time.
//
//go:embed *.json *.yaml
var dataFS embed.FS
