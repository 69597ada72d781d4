// Released under an MIT license. See LICENSE.

// Package config loads the calculator's optional TOML configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

const (
	DefaultLimit  = 1000
	DefaultPrompt = "> "

	name = ".rationals.toml"
)

// T (config) holds settings read from the configuration file.
type T struct {
	Output struct {
		Limit  int `toml:"limit"`
		Places int `toml:"places"`
	} `toml:"output"`
	UI struct {
		History bool   `toml:"history"`
		Prompt  string `toml:"prompt"`
	} `toml:"ui"`
}

// Default returns the settings used when there is no configuration file.
func Default() *T {
	c := &T{}

	c.Output.Limit = DefaultLimit
	c.UI.History = true
	c.UI.Prompt = DefaultPrompt

	return c
}

// Load reads the configuration file at path. If path is empty the file
// .rationals.toml in the user's home directory is used, if it exists.
// Settings missing from the file keep their default values.
func Load(path string) (*T, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}

		path = filepath.Join(home, name)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, err
	}

	return Parse(b)
}

// Parse reads settings from the TOML document b.
func Parse(b []byte) (*T, error) {
	c := Default()

	err := toml.Unmarshal(b, c)
	if err != nil {
		return nil, err
	}

	if c.Output.Limit < 0 {
		return nil, errors.New("output.limit must not be negative")
	}

	if c.Output.Places < 0 {
		return nil, errors.New("output.places must not be negative")
	}

	return c, nil
}
