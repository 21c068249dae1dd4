package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configHeader = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
`

// EnsureRoot creates rootDir and writes the default config.toml if missing.
func EnsureRoot(rootDir string) error {
	if err := os.MkdirAll(rootDir, 0700); err != nil {
		return err
	}

	configFilePath := filepath.Join(rootDir, "config.toml")
	if _, err := os.Stat(configFilePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := DefaultConfigTOML()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(configFilePath, data, 0644)
}

// DefaultConfigTOML renders the default configuration.
func DefaultConfigTOML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	if err := toml.NewEncoder(&buf).Encode(DefaultConfig()); err != nil {
		return nil, errors.Wrap(err, "encode default config")
	}
	return buf.Bytes(), nil
}

// LoadFile decodes a config.toml on top of the defaults. A table present in
// the file replaces the matching default section as a whole.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return cfg, nil
}
