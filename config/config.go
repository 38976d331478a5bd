// Package config loads soundcorectl's configuration from a per-user
// hjson file merged with command-line flags, the same layered approach
// the teacher app uses for its own configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/hjson"
	"github.com/knadh/koanf/providers/cliflagv2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
)

const configFileName = "soundcorectl.conf"

// Values are the settings a user can supply via the config file or
// flags of the same name.
type Values struct {
	DBPath  string `koanf:"db"`
	Demo    bool   `koanf:"demo"`
	NoColor bool   `koanf:"no-color"`
}

// Config owns the resolved configuration directory and loaded Values.
type Config struct {
	path   string
	Values Values
}

// NewConfig returns an empty Config ready for Load.
func NewConfig() *Config {
	return &Config{}
}

// Load reads the on-disk config file, layers cliCtx's flags over it,
// and unmarshals the merged result into c.Values.
func (c *Config) Load(k *koanf.Koanf, cliCtx *cli.Context) error {
	if err := c.createConfigDir(); err != nil {
		return err
	}

	cfgfile, err := c.FilePath(configFileName)
	if err != nil {
		return err
	}

	if err := k.Load(file.Provider(cfgfile), hjson.Parser()); err != nil {
		return err
	}
	if err := k.Load(cliflagv2.Provider(cliCtx, "."), nil); err != nil {
		return err
	}

	return k.UnmarshalWithConf("", &c.Values, koanf.UnmarshalConf{Tag: "koanf"})
}

// createConfigDir resolves (creating if necessary) the directory
// soundcorectl keeps its config file and default database under.
func (c *Config) createConfigDir() error {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	type configDir struct {
		path, fullpath string
		prefixHomeDir  bool
	}

	configPaths := []*configDir{
		{path: os.Getenv("XDG_CONFIG_HOME")},
		{path: ".config", prefixHomeDir: true},
	}

	for _, dir := range configPaths {
		if dir.path == "" {
			continue
		}
		if dir.prefixHomeDir {
			dir.path = filepath.Join(homedir, dir.path)
		}
		dir.fullpath = filepath.Join(dir.path, "soundcorectl")

		if _, err := os.Stat(filepath.Clean(dir.fullpath)); err == nil {
			c.path = dir.fullpath
			break
		}
	}

	if c.path == "" {
		var pathErrors []string
		for _, dir := range configPaths {
			if dir.path == "" {
				continue
			}
			if err := os.MkdirAll(dir.fullpath, os.ModePerm); err == nil {
				c.path = dir.fullpath
				break
			}
			pathErrors = append(pathErrors, dir.fullpath)
		}
		if c.path == "" {
			return fmt.Errorf("the configuration directory could not be created at%s%s", "\n", strings.Join(pathErrors, "\n"))
		}
	}

	return nil
}

// FilePath returns the absolute path for a file under the config
// directory, creating it (empty) if it does not yet exist.
func (c *Config) FilePath(name string) (string, error) {
	confPath := filepath.Join(c.path, name)
	if _, err := os.Stat(confPath); err != nil {
		fd, err := os.Create(confPath)
		if err != nil {
			return "", fmt.Errorf("cannot create %s at %s", name, confPath)
		}
		fd.Close()
	}
	return confPath, nil
}

// DefaultDBPath returns the store path to use when Values.DBPath is
// unset: soundcore.db alongside the loaded config file.
func (c *Config) DefaultDBPath() string {
	if c.path == "" {
		return "soundcore.db"
	}
	return filepath.Join(c.path, "soundcore.db")
}
