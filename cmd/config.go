package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// fileConfig holds defaults read from a YAML config file. Flags set on the
// command line take precedence.
type fileConfig struct {
	Difficulty string `yaml:"difficulty"`
	Rows       int    `yaml:"rows"`
	Cols       int    `yaml:"cols"`
	Mines      int    `yaml:"mines"`
	Seed       int64  `yaml:"seed"`
	Director   string `yaml:"director"`
	Layout     string `yaml:"layout"`
	Rules      *bool  `yaml:"rules"`
	Dump       *bool  `yaml:"dump"`
	PlayAgain  *bool  `yaml:"play_again"`
	LogLevel   string `yaml:"log_level"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config %s", path)
	}

	return parseFileConfig(configBytes)
}

func parseFileConfig(configBytes []byte) (*fileConfig, error) {
	var config fileConfig
	if err := yaml.UnmarshalStrict(configBytes, &config); err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}

	if config.LogLevel != "" {
		if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
			return nil, errors.Wrap(err, "invalid log_level")
		}
	}
	return &config, nil
}

func (c fileConfig) Fields() logrus.Fields {
	return logrus.Fields{
		"difficulty": c.Difficulty,
		"rows":       c.Rows,
		"cols":       c.Cols,
		"mines":      c.Mines,
		"seed":       c.Seed,
		"director":   c.Director,
		"layout":     c.Layout,
		"log_level":  c.LogLevel,
	}
}
