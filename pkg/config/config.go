// Package config reads the depviz run configuration.
//
// A configuration names three settings: the Graphviz tool path, the root
// package to resolve, and the file the DOT output is written to. The
// canonical form is a CSV file with a header row and exactly one data row:
//
//	graphviz_path,package_name,output_path
//	/usr/local/bin/dot,react,react.dot
//
// Columns are matched by header name, so their order is free and extra
// columns are ignored. Only the first data row is read. TOML (.toml) and
// YAML (.yaml, .yml) files with the same three keys are accepted as well.
//
// Every failure is an *errors.Error with code FILE_NOT_FOUND or
// INVALID_CONFIG; callers treat both as fatal.
package config

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/depviz/pkg/errors"
)

// Column names of the CSV header, also used as TOML and YAML keys.
const (
	ColGraphvizPath = "graphviz_path"
	ColPackageName  = "package_name"
	ColOutputPath   = "output_path"
)

// Columns lists the required header columns in their canonical order.
var Columns = []string{ColGraphvizPath, ColPackageName, ColOutputPath}

// Config holds the three run settings.
type Config struct {
	GraphvizPath string `toml:"graphviz_path" yaml:"graphviz_path"`
	PackageName  string `toml:"package_name" yaml:"package_name"`
	OutputPath   string `toml:"output_path" yaml:"output_path"`
}

// Fields returns the settings in canonical order: tool path, package name,
// output path.
func (c *Config) Fields() (graphvizPath, packageName, outputPath string) {
	return c.GraphvizPath, c.PackageName, c.OutputPath
}

// Validate checks that the package name is non-empty and free of control
// characters, and that an output path is set. The Graphviz path may be empty.
func (c *Config) Validate() error {
	if err := errors.ValidatePackageName(c.PackageName); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", ColPackageName)
	}
	if c.OutputPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "%s cannot be empty", ColOutputPath)
	}
	return nil
}

// Load reads and validates the configuration file at path. The format is
// chosen by extension; anything that is not .toml, .yaml or .yml is read as CSV.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		cfg, err = ReadTOML(bytes.NewReader(data))
	case ".yaml", ".yml":
		cfg, err = ReadYAML(bytes.NewReader(data))
	default:
		cfg, err = ReadCSV(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadCSV parses the header row and the first data row from r.
// It does not call [Config.Validate].
func ReadCSV(r io.Reader) (*Config, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config is empty: missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config header")
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config header missing column %q", col)
		}
	}

	row, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "config has no data rows")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config row")
	}

	field := func(col string) string {
		if i := index[col]; i < len(row) {
			return row[i]
		}
		return ""
	}
	return &Config{
		GraphvizPath: field(ColGraphvizPath),
		PackageName:  field(ColPackageName),
		OutputPath:   field(ColOutputPath),
	}, nil
}

// ReadTOML decodes a TOML document with top-level graphviz_path,
// package_name and output_path keys.
func ReadTOML(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse TOML config")
	}
	return &cfg, nil
}

// ReadYAML decodes a YAML mapping with graphviz_path, package_name and
// output_path keys.
func ReadYAML(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if err == io.EOF {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config is empty")
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse YAML config")
	}
	return &cfg, nil
}
