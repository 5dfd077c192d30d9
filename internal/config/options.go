// Package config holds the process-wide runtime options.
//
// Options are read from an optional YAML file and then from the environment,
// with the environment taking precedence. Components that depend on an option
// read Current at the point where they need it; some (like the annotation
// name table) read it only once for the lifetime of the process.
package config

import (
	"bytes"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	EnvHackArrDVArrs = "ANNOT_HACK_ARR_DV_ARRS"
	EnvLogLevel      = "ANNOT_LOG_LEVEL"
)

type Options struct {
	// HackArrDVArrs makes the legacy varray/darray hints mean vec/dict
	HackArrDVArrs bool `yaml:"hack_arr_dv_arrs"`

	// LogLevel is one of debug, info, warn, error (or a slog level offset such as warn+2).
	// Empty means the logger default.
	LogLevel string `yaml:"log_level,omitempty"`
}

func Default() Options {
	return Options{}
}

var current atomic.Pointer[Options]

// Current returns the options last passed to Set, or Default.
func Current() Options {
	if o := current.Load(); o != nil {
		return *o
	}
	return Default()
}

// Set replaces the process-wide options.
func Set(o Options) {
	current.Store(&o)
}

// Load reads options from the YAML file at path and applies environment overrides.
// An empty path skips the file.
func Load(path string) (Options, error) {
	opts := Default()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return opts, errors.Wrapf(err, "could not read config file %s", path)
		}
		opts, err = Parse(content)
		if err != nil {
			return opts, errors.Wrapf(err, "invalid config file %s", path)
		}
	}
	return ApplyEnv(opts, os.LookupEnv)
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(content []byte) (Options, error) {
	opts := Default()
	if len(bytes.TrimSpace(content)) == 0 {
		return opts, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		return Default(), errors.Wrap(err, "could not decode options")
	}
	if _, err := opts.SlogLevel(); err != nil {
		return Default(), err
	}
	return opts, nil
}

// ApplyEnv overrides fields of base with the environment variables lookup finds.
func ApplyEnv(base Options, lookup func(string) (string, bool)) (Options, error) {
	opts := base
	if raw, ok := lookup(EnvHackArrDVArrs); ok && strings.TrimSpace(raw) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return base, errors.Wrapf(err, "invalid %s", EnvHackArrDVArrs)
		}
		opts.HackArrDVArrs = b
	}
	if raw, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(raw) != "" {
		opts.LogLevel = strings.TrimSpace(raw)
		if _, err := opts.SlogLevel(); err != nil {
			return base, err
		}
	}
	return opts, nil
}

// SlogLevel parses LogLevel. An empty LogLevel is slog.LevelInfo.
func (o Options) SlogLevel() (slog.Level, error) {
	if o.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(o.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level %q", o.LogLevel)
	}
	return l, nil
}

func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("hack_arr_dv_arrs", o.HackArrDVArrs),
		slog.String("log_level", o.LogLevel),
	)
}
