package main

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/linkaudit"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

// loadEnvFile loads variables from path into the environment without
// overriding ones already set. A missing file is ignored.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return linkaudit.Errorf(linkaudit.EINVALID, "invalid env file %s: %v", path, err)
	}
	return nil
}

// yamlConfig is a kong.ConfigurationLoader for YAML files whose keys are
// flag names, written with dashes or underscores:
//
//	timeout: 15s
//	user_agent: my-agent/2.0
//	format: markdown
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, linkaudit.Errorf(linkaudit.EINVALID, "invalid config file: %v", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		if v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}
