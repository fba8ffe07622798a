package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	fsprovider "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseFile         = "base.yaml"
)

// ErrInvalidProfile is returned for an empty profile or one that would
// escape the config directory.
var ErrInvalidProfile = errors.New("invalid config profile")

// Option configures Load.
type Option func(*loader)

// loader resolves a YAML file name to a koanf provider.
type loader struct {
	open func(name string) (koanf.Provider, string)
}

// WithConfigDir reads YAML files from dir instead of ./configs.
func WithConfigDir(dir string) Option {
	return func(l *loader) {
		l.open = func(name string) (koanf.Provider, string) {
			p := filepath.Join(dir, name)
			return file.Provider(p), p
		}
	}
}

// WithConfigFS reads YAML files from the root of fsys, such as an embedded
// or in-memory tree.
func WithConfigFS(fsys fs.FS) Option {
	return func(l *loader) {
		l.open = func(name string) (koanf.Provider, string) {
			return fsprovider.Provider(fsys, name), path.Clean(name)
		}
	}
}

// Load builds the configuration for profile from four layers, each
// overriding the last: built-in defaults, base.yaml, {profile}.yaml, and
// APP_* environment variables.
//
// Env names are matched against the keys already loaded, so underscores
// inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT        -> server.read_timeout
//	APP_USERS_API_BASE_URL         -> users_api.base_url
//	APP_FORMS_MAX_BATCH_FIELDS     -> forms.max_batch_fields
//	APP_CORS_ALLOWED_ORIGINS=a,b   -> cors.allowed_origins [a b]
func Load(profile string, opts ...Option) (*Config, error) {
	if err := checkProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{}
	WithConfigDir(defaultConfigDir)(l)
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")
	defs := defaults()
	for key, value := range defs {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{baseFile, profile + ".yaml"} {
		provider, where := l.open(name)
		if err := k.Load(provider, yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", where, err)
		}
	}

	if err := k.Load(envProvider(k.Keys(), defs), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", profile, err)
	}
	return &cfg, nil
}

// envProvider maps APP_* variables onto known keys. Keys whose default is a
// list take a comma-separated value. Unknown names fall back to treating
// every underscore as a separator.
func envProvider(keys []string, defs map[string]any) *env.Env {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			key, ok := known[name]
			if !ok {
				return strings.ReplaceAll(name, "_", "."), value
			}
			if _, isList := defs[key].([]string); isList {
				return key, splitList(value)
			}
			return key, value
		},
	})
}

func checkProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return fmt.Errorf("%w: empty", ErrInvalidProfile)
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("%w: %q leaves the config directory", ErrInvalidProfile, profile)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for p := range strings.SplitSeq(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
