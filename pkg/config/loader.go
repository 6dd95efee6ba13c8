package config

import (
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/NexushasTaken/mdot/pkg/errors"
	"github.com/NexushasTaken/mdot/pkg/logging"
	"github.com/NexushasTaken/mdot/pkg/paths"
	"github.com/NexushasTaken/mdot/pkg/types"
)

var log = logging.GetLogger("config")

// Config is the fully merged configuration: resolver settings plus the
// merged entry set from all input files.
type Config struct {
	// Strict enables failing on unresolved dependency names
	Strict bool

	// Entries is the merged entry set, in declaration order
	Entries *types.EntrySet

	// Sources lists the files that contributed, in load order
	Sources []string
}

// Load reads and merges configuration in layers: built-in defaults, then
// the user config file (if present), then the given files in order. Later
// files override earlier entries with the same name; settings merge key
// by key via koanf.
func Load(p *paths.Paths, files []string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	inputs := make([]string, 0, len(files)+1)
	if userConfig := p.ConfigFilePath(); fileExists(userConfig) {
		inputs = append(inputs, userConfig)
	}
	inputs = append(inputs, files...)

	set := &types.EntrySet{}
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}

		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid TOML in %s", path).
				WithDetail("path", path)
		}

		entries, err := ParseEntries(data)
		if err != nil {
			if mdotErr, ok := err.(*errors.MdotError); ok {
				return nil, mdotErr.WithDetail("path", path)
			}
			return nil, err
		}

		for _, entry := range entries {
			if set.Has(entry.Name) {
				log.Debug().
					Str("entry", entry.Name).
					Str("path", path).
					Msg("Later definition overrides earlier entry")
			}
			if err := set.Put(entry); err != nil {
				return nil, err
			}
		}

		log.Debug().Str("path", path).Int("entries", len(entries)).Msg("Config file loaded")
	}

	cfg := &Config{
		Strict:  k.Bool("resolver.strict"),
		Entries: set,
		Sources: inputs,
	}

	log.Debug().
		Int("entries", set.Len()).
		Bool("strict", cfg.Strict).
		Strs("sources", inputs).
		Msg("Configuration loaded")

	return cfg, nil
}

// fileExists is a helper to check if a file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
