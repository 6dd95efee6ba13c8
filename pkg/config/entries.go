package config

import (
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"

	"github.com/NexushasTaken/mdot/pkg/errors"
	"github.com/NexushasTaken/mdot/pkg/types"
)

// document is the raw shape of a config file
type document struct {
	Resolver resolverSection        `toml:"resolver"`
	Packages map[string]interface{} `toml:"packages"`
}

type resolverSection struct {
	Strict *bool `toml:"strict"`
}

// ParseEntries decodes the [packages] table of a single config file into
// entries, preserving declaration order.
func ParseEntries(data []byte) ([]*types.Entry, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid TOML")
	}

	names, err := packagesKeyOrder(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid TOML")
	}
	// Defensive: quoting differences between the decoder and the order scan
	// could leave a decoded name unlisted. Append any stragglers sorted.
	listed := make(map[string]bool, len(names))
	for _, n := range names {
		listed[n] = true
	}
	var extra []string
	for n := range doc.Packages {
		if !listed[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	entries := make([]*types.Entry, 0, len(names))
	for _, name := range names {
		raw, ok := doc.Packages[name]
		if !ok {
			continue
		}
		entry, err := entryFromValue(name, raw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// packagesKeyOrder walks the TOML document in source order and returns the
// names declared under the top-level packages table, first occurrence wins.
// The reflection-based decoder does not preserve table key order, so the
// low-level parser is used for ordering only.
func packagesKeyOrder(data []byte) ([]string, error) {
	p := &unstable.Parser{}
	p.Reset(data)

	var order []string
	seen := make(map[string]bool)
	record := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	// inRoot is true while inside the bare [packages] table, where every
	// key-value names an entry. Inside [packages.<name>] subtables the
	// key-values are entry fields and must not be recorded. topLevel is
	// true before the first table header, where a dotted key like
	// packages.foo = "" can also declare an entry.
	inRoot := false
	topLevel := true
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			keys := keyParts(e)
			topLevel = false
			inRoot = len(keys) == 1 && keys[0] == "packages"
			if len(keys) >= 2 && keys[0] == "packages" {
				record(keys[1])
			}
		case unstable.KeyValue:
			keys := keyParts(e)
			if inRoot && len(keys) >= 1 {
				record(keys[0])
			} else if topLevel && len(keys) >= 2 && keys[0] == "packages" {
				record(keys[1])
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return order, nil
}

func keyParts(n *unstable.Node) []string {
	var parts []string
	it := n.Key()
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// entryFromValue builds an Entry from a decoded packages table value.
// A bare string is shorthand for an entry with no dependencies; a non-empty
// string doubles as the OS package name.
func entryFromValue(name string, v interface{}) (*types.Entry, error) {
	switch raw := v.(type) {
	case string:
		entry := types.NewEntry(name)
		if raw != "" {
			entry.PackageName = types.PackageName{Name: raw}
		}
		return entry, nil
	case map[string]interface{}:
		return entryFromTable(name, raw)
	default:
		return nil, errors.Newf(errors.ErrMalformedEntry,
			"entry %q must be a string or a table, got %T", name, v).
			WithDetail("name", name)
	}
}

func entryFromTable(name string, tbl map[string]interface{}) (*types.Entry, error) {
	entry := types.NewEntry(name)

	// Deterministic field iteration; decoded map order is random.
	fields := make([]string, 0, len(tbl))
	for k := range tbl {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	for _, field := range fields {
		value := tbl[field]
		var err error
		switch field {
		case "depends":
			entry.Depends, err = stringList(name, field, value)
		case "links":
			entry.Links, err = parseLinks(name, value)
		case "exclude", "excludes":
			entry.Excludes, err = stringList(name, field, value)
		case "templates":
			entry.Templates, err = stringList(name, field, value)
		case "pkg", "package_name":
			entry.PackageName, err = parsePackageName(name, field, value)
		case "enabled":
			enabled, ok := value.(bool)
			if !ok {
				err = malformed(name, field, value)
				break
			}
			entry.Enabled = enabled
		case "name":
			// The table key already names the entry
			log.Warn().Str("entry", name).Msg("Field 'name' is ignored; the table key names the entry")
		default:
			if entry.Metadata == nil {
				entry.Metadata = make(map[string]interface{})
			}
			entry.Metadata[field] = value
			log.Debug().Str("entry", name).Str("field", field).Msg("Unrecognized field carried as metadata")
		}
		if err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// stringList accepts a single string or an array of strings
func stringList(entry, field string, v interface{}) ([]string, error) {
	switch raw := v.(type) {
	case string:
		return []string{raw}, nil
	case []interface{}:
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			s, ok := item.(string)
			if !ok {
				return nil, malformed(entry, field, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, malformed(entry, field, v)
	}
}

// parseLinks accepts either the short map form ("src" = "dst" or
// "src" = ["dst1", "dst2"]) or an array of tables with
// source/target/overwrite/backup fields.
func parseLinks(entry string, v interface{}) ([]types.Link, error) {
	switch raw := v.(type) {
	case map[string]interface{}:
		sources := make([]string, 0, len(raw))
		for src := range raw {
			sources = append(sources, src)
		}
		sort.Strings(sources)

		var links []types.Link
		for _, src := range sources {
			targets, err := stringList(entry, "links", raw[src])
			if err != nil {
				return nil, err
			}
			for _, target := range targets {
				links = append(links, types.Link{Source: src, Target: target})
			}
		}
		return links, nil
	case []interface{}:
		var links []types.Link
		for _, item := range raw {
			tbl, ok := item.(map[string]interface{})
			if !ok {
				return nil, malformed(entry, "links", item)
			}
			link, err := linkFromTable(entry, tbl)
			if err != nil {
				return nil, err
			}
			links = append(links, link...)
		}
		return links, nil
	default:
		return nil, malformed(entry, "links", v)
	}
}

func linkFromTable(entry string, tbl map[string]interface{}) ([]types.Link, error) {
	src, ok := tbl["source"].(string)
	if !ok {
		return nil, errors.Newf(errors.ErrMalformedEntry,
			"entry %q link is missing a string 'source'", entry).
			WithDetail("name", entry).WithDetail("field", "links")
	}

	rawTargets, ok := tbl["targets"]
	if !ok {
		rawTargets = tbl["target"]
	}
	if rawTargets == nil {
		return nil, errors.Newf(errors.ErrMalformedEntry,
			"entry %q link %q is missing 'target'", entry, src).
			WithDetail("name", entry).WithDetail("field", "links")
	}
	targets, err := stringList(entry, "links", rawTargets)
	if err != nil {
		return nil, err
	}

	overwrite := false
	if v, present := tbl["overwrite"]; present {
		if overwrite, ok = v.(bool); !ok {
			return nil, malformed(entry, "links.overwrite", v)
		}
	}
	backup := false
	if v, present := tbl["backup"]; present {
		if backup, ok = v.(bool); !ok {
			return nil, malformed(entry, "links.backup", v)
		}
	}

	links := make([]types.Link, 0, len(targets))
	for _, target := range targets {
		links = append(links, types.Link{
			Source:    src,
			Target:    target,
			Overwrite: overwrite,
			Backup:    backup,
		})
	}
	return links, nil
}

// parsePackageName accepts a string, a per-OS table of strings, or a bool
// (true meaning the OS package shares the entry's name).
func parsePackageName(entry, field string, v interface{}) (types.PackageName, error) {
	switch raw := v.(type) {
	case string:
		return types.PackageName{Name: raw}, nil
	case bool:
		if raw {
			return types.PackageName{Name: entry}, nil
		}
		return types.PackageName{}, nil
	case map[string]interface{}:
		byOS := make(map[string]string, len(raw))
		for osName, item := range raw {
			s, ok := item.(string)
			if !ok {
				return types.PackageName{}, malformed(entry, field, item)
			}
			byOS[osName] = s
		}
		return types.PackageName{ByOS: byOS}, nil
	default:
		return types.PackageName{}, malformed(entry, field, v)
	}
}

func malformed(entry, field string, v interface{}) *errors.MdotError {
	return errors.Newf(errors.ErrMalformedEntry,
		"entry %q field %q has invalid type %T", entry, field, v).
		WithDetail("name", entry).
		WithDetail("field", field)
}
