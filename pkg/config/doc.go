// Package config loads and merges mdot configuration.
//
// Configuration is layered: built-in defaults, then the user config file
// from the XDG config directory, then any files passed explicitly, in
// order. Resolver settings merge key by key; package entries are replaced
// wholesale when a later file redefines a name.
//
// The [packages] table maps entry names to either a bare string (shorthand
// for an entry with no dependencies; a non-empty value is the OS package
// name) or a table with depends, links, exclude(s), templates, pkg, and
// enabled fields. Unrecognized fields ride along as opaque metadata.
package config
