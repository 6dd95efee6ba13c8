// Package types defines the core data model for mdot: entries (named
// dotfile packages with dependencies, links, and passthrough metadata),
// ordered entry sets, and resolved plans.
package types
