package commands

// Short messages (one-liners)
const (
	MsgRootShort = "A declarative dotfile package resolver"
	MsgRootLong  = `mdot reads declarative TOML tables describing dotfile packages, their
dependencies, file links, and OS package metadata, and produces a
deterministic, dependency-ordered install/link plan.

mdot never touches the filesystem or a package manager itself; the plan is
the product, ready for whatever applies it.`

	MsgPlanShort = "Resolve entries into an ordered plan"
	MsgPlanLong  = `Plan reads one or more configuration files, merges their package tables
(later files override earlier entries with the same name), resolves the
dependency graph, and writes the ordered plan to standard output, one entry
name per line.

When no files are given, only the user configuration file is read.`

	MsgListShort = "List configured entries"
	MsgListLong  = `List displays all entries found in the merged configuration, with their
dependency and link counts. Use --long for per-entry detail.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrict  = "Fail on dependencies that name no known entry"
	MsgFlagLong    = "Show per-entry detail"

	// Status messages
	MsgNoEntries = "No entries configured."
)

// Examples
const (
	MsgPlanExample = `  # Resolve the user configuration
  mdot plan

  # Resolve specific files, later ones overriding earlier entries
  mdot plan base.toml laptop.toml

  # Fail on dangling dependency names
  mdot plan --strict packages.toml`

	MsgListExample = `  # List entries from the user configuration
  mdot list

  # Detailed listing of a specific file
  mdot list --long packages.toml`
)
