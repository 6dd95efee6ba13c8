package types

// Link declares a single file association between a source path inside an
// entry and a destination path on the system. The resolver passes links
// through untouched; whatever consumes the plan decides how to apply them.
type Link struct {
	// Source is the path relative to the entry's directory
	Source string

	// Target is the destination path (may contain ~ or env vars, unexpanded)
	Target string

	// Overwrite allows replacing an existing file at the target
	Overwrite bool

	// Backup preserves an existing file at the target before replacing it
	Backup bool
}

// PackageName is the OS package identifier attached to an entry. It is
// either a single name used everywhere or a per-manager mapping
// (e.g. arch = "hyprland"). The resolver never interprets it.
type PackageName struct {
	Name string
	ByOS map[string]string
}

// IsZero reports whether no package name was declared
func (p PackageName) IsZero() bool {
	return p.Name == "" && len(p.ByOS) == 0
}

// For returns the package name for the given OS/manager key,
// falling back to the single name when no per-OS entry exists.
func (p PackageName) For(osName string) string {
	if name, ok := p.ByOS[osName]; ok {
		return name
	}
	return p.Name
}

// Entry is a named configuration unit: a dotfile package with its
// dependencies, file links, and passthrough metadata.
type Entry struct {
	// Name is the unique key for this entry
	Name string

	// Depends lists the names of entries that must come earlier in the plan,
	// in declared order
	Depends []string

	// Links are the file associations declared for this entry
	Links []Link

	// Excludes are glob patterns for files the entry should not manage
	Excludes []string

	// Templates are paths rendered rather than linked verbatim
	Templates []string

	// PackageName is the opaque OS package identifier, if any
	PackageName PackageName

	// Enabled gates the entry; disabled entries are skipped during resolution
	Enabled bool

	// Metadata carries unrecognized fields through unmodified
	Metadata map[string]interface{}
}

// NewEntry creates an entry with the given name and no dependencies.
// Entries are enabled by default.
func NewEntry(name string) *Entry {
	return &Entry{
		Name:    name,
		Enabled: true,
	}
}
