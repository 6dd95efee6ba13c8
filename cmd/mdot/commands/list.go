package commands

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NexushasTaken/mdot/pkg/config"
	"github.com/NexushasTaken/mdot/pkg/output/styles"
	"github.com/NexushasTaken/mdot/pkg/paths"
	"github.com/NexushasTaken/mdot/pkg/types"
)

func newListCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:     "list [files...]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.New(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Entries.Len() == 0 {
				fmt.Fprintln(out, MsgNoEntries)
				return nil
			}

			styled := false
			if f, ok := out.(*os.File); ok {
				styled = styles.Enabled(f)
			}
			render := func(name, text string) string {
				if !styled {
					return text
				}
				return styles.Render(name, text)
			}

			fmt.Fprintln(out, render("Header", fmt.Sprintf("Entries (%d):", cfg.Entries.Len())))
			for _, entry := range cfg.Entries.Entries() {
				if long {
					printEntryLong(out, entry, render)
				} else {
					printEntryShort(out, entry, render)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, MsgFlagLong)

	return cmd
}

func printEntryShort(out io.Writer, entry *types.Entry, render func(string, string) string) {
	nameStyle := "EntryName"
	if !entry.Enabled {
		nameStyle = "Disabled"
	}

	var details []string
	if len(entry.Depends) > 0 {
		details = append(details, fmt.Sprintf("deps: %s", strings.Join(entry.Depends, ", ")))
	}
	if len(entry.Links) > 0 {
		details = append(details, fmt.Sprintf("links: %d", len(entry.Links)))
	}
	if !entry.PackageName.IsZero() {
		details = append(details, fmt.Sprintf("pkg: %s", formatPackageName(entry.PackageName)))
	}
	if !entry.Enabled {
		details = append(details, "disabled")
	}

	line := "  " + render(nameStyle, entry.Name)
	if len(details) > 0 {
		line += "  " + render("Muted", strings.Join(details, "  "))
	}
	fmt.Fprintln(out, line)
}

func printEntryLong(out io.Writer, entry *types.Entry, render func(string, string) string) {
	nameStyle := "EntryName"
	if !entry.Enabled {
		nameStyle = "Disabled"
	}
	fmt.Fprintln(out, "  "+render(nameStyle, entry.Name))

	if len(entry.Depends) > 0 {
		fmt.Fprintf(out, "    depends:   %s\n", render("Dep", strings.Join(entry.Depends, ", ")))
	}
	for _, link := range entry.Links {
		var flags []string
		if link.Overwrite {
			flags = append(flags, "overwrite")
		}
		if link.Backup {
			flags = append(flags, "backup")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " (" + strings.Join(flags, ", ") + ")"
		}
		fmt.Fprintf(out, "    link:      %s -> %s%s\n", link.Source, link.Target, suffix)
	}
	if len(entry.Excludes) > 0 {
		fmt.Fprintf(out, "    excludes:  %s\n", strings.Join(entry.Excludes, ", "))
	}
	if len(entry.Templates) > 0 {
		fmt.Fprintf(out, "    templates: %s\n", strings.Join(entry.Templates, ", "))
	}
	if !entry.PackageName.IsZero() {
		fmt.Fprintf(out, "    package:   %s\n", render("Package", formatPackageName(entry.PackageName)))
	}
	if !entry.Enabled {
		fmt.Fprintf(out, "    %s\n", render("Disabled", "disabled"))
	}
}

// formatPackageName renders a package name for display, per-OS entries sorted
func formatPackageName(p types.PackageName) string {
	if len(p.ByOS) == 0 {
		return p.Name
	}
	oses := make([]string, 0, len(p.ByOS))
	for osName := range p.ByOS {
		oses = append(oses, osName)
	}
	sort.Strings(oses)

	parts := make([]string, 0, len(oses))
	for _, osName := range oses {
		parts = append(parts, fmt.Sprintf("%s=%s", osName, p.ByOS[osName]))
	}
	return strings.Join(parts, ", ")
}
