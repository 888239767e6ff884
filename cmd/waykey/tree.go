package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/waykey/waykey/internal/menu"
)

var treeCmd = &cobra.Command{
	Use:   "tree [config]",
	Short: "Print the configured menu hierarchy",
	Long: `Print the menu hierarchy of a configuration without opening a popup.

Useful for checking chords, descriptions, and nesting after editing a
configuration file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	submenuStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	cmdStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	var s strings.Builder
	printPage(&s, cfg.MenuPage(), 0, keyStyle, submenuStyle, cmdStyle)
	fmt.Fprint(cmd.OutOrStdout(), s.String())
	return nil
}

func printPage(s *strings.Builder, page menu.Page, depth int, keyStyle, submenuStyle, cmdStyle lipgloss.Style) {
	indent := strings.Repeat("  ", depth)
	for _, entry := range page {
		s.WriteString(indent)
		s.WriteString(keyStyle.Render(entry.Chord.String()))
		s.WriteString("  ")
		if entry.IsSubmenu() {
			s.WriteString(submenuStyle.Render(entry.Label()))
			s.WriteString("\n")
			printPage(s, entry.Submenu, depth+1, keyStyle, submenuStyle, cmdStyle)
			continue
		}
		s.WriteString(entry.Desc)
		if entry.Cmd != "" {
			s.WriteString("  ")
			note := entry.Cmd
			if entry.KeepOpen {
				note += " (keep open)"
			}
			s.WriteString(cmdStyle.Render(note))
		}
		s.WriteString("\n")
	}
}
