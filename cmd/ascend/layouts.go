package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascend/internal/games/ascend/layouts"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts [dir]",
	Short: "List starting layouts",
	Long: `List the built-in layouts, or every valid YAML layout under dir.
Invalid files are skipped and logged.

Examples:
  ascend layouts
  ascend layouts ./boards`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLayouts,
}

func runLayouts(_ *cobra.Command, args []string) error {
	loader := layouts.Embedded()
	if len(args) > 0 {
		loader = layouts.NewLoader(args[0])
	}

	all, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("load layouts: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No layouts found.")
		return nil
	}

	renderLayouts(os.Stdout, all)
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderLayouts writes a table of layouts to w.
func renderLayouts(w io.Writer, all []layouts.Layout) {
	rows := make([][]string, 0, len(all))
	for _, l := range all {
		rows = append(rows, []string{
			l.ID,
			l.Name,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols),
			strconv.Itoa(len(l.Pieces)),
			l.Metadata["difficulty"],
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "NAME", "SIZE", "PIECES", "DIFFICULTY").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, t.Render())
}
