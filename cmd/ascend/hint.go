package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ascend/internal/config"
	"github.com/vovakirdan/ascend/internal/games/ascend/advisor"
	"github.com/vovakirdan/ascend/internal/games/ascend/layouts"
)

var flagTop int

var hintCmd = &cobra.Command{
	Use:   "hint <layout>",
	Short: "Rank every legal move on a layout",
	Long: `Run the move advisor on a layout and print every candidate slide,
best first. The layout is a built-in ID or a path to a YAML file.

Examples:
  ascend hint intro
  ascend hint ./boards/mine.yaml --top 5`,
	Args: cobra.ExactArgs(1),
	RunE: runHint,
}

func init() {
	hintCmd.Flags().IntVar(&flagTop, "top", 10, "Number of candidates to show (0 = all)")
}

func runHint(_ *cobra.Command, args []string) error {
	cfg, err := config.LoadAscend(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultAscendConfig()
	}

	layout, err := openLayout(args[0])
	if err != nil {
		return err
	}

	return renderHint(os.Stdout, layout, cfg, flagTop)
}

// openLayout resolves a layout reference: YAML paths are read from disk,
// anything else is a built-in ID.
func openLayout(ref string) (layouts.Layout, error) {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml":
		return layouts.Open(ref)
	default:
		return layouts.Embedded().LoadByID(ref)
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	bestStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderHint scores every candidate on layout and writes the ranking to w.
func renderHint(w io.Writer, layout layouts.Layout, cfg config.AscendConfig, top int) error {
	adv := advisor.New(layout.Board(cfg.Board.BossColors...),
		advisor.WithWeights(advisor.Weights{
			ChainFactor: cfg.Advisor.Weights.ChainFactor,
			DepthMax:    cfg.Advisor.Weights.DepthMax,
			BossBonus:   cfg.Advisor.Weights.BossBonus,
		}),
		advisor.WithWorkers(cfg.Advisor.Workers),
	)

	pieces := layout.Snapshot()
	best, err := adv.FindBestMove(pieces)
	if err != nil {
		return fmt.Errorf("hint: %w", err)
	}
	candidates, err := adv.Candidates(pieces)
	if err != nil {
		return fmt.Errorf("hint: %w", err)
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", layout.Name, layout.ID)))
	if best == nil {
		fmt.Fprintln(w, mutedStyle.Render("No legal move."))
		return nil
	}
	fmt.Fprintln(w, bestStyle.Render("Best: "+best.String()))
	fmt.Fprintln(w)

	ranked := rankCandidates(candidates)
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	fmt.Fprintln(w, candidateTable(ranked).View())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d of %d candidates", len(ranked), len(candidates))))
	return nil
}

// rankCandidates orders candidates by score, best first. Equal scores keep
// enumeration order, so the first row matches the advisor's pick.
func rankCandidates(cs []advisor.Candidate) []advisor.Candidate {
	ranked := append([]advisor.Candidate(nil), cs...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Move.Score > ranked[j].Move.Score
	})
	return ranked
}

func candidateTable(cs []advisor.Candidate) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Piece", Width: 8},
		{Title: "Row", Width: 4},
		{Title: "Move", Width: 10},
		{Title: "Rows", Width: 5},
		{Title: "Chain", Width: 5},
		{Title: "Boss", Width: 5},
		{Title: "Score", Width: 7},
	}

	rows := make([]table.Row, 0, len(cs))
	for i, c := range cs {
		m := c.Move
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			shortPiece(m.PieceID),
			strconv.Itoa(m.Row),
			fmt.Sprintf("%s %d", m.Direction(), m.Distance()),
			strconv.Itoa(c.Outcome.RowsCleared),
			strconv.Itoa(c.Outcome.ChainReactions),
			strconv.Itoa(c.Outcome.BossRowsCleared),
			strconv.FormatFloat(m.Score, 'f', 2, 64),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle()

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
}

func shortPiece(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
