package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/render"
)

// anglesCommand creates the angles command.
func (c *CLI) anglesCommand() *cobra.Command {
	var src ringSource

	cmd := &cobra.Command{
		Use:   "angles [ring.toml]",
		Short: "Print the slot angle assigned to each item",
		Long: `Print the slot angle, position and entrance state of each ring item.

With a description file the file's ring is used. Without one, --count items
are laid out using the --seed, --gap, --radius and --align-first flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, l, err := src.build(cmd.Context(), fileArg(args))
			if err != nil {
				return err
			}
			scene := render.Snapshot(l)

			printKeyValue("Strategy", scene.Strategy)
			printKeyValue("Radius", scene.RadiusCSS)
			printKeyValue("Seed", formatDegrees(scene.Seed))
			printKeyValue("Gap", formatDegrees(scene.Gap))
			printKeyValue("Slot", formatDegrees(scene.Slot))
			fmt.Println(angleTable(scene))
			return nil
		},
	}

	src.register(cmd, 6)
	return cmd
}

// angleTable renders one row per scene item.
func angleTable(s render.Scene) string {
	rows := make([][]string, 0, len(s.Items))
	for _, it := range s.Items {
		state := ""
		if it.Entering {
			state = "entering"
		}
		rows = append(rows, []string{
			strconv.Itoa(it.Index),
			it.Label,
			strconv.Itoa(it.Angle) + "°",
			strconv.FormatFloat(it.X, 'f', 2, 64),
			strconv.FormatFloat(it.Y, 'f', 2, 64),
			state,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Label", "Angle", "X", "Y", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if col == 2 {
				return cellStyle.Foreground(colorCyan)
			}
			if col == 5 {
				return cellStyle.Foreground(colorYellow)
			}
			return cellStyle
		}).
		Render()
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°"
}
