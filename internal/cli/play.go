package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

// Dial styles
var (
	dialItemStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	dialSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dialEnteringStyle = lipgloss.NewStyle().Foreground(colorYellow)
	dialGuideStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	dialWidth  = 41
	dialHeight = 19
)

// playCommand creates the interactive play command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		src      ringSource
		entrance time.Duration
	)

	cmd := &cobra.Command{
		Use:   "play [ring.toml]",
		Short: "Push, pop, insert and remove ring items interactively",
		Long: `Open an interactive ring in the terminal.

New items enter with a pending entrance effect that completes after
--entrance. Items removed before their effect completes are cleaned up
immediately.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Layout logging would tear the terminal UI.
			ctx := withLogger(cmd.Context(), log.New(io.Discard))
			_, doc, l, err := src.build(ctx, fileArg(args))
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(NewPlayModel(doc, l, entrance)).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(PlayModel); ok {
				printDetail("Left the ring with %d items", m.Layout.Len())
			}
			return nil
		},
	}

	src.register(cmd, 4)
	cmd.Flags().DurationVar(&entrance, "entrance", 600*time.Millisecond, "entrance effect duration")
	return cmd
}

// =============================================================================
// PlayModel - Interactive ring editing
// =============================================================================

// entranceDoneMsg reports that an item's entrance effect finished.
type entranceDoneMsg struct {
	el *surface.Element
}

// PlayModel is the bubbletea model for the play command.
type PlayModel struct {
	Document *surface.Document
	Layout   *ring.Layout
	Cursor   int
	Entrance time.Duration
	Status   string

	next int
}

// NewPlayModel creates a play model over an existing ring.
func NewPlayModel(doc *surface.Document, l *ring.Layout, entrance time.Duration) PlayModel {
	return PlayModel{
		Document: doc,
		Layout:   l,
		Entrance: entrance,
		next:     l.Len() + 1,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "up", "h", "k":
			m.Cursor = m.wrap(m.Cursor - 1)
		case "right", "down", "l", "j":
			m.Cursor = m.wrap(m.Cursor + 1)
		case "p", "+":
			return m.add(ring.End)
		case "i", "enter":
			return m.add(m.Cursor)
		case "x", "delete":
			return m.remove(m.Cursor), nil
		case "backspace", "-":
			return m.remove(ring.End), nil
		case "s":
			m.Status = fmt.Sprintf("settled %d items", pipeline.Settle(m.Layout))
		}
	case entranceDoneMsg:
		msg.el.Dispatch(surface.EventAnimationEnd)
	}
	return m, nil
}

// add inserts a new labelled item at index and schedules its entrance.
func (m PlayModel) add(index int) (tea.Model, tea.Cmd) {
	label := fmt.Sprintf("%d", m.next)
	m.next++
	el := config.NewElement(m.Document, label, "")
	it := m.Layout.Insert(el, index)
	m.Cursor = m.Layout.Len() - 1
	if index != ring.End {
		m.Cursor = min(max(index, 0), m.Layout.Len()-1)
	}
	m.Status = fmt.Sprintf("added %s at %d°", label, it.Angle())
	return m, tea.Tick(m.Entrance, func(time.Time) tea.Msg {
		return entranceDoneMsg{el: el}
	})
}

func (m PlayModel) remove(index int) PlayModel {
	el := m.Layout.Remove(index)
	if el == nil {
		m.Status = "ring is empty"
		return m
	}
	m.Status = fmt.Sprintf("removed %s", el.Text())
	m.Cursor = m.wrap(m.Cursor)
	return m
}

func (m PlayModel) wrap(i int) int {
	n := m.Layout.Len()
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (m PlayModel) View() string {
	var b strings.Builder
	scene := render.Snapshot(m.Layout)

	b.WriteString(StyleTitle.Render("Ring"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d items · %s · slot %s",
		len(scene.Items), scene.Strategy, formatDegrees(scene.Slot))))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ select  p push  i insert  x remove  - pop  s settle  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.dial(scene))
	b.WriteString("\n")
	if m.Status != "" {
		b.WriteString(StyleDim.Render("  " + m.Status))
		b.WriteString("\n")
	}
	return b.String()
}

// dial draws the ring on a character grid. Cells are twice as tall as they
// are wide, so x is stretched to keep the ring round.
func (m PlayModel) dial(s render.Scene) string {
	grid := make([][]string, dialHeight)
	for r := range grid {
		grid[r] = make([]string, dialWidth)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	cx, cy := float64(dialWidth/2), float64(dialHeight/2)
	ry := float64(dialHeight/2 - 1)
	rx := ry * 2
	for deg := 0; deg < 360; deg += 6 {
		x, y := dialPoint(float64(deg), rx, ry, cx, cy)
		grid[y][x] = dialGuideStyle.Render("·")
	}

	for _, it := range s.Items {
		x, y := dialPoint(float64(it.Angle), rx, ry, cx, cy)
		style := dialItemStyle
		switch {
		case it.Index == m.Cursor:
			style = dialSelectedStyle
		case it.Entering:
			style = dialEnteringStyle
		}
		grid[y][x] = style.Render(dialGlyph(it))
	}

	lines := make([]string, dialHeight)
	for r, row := range grid {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func dialPoint(deg, rx, ry, cx, cy float64) (int, int) {
	rad := deg * math.Pi / 180
	x := int(math.Round(cx + rx*math.Cos(rad)))
	y := int(math.Round(cy + ry*math.Sin(rad)))
	return min(max(x, 0), dialWidth-1), min(max(y, 0), dialHeight-1)
}

func dialGlyph(it render.Item) string {
	if it.Label == "" {
		return "●"
	}
	r := []rune(it.Label)
	return string(r[len(r)-1])
}
