package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/render/gridview"
)

const maxSearchMatches = 5

// Play styles
var (
	playStatusStyle = lipgloss.NewStyle().Foreground(colorWhite)
	playErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	playDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	playPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// keyDirectives maps keys to directives. The bracket keys stand in for the
// shoulder buttons of a controller.
var keyDirectives = map[string]nav.Directive{
	"up":    nav.Move(nav.Up),
	"k":     nav.Move(nav.Up),
	"down":  nav.Move(nav.Down),
	"j":     nav.Move(nav.Down),
	"left":  nav.Move(nav.Left),
	"h":     nav.Move(nav.Left),
	"right": nav.Move(nav.Right),
	"l":     nav.Move(nav.Right),
	"[":     nav.Press("L1"),
	"]":     nav.Press("R1"),
}

// playCommand creates the play command for interactive navigation.
func (c *CLI) playCommand() *cobra.Command {
	var cellWidth int

	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Navigate a layout interactively",
		Long: `Navigate a layout interactively with the keyboard.

  arrows, hjkl  move focus
  [ ]           press L1 / R1
  /             search focus identifiers, enter jumps to the best match
  q             quit`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayoutFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd.Context(), args[0], cellWidth)
		},
	}

	cmd.Flags().IntVar(&cellWidth, "cell-width", 0, "grid cell width in columns (default 8)")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, path string, cellWidth int) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return apperr.New(apperr.ErrCodeUnsupported, "play needs an interactive terminal")
	}
	n, err := c.loadNavigator(path)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(newPlayModel(n, cellWidth), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	if m, ok := final.(playModel); ok {
		printInfo("Finished on %s after %d moves", describeFocus(m.nav, m.nav.FocusID()), m.moves)
	}
	return nil
}

// =============================================================================
// playModel - Interactive navigation
// =============================================================================

type playModel struct {
	nav       *nav.Navigator
	cellWidth int
	moves     int
	status    string
	err       error

	searching bool
	query     string
	matches   []focusEntry
}

func newPlayModel(n *nav.Navigator, cellWidth int) playModel {
	return playModel{nav: n, cellWidth: cellWidth, status: "start " + n.FocusID()}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.searching {
		return m.updateSearch(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "/":
		m.searching, m.query, m.matches = true, "", nil
		return m, nil
	}
	if d, ok := keyDirectives[key.String()]; ok {
		m.apply(d)
	}
	return m, nil
}

func (m *playModel) apply(d nav.Directive) {
	res, err := m.nav.Navigate(d)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.moves++
	if res.Kind == nav.NoNextItem {
		m.status = fmt.Sprintf("%s: %s", d, res.Kind)
		return
	}
	m.status = fmt.Sprintf("%s: %s %s", d, res.Kind, res.FocusID)
}

func (m playModel) updateSearch(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.searching = false
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		if len(m.matches) == 0 {
			return m, nil
		}
		target := m.matches[0].focusID
		if _, err := m.nav.Jump(target); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = "jump: " + target
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.query); len(r) > 0 {
			m.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.query += " "
	case tea.KeyRunes:
		m.query += string(key.Runes)
	default:
		return m, nil
	}

	var entries []focusEntry
	m.nav.View(func(t *nav.Tree, _ nav.NodeID) { entries = focusEntries(t) })
	m.matches = searchFocus(entries, m.query)
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder

	m.nav.View(func(t *nav.Tree, current nav.NodeID) {
		b.WriteString(gridview.Render(t, current, gridview.Options{CellWidth: m.cellWidth}))
	})
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(playErrorStyle.Render(iconError + " " + apperr.UserMessage(m.err)))
	} else {
		b.WriteString(playStatusStyle.Render(m.status))
	}
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(playPromptStyle.Render("/") + m.query + "\n")
		for i, e := range m.matches {
			if i == maxSearchMatches {
				break
			}
			line := "  " + e.focusID
			if e.path != "" {
				line += " " + playDimStyle.Render(e.path)
			}
			if i == 0 {
				line = listSelected(line)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(playDimStyle.Render("enter jump  esc cancel"))
		return b.String()
	}

	b.WriteString(playDimStyle.Render("←↓↑→/hjkl move  [ ] L1/R1  / search  q quit"))
	return b.String()
}

func listSelected(line string) string {
	return StyleHighlight.Bold(true).Render("▸" + strings.TrimPrefix(line, " "))
}
