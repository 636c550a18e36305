package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "mixvenn.dev/pkg/mixvenn/internal/model"
)

// Lines reserved for the pager title and footer.
const pagerChromeLines = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for long listings. Short output is
// printed the same way SimpleUI prints it.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), output: cmd.OutOrStdout()}
}

// DisplayPairs shows the pair table in a scrollable pager when it does not
// fit on the terminal.
func (t *TUI) DisplayPairs(ctx context.Context, rows []m.PairRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := renderPairTable(rows)
	title := fmt.Sprintf("Revision pairs (%d)", len(rows))

	width, height, ok := t.terminalSize()
	if !ok || lipgloss.Height(content)+pagerChromeLines <= height {
		return t.SimpleUI.DisplayPairs(ctx, rows)
	}

	model := newPagerModel(title, content, width, height)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || height <= 0 {
		return 0, 0, false
	}

	return width, height, true
}

// pagerModel is the Bubble Tea model for scrolling through long output.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChromeLines, 1))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		viewport: vp,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChromeLines, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100)))

	return b.String()
}
