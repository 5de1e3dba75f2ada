package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizchat/internal/quiz"
	"quizchat/internal/screens/chat"
	"quizchat/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	chat     *chat.ChatScreen
	strategy string
	width    int
	height   int
}

// newAppModel creates a new AppModel over a fresh session state.
func newAppModel(state *quiz.State, strategy string) AppModel {
	return AppModel{
		chat:     chat.New(state),
		strategy: strategy,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.chat.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.headerStatus(), m.width)
	footer := layout.RenderFooter(m.chat.KeyHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.chat.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// headerStatus summarizes the active strategy and run progress.
func (m AppModel) headerStatus() string {
	st := m.chat.State()
	if !st.Started {
		return fmt.Sprintf("matching: %s  ", m.strategy)
	}
	return fmt.Sprintf("matching: %s   Q %d/%d   ★ %d  ",
		m.strategy, st.Index+1, st.Total, st.Score)
}

// Run starts the Bubble Tea program.
func Run(state *quiz.State, strategy string) error {
	p := tea.NewProgram(newAppModel(state, strategy))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
