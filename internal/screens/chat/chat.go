// Package chat renders the quiz as a chat transcript: user messages go in,
// quiz.HandleTurn produces the reply, and the screen only appends turns. All
// quiz semantics live in internal/quiz; this screen is presentation glue.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"quizchat/internal/quiz"
	"quizchat/internal/ui/components"
	"quizchat/internal/ui/layout"
)

const inputCharLimit = 200

// turn is one exchange in the transcript.
type turn struct {
	user string
	bot  string
}

// ChatScreen is the single interactive screen of the app.
type ChatScreen struct {
	state *quiz.State
	turns []turn
	input components.TextInput
}

// New creates a ChatScreen over a fresh session state.
func New(state *quiz.State) *ChatScreen {
	return &ChatScreen{
		state: state,
		input: components.NewTextInput("Type 'start' to begin, then your answers...", inputCharLimit),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

// KeyHints returns the footer hints for the current phase.
func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (*ChatScreen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return c.submit(), nil
		case "ctrl+r":
			return c.reset(), nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit runs one quiz turn with the current input value.
// Scoring is synchronous: the turn blocks until the similarity call returns,
// and the checker absorbs any backend failure itself.
func (c *ChatScreen) submit() *ChatScreen {
	message := strings.TrimSpace(c.input.Value())
	if message == "" {
		return c
	}

	reply := quiz.HandleTurn(context.Background(), message, c.state)
	c.turns = append(c.turns, turn{user: message, bot: reply})

	// Recreate the input to clear it.
	c.input = components.NewTextInput("Your answer...", inputCharLimit)
	return c
}

// reset discards the transcript and session state unconditionally.
func (c *ChatScreen) reset() *ChatScreen {
	c.state = c.state.Reset()
	c.turns = nil
	c.input = components.NewTextInput("Type 'start' to begin, then your answers...", inputCharLimit)
	return c
}

// State exposes the session for the header status line.
func (c *ChatScreen) State() *quiz.State {
	return c.state
}
