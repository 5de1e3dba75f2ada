package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"quizchat/internal/ui/theme"
)

// View renders the transcript above the input line, bottom-anchored so the
// latest exchange stays visible.
func (c *ChatScreen) View(width, height int) string {
	inputLine := "\n  > " + c.input.View()
	inputHeight := lipgloss.Height(inputLine)

	transcriptHeight := height - inputHeight
	if transcriptHeight < 0 {
		transcriptHeight = 0
	}

	transcript := c.renderTranscript(width)
	lines := strings.Split(transcript, "\n")
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}

	return strings.Join(lines, "\n") + inputLine
}

// renderTranscript renders the banner and every turn so far.
func (c *ChatScreen) renderTranscript(width int) string {
	var b strings.Builder

	b.WriteString(renderBanner(width))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("  Answers are checked by semantic similarity when an\n  embedding backend is configured, lexical overlap otherwise."))
	b.WriteString("\n")

	for _, t := range c.turns {
		b.WriteString("\n")
		b.WriteString(theme.UserTurn.Render("  You: "))
		b.WriteString(theme.Body.Render(t.user))
		b.WriteString("\n")
		b.WriteString(indentReply(styleReply(t.bot)))
		b.WriteString("\n")
	}

	return b.String()
}

// styleReply colors the verdict marker lines and leaves the rest plain.
func styleReply(reply string) string {
	lines := strings.Split(reply, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "✅"):
			lines[i] = theme.Correct.Render(line)
		case strings.HasPrefix(line, "❌"):
			lines[i] = theme.Incorrect.Render(line)
		default:
			lines[i] = theme.BotTurn.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func indentReply(reply string) string {
	lines := strings.Split(reply, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
