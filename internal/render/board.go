// Package render pretty-prints boards, states and results for the CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/protocol"
)

var (
	teamOneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	teamTwoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	fishStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	waterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

// Board renders the hex grid row by row; odd rows are indented half a
// cell to hint at the hex layout.
func Board(b game.Board) string {
	var sb strings.Builder
	for y, row := range b.Rows() {
		if y%2 == 1 {
			sb.WriteString(" ")
		}
		for _, f := range row {
			sb.WriteString(cell(f))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cell(f game.Field) string {
	if f.Occupied() {
		if f.Penguin.Team == game.TeamOne {
			return teamOneStyle.Render("A")
		}
		return teamTwoStyle.Render("B")
	}
	if f.Fish == 0 {
		return waterStyle.Render("~")
	}
	return fishStyle.Render(fmt.Sprintf("%d", f.Fish))
}

// State renders a full snapshot: header line, board, score line.
func State(s *game.GameState) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("Turn %d, %v to move", s.Turn, s.CurrentTeam().ID)))
	sb.WriteString("\n")
	sb.WriteString(Board(s.Board))
	sb.WriteString(Scores(s))
	sb.WriteString("\n")
	return sb.String()
}

// Scores renders the running fish totals of both teams.
func Scores(s *game.GameState) string {
	one := s.TeamByID(game.TeamOne)
	two := s.TeamByID(game.TeamTwo)
	return fmt.Sprintf("%s %d fish   %s %d fish",
		teamOneStyle.Render("ONE"), one.Fish,
		teamTwoStyle.Render("TWO"), two.Fish)
}

// Result renders the final outcome in one line.
func Result(r *protocol.Result) string {
	switch r.Winner {
	case "":
		return headerStyle.Render("Game over: draw")
	case game.TeamOne.String():
		return headerStyle.Render("Game over: ") + teamOneStyle.Render("ONE wins")
	default:
		return headerStyle.Render("Game over: ") + teamTwoStyle.Render("TWO wins")
	}
}
