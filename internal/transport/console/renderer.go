package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

const (
	colorX     = "#E06C75"
	colorO     = "#61AFEF"
	colorFaint = "#5C6370"

	rowSeparator = "---+---+---\n"
)

// Renderer draws game states as text. Styling is dropped when the output
// does not support it.
type Renderer struct {
	output      *termenv.Output
	showIndices bool
}

func NewRenderer(w io.Writer, opts Options) *Renderer {
	var outputOpts []termenv.OutputOption
	if !opts.Color {
		outputOpts = append(outputOpts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{
		output:      termenv.NewOutput(w, outputOpts...),
		showIndices: opts.ShowIndices,
	}
}

// Render returns the board followed by a status line.
func (that *Renderer) Render(state entity.GameState) string {
	var highlight [entity.BoardSize]bool
	if state.IsWon() {
		if line, _, ok := tictactoe.WinningLine(state.Board); ok {
			for _, i := range line {
				highlight[i] = true
			}
		}
	}

	var sb strings.Builder
	for r := 0; r < 3; r++ {
		if r > 0 {
			sb.WriteString(rowSeparator)
		}

		for c, cell := range state.Board.Row(r) {
			if c > 0 {
				sb.WriteString("|")
			}

			i := r*3 + c
			sb.WriteString(" " + that.cell(cell, i, highlight[i]) + " ")
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n" + that.Status(state) + "\n")

	return sb.String()
}

// Status describes whose turn it is or how the game ended.
func (that *Renderer) Status(state entity.GameState) string {
	switch state.Status {
	case entity.StatusWon:
		return that.player(state.Winner).Bold().String() + " wins!"
	case entity.StatusDraw:
		return that.output.String("Draw!").Bold().String()
	default:
		return that.player(state.CurrentPlayer).String() + " to move"
	}
}

func (that *Renderer) cell(cell entity.Cell, index int, highlight bool) string {
	if cell.IsEmpty() {
		if !that.showIndices {
			return " "
		}
		return that.output.String(strconv.Itoa(index)).Foreground(that.output.Color(colorFaint)).String()
	}

	style := that.player(cell.Owner())
	if highlight {
		style = style.Bold().Underline()
	}

	return style.String()
}

func (that *Renderer) player(player entity.Player) termenv.Style {
	style := that.output.String(string(player))

	switch player {
	case entity.PlayerX:
		return style.Foreground(that.output.Color(colorX))
	case entity.PlayerO:
		return style.Foreground(that.output.Color(colorO))
	default:
		return style
	}
}
