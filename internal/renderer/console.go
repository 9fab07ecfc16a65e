package renderer

import (
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tournament/internal/entity"
)

type consoleRenderer struct {
	out io.Writer
}

func NewConsoleRenderer(out io.Writer) Renderer {
	return &consoleRenderer{
		out: out,
	}
}

// RenderBoard - prints column numbers on top and the row number in front of every row.
func (that *consoleRenderer) RenderBoard(snapshot entity.Snapshot) {
	_, _ = io.WriteString(that.out, FormatBoard(snapshot))
}

// FormatBoard - returns the text form of a snapshot followed by an empty line.
//
//	  0 1 2
//	0 X _ O
//	1 _ X _
//	2 _ _ O
func FormatBoard(snapshot entity.Snapshot) string {
	var builder strings.Builder

	builder.WriteString(" ")
	for col := 0; col < snapshot.Size; col++ {
		builder.WriteString(" ")
		builder.WriteString(strconv.Itoa(col))
	}
	builder.WriteString("\n")

	for row, cells := range snapshot.Cells {
		builder.WriteString(strconv.Itoa(row))
		for _, cell := range cells {
			builder.WriteString(" ")
			builder.WriteString(cell.String())
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")

	return builder.String()
}
