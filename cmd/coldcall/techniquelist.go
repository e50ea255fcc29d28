package main

import (
	"fmt"
	"strings"

	"github.com/germanamz/coldcall/pkg/session"
	"github.com/germanamz/coldcall/pkg/technique"
	"github.com/mattn/go-runewidth"
)

// exampleRef addresses one selectable example row.
type exampleRef struct {
	technique string
	index     int
	text      string
}

// techniqueList renders the technique table as a cursor-driven list.
type techniqueList struct {
	techniques []technique.Technique
	rows       []exampleRef
	cursor     int
}

func newTechniqueList(tbl *technique.Table) techniqueList {
	l := techniqueList{techniques: tbl.All()}
	for _, tech := range l.techniques {
		for i, ex := range tech.Examples {
			l.rows = append(l.rows, exampleRef{technique: tech.Name, index: i, text: ex})
		}
	}
	return l
}

// selected returns the example under the cursor.
func (l techniqueList) selected() (exampleRef, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return exampleRef{}, false
	}
	return l.rows[l.cursor], true
}

func (l *techniqueList) up() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *techniqueList) down() {
	if l.cursor < len(l.rows)-1 {
		l.cursor++
	}
}

// render draws the list for width cells and returns it with the line index
// of the cursor row, so the caller can keep it in view.
func (l techniqueList) render(st session.State, width int) (string, int) {
	var sb strings.Builder
	line, cursorLine, row := 0, 0, 0

	writeLine := func(s string) {
		sb.WriteString(s)
		sb.WriteByte('\n')
		line++
	}

	for ti, tech := range l.techniques {
		if ti > 0 {
			writeLine("")
		}
		writeLine(techniqueStyle.Render(fmt.Sprintf("%s (%d points)", tech.Name, tech.Points)))

		for i, ex := range tech.Examples {
			used := st.IsUsed(tech.Name, i)

			mark := noCursor
			if row == l.cursor {
				mark = cursorStyle.Render(cursorMark)
				cursorLine = line
			}

			button := useStyle.Render("[Use] ")
			if used {
				button = usedStyle.Render("[Used]")
			}

			prefix := mark + button + " "
			textWidth := width - runewidth.StringWidth(noCursor+"[Used] ")
			text := truncate(ex, textWidth)
			if used {
				text = usedStyle.Render(text)
			} else {
				text = exampleStyle.Render(text)
			}

			writeLine(prefix + text)
			row++
		}
	}

	return strings.TrimRight(sb.String(), "\n"), cursorLine
}
