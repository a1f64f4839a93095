package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/biblios/internal/nav"
)

// Picker renders the location picker box.
func Picker(m *nav.Machine, st Styles, width, height int) string {
	p := m.Picker()
	idx := m.Index()
	inner := max(width-8, 20)

	var b strings.Builder
	b.WriteString(st.Title.Render("Go to"))
	b.WriteString("\n")
	b.WriteString(breadcrumb(p, st))
	b.WriteString("\n\n")

	rows := max(height-10, 3)
	switch p.Step {
	case nav.StepBook:
		b.WriteString(textField(st, "› ", p.Filter, "filter books", inner))
		b.WriteString("\n")
		books := p.Candidates(idx)
		if len(books) == 0 {
			b.WriteString(st.Muted.Render("No matching books"))
			break
		}
		start, end := window(p.Selection, len(books), rows)
		for i := start; i < end; i++ {
			label := fmt.Sprintf("%-7s %s", books[i].ID, books[i].Name)
			if i < 9 {
				label = fmt.Sprintf("%d %s", i+1, label)
			} else {
				label = "  " + label
			}
			b.WriteString(listRow(st, label, i == p.Selection))
			b.WriteString("\n")
		}
	case nav.StepChapter, nav.StepVerse:
		if p.Step == nav.StepVerse {
			if _, loaded := p.VerseLoaded(); !loaded {
				b.WriteString(st.Muted.Render("Chapter not loaded yet"))
				b.WriteString("\n")
			}
		}
		b.WriteString(numberGrid(st, p.Count(idx), p.Selection, inner, rows))
	}

	b.WriteString("\n")
	b.WriteString(st.Muted.Render("enter select • esc back • 1-9 jump"))
	return st.Box.Width(width).Render(b.String())
}

func breadcrumb(p nav.Picker, st Styles) string {
	steps := []string{"Book", "Chapter", "Verse"}
	switch {
	case p.ChosenChapter > 0:
		steps[0], steps[1] = p.ChosenBook, fmt.Sprint(p.ChosenChapter)
	case p.ChosenBook != "":
		steps[0] = p.ChosenBook
	}
	parts := make([]string, len(steps))
	for i, s := range steps {
		if nav.PickerStep(i) == p.Step {
			parts[i] = st.Cursor.Render(s)
		} else {
			parts[i] = st.Muted.Render(s)
		}
	}
	return strings.Join(parts, st.Muted.Render(" › "))
}

// numberGrid lays out 1..n in rows, scrolled so the selected row is visible.
func numberGrid(st Styles, n, sel, width, rows int) string {
	if n <= 0 {
		return st.Muted.Render("Nothing to choose")
	}
	cols := max(width/5, 1)
	total := (n + cols - 1) / cols
	startRow, endRow := window(sel/cols, total, rows)

	var lines []string
	for r := startRow; r < endRow; r++ {
		var cells []string
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= n {
				break
			}
			style := st.Cell
			if i == sel {
				style = st.CellActive
			}
			cells = append(cells, style.Render(fmt.Sprint(i+1)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func listRow(st Styles, label string, active bool) string {
	if active {
		return st.ItemActive.Render(label)
	}
	return st.Item.Render(label)
}

// textField draws a focused single-line input holding value.
func textField(st Styles, prompt, value, placeholder string, width int) string {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.Width = max(width-4, 1)
	ti.PromptStyle = st.Cursor
	ti.TextStyle = st.Value
	ti.PlaceholderStyle = st.Muted
	ti.SetValue(value)
	ti.Focus()
	return st.Input.Render(ti.View())
}
