// Package tui provides the interactive terminal reader.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/biblios/internal/clipboard"
	"github.com/f3rmion/biblios/internal/config"
	"github.com/f3rmion/biblios/internal/input"
	"github.com/f3rmion/biblios/internal/nav"
	"github.com/f3rmion/biblios/internal/theme"
	"github.com/f3rmion/biblios/internal/tui/views"
)

// Lines taken by the header, its gap, the status line and the key footer.
// Focus mode keeps only the status line.
const (
	chromeLines      = 4
	focusChromeLines = 1
)

// clipboardMsg reports the result of copying a verse.
type clipboardMsg struct {
	err error
}

// AppModel hosts the navigation machine: it turns key presses into intents,
// forwards terminal size changes and renders the active surface.
type AppModel struct {
	machine     *nav.Machine
	translation string
	copy        func(string) error

	// Derived from settings, rebuilt when they change
	keys      input.KeyMap
	styles    views.Styles
	footer    help.Model
	mode      config.InputMode
	themeName string
	spacing   bool
	focus     bool

	// Layout state
	width  int
	height int
	ready  bool

	// Rendered help document
	helpLines []string
	helpWidth int
	helpMode  config.InputMode
	helpTheme string

	notice string
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithTranslation sets the translation name shown in the header.
func WithTranslation(name string) Option {
	return func(m *AppModel) { m.translation = name }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *AppModel) { m.copy = fn }
}

// NewApp creates the reader around an initialized machine.
func NewApp(machine *nav.Machine, opts ...Option) AppModel {
	app := AppModel{
		machine: machine,
		copy:    clipboard.Write,
		footer:  help.New(),
	}
	for _, opt := range opts {
		opt(&app)
	}
	app.refresh()
	return app
}

// Run starts the reader on the alternate screen and blocks until it quits.
func Run(machine *nav.Machine, opts ...Option) error {
	p := tea.NewProgram(
		NewApp(machine, opts...),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.footer.Width = msg.Width
		m.machine.SetViewportHeight(m.verseRows())
		m.layoutHelp()
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "Could not copy: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		in := m.keys.Map(msg, m.machine.Active(), m.machine.Picker().Step)
		if in.Kind == nav.None {
			return m, nil
		}
		m.notice = ""
		out := m.machine.Dispatch(in)
		m.refresh()
		if m.machine.Active() == nav.Help {
			m.layoutHelp()
		}

		var cmds []tea.Cmd
		if out.Clipboard != "" {
			cmds = append(cmds, m.copyVerse(out.Clipboard))
		}
		if out.Quit {
			cmds = append(cmds, tea.Quit)
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// refresh rebuilds key map and styles after a settings change.
func (m *AppModel) refresh() {
	s := m.machine.Settings()
	if s.InputMode != m.mode {
		m.mode = s.InputMode
		m.keys = input.ForMode(s.InputMode)
	}
	if s.Theme != m.themeName {
		m.themeName = s.Theme
		m.styles = views.NewStyles(theme.Get(s.Theme))
		m.footer.Styles.ShortKey = m.styles.Cursor
		m.footer.Styles.ShortDesc = m.styles.Muted
		m.footer.Styles.ShortSeparator = m.styles.Divider
	}
	if s.VerseSpacing != m.spacing || s.FocusMode != m.focus {
		m.spacing = s.VerseSpacing
		m.focus = s.FocusMode
		if m.ready {
			m.machine.SetViewportHeight(m.verseRows())
		}
	}
}

func (m AppModel) chrome() int {
	if m.focus {
		return focusChromeLines
	}
	return chromeLines
}

// verseRows is the number of verses the reader viewport holds.
func (m AppModel) verseRows() int {
	per := 1
	if m.spacing {
		per = 2
	}
	return max((m.height-m.chrome())/per, 1)
}

func (m AppModel) boxWidth() int {
	return max(min(m.width-4, 72), 24)
}

// layoutHelp re-renders the help document when its inputs changed and
// reports its length to the machine.
func (m *AppModel) layoutHelp() {
	width := m.boxWidth() - 6
	if m.helpLines != nil && m.helpWidth == width && m.helpMode == m.mode && m.helpTheme == m.themeName {
		return
	}
	m.helpLines = views.RenderHelp(m.keys.Markdown(), theme.Get(m.themeName), width)
	m.helpWidth = width
	m.helpMode = m.mode
	m.helpTheme = m.themeName
	m.machine.SetHelpLines(len(m.helpLines))
}

func (m AppModel) copyVerse(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if box, ok := m.renderModal(); ok {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	// Search and bookmarks draw their own title in place of the reader header.
	contentHeight := max(m.height-chromeLines+2, 1)
	if m.focus {
		contentHeight = max(m.height-focusChromeLines, 1)
	}
	var header, body string
	switch m.machine.Base() {
	case nav.Search:
		body = views.Search(m.machine, m.styles, m.width-2, contentHeight)
	case nav.Bookmarks:
		body = views.Bookmarks(m.machine, m.styles, m.width-2, contentHeight)
	default:
		if !m.focus {
			contentHeight = max(m.height-chromeLines, 1)
			header = views.ReaderHeader(m.machine, m.styles, m.translation)
		}
		body = views.Reader(m.machine, m.styles, m.width-2, contentHeight)
	}

	content := lipgloss.NewStyle().
		Padding(0, 1).
		Width(m.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(body)
	if header != "" {
		content = header + "\n\n" + content
	}

	if m.focus {
		return lipgloss.JoinVertical(lipgloss.Left, content, m.renderStatus())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		content,
		m.renderStatus(),
		m.footer.View(m.keys),
	)
}

func (m AppModel) renderModal() (string, bool) {
	width := m.boxWidth()
	switch m.machine.Active() {
	case nav.LocationPicker:
		return views.Picker(m.machine, m.styles, width, m.height-2), true
	case nav.ThemePicker:
		return views.Themes(m.machine, m.styles, width), true
	case nav.Settings:
		return views.Settings(m.machine, m.styles, width), true
	case nav.Help:
		return views.Help(m.helpLines, m.machine.HelpScroll(), m.machine.ViewportHeight(), m.styles, width), true
	}
	return "", false
}

func (m AppModel) renderStatus() string {
	msg := m.notice
	if msg == "" {
		msg = m.machine.Status()
	}
	if msg == "" {
		loc := m.machine.Location()
		if v, ok := m.machine.CurrentVerse(); ok {
			return m.styles.Muted.Render(" " + v.Reference.String())
		}
		return m.styles.Muted.Render(fmt.Sprintf(" %s %d", loc.Book, loc.Chapter))
	}
	return m.styles.Status.Render(" " + msg)
}

// Machine returns the hosted navigation machine.
func (m AppModel) Machine() *nav.Machine {
	return m.machine
}
