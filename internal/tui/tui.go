package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/charmbracelet/dropdown/internal/tui/components/completions"
	"github.com/charmbracelet/dropdown/internal/tui/styles"
	"github.com/charmbracelet/dropdown/internal/tui/util"
)

// inputRow is the row the text input is rendered on, below the title and a
// blank spacer line. The completions popup anchors to the cursor inside it.
const inputRow = 2

// appModel is the demo application: a single text input whose current word
// drives the completions popup.
type appModel struct {
	width, height int
	keyMap        KeyMap

	input       textinput.Model
	completions completions.Completions

	words    []completions.Completion
	accepted string // last accepted completion, shown in the status line
}

// Init initializes the application model and returns initial commands.
func (a *appModel) Init() tea.Cmd {
	return tea.Batch(a.input.Focus(), a.completions.Init())
}

// Update handles incoming messages and updates the application state.
func (a *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.input.SetWidth(msg.Width - 4)
		u, cmd := a.completions.Update(msg)
		a.completions = u.(completions.Completions)
		return a, cmd

	// Completions messages
	case completions.OpenCompletionsMsg, completions.FilterCompletionsMsg, completions.CloseCompletionsMsg:
		u, cmd := a.completions.Update(msg)
		a.completions = u.(completions.Completions)
		return a, cmd
	case completions.SelectCompletionMsg:
		word, ok := msg.Value.(string)
		if !ok {
			return a, nil
		}
		a.acceptCompletion(word)
		return a, nil

	case tea.KeyPressMsg:
		return a, a.handleKeyPressMsg(msg)
	}
	return a, nil
}

// handleKeyPressMsg processes keyboard input and routes to appropriate handlers.
func (a *appModel) handleKeyPressMsg(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	// completions
	case a.completions.Open() && key.Matches(msg, a.completions.KeyMap().Up):
		u, cmd := a.completions.Update(msg)
		a.completions = u.(completions.Completions)
		return cmd
	case a.completions.Open() && key.Matches(msg, a.completions.KeyMap().Down):
		u, cmd := a.completions.Update(msg)
		a.completions = u.(completions.Completions)
		return cmd
	case a.completions.Open() && key.Matches(msg, a.completions.KeyMap().Select):
		u, cmd := a.completions.Update(msg)
		a.completions = u.(completions.Completions)
		return cmd
	case a.completions.Open() && key.Matches(msg, a.completions.KeyMap().Cancel):
		u, cmd := a.completions.Update(msg)
		a.completions = u.(completions.Completions)
		return cmd

	case key.Matches(msg, a.keyMap.Quit):
		return tea.Quit

	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return tea.Batch(cmd, a.syncCompletions())
	}
}

// syncCompletions opens, filters, or closes the popup based on the word
// under the cursor.
func (a *appModel) syncCompletions() tea.Cmd {
	word := a.currentWord()
	if word == "" {
		if a.completions.Open() {
			return util.CmdHandler(completions.CloseCompletionsMsg{})
		}
		return nil
	}
	if !a.completions.Open() && a.completions.Query() == "" {
		cursor := a.input.Cursor()
		x, y := 0, inputRow
		if cursor != nil {
			x = cursor.X - len(word)
			y = cursor.Y + inputRow
		}
		return tea.Sequence(
			util.CmdHandler(completions.OpenCompletionsMsg{
				Completions: a.words,
				X:           max(x, 0),
				Y:           y,
			}),
			util.CmdHandler(completions.FilterCompletionsMsg{Query: word}),
		)
	}
	return util.CmdHandler(completions.FilterCompletionsMsg{Query: word, Reopen: true})
}

// currentWord returns the run of word characters ending at the cursor.
func (a *appModel) currentWord() string {
	value := a.input.Value()
	pos := min(a.input.Position(), len(value))
	start := pos
	for start > 0 {
		r := rune(value[start-1])
		if unicode.IsSpace(r) {
			break
		}
		start--
	}
	return value[start:pos]
}

// acceptCompletion replaces the word under the cursor with the selected one.
func (a *appModel) acceptCompletion(word string) {
	value := a.input.Value()
	pos := min(a.input.Position(), len(value))
	start := pos - len(a.currentWord())
	a.input.SetValue(value[:start] + word + value[pos:])
	a.input.SetCursor(start + len(word))
	a.accepted = word
}

// View renders the application, overlaying the completions popup at the
// cursor position when it is open.
func (a *appModel) View() tea.View {
	t := styles.CurrentTheme()

	title := styles.ApplyForegroundGrad("Dropdown", t.Primary, t.Secondary)
	inputView := a.input.View()
	status := t.S().Muted.Render(a.statusLine())

	appView := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		inputView,
		"",
		status,
	)

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(appView),
	}

	cursor := a.input.Cursor()
	if cursor != nil {
		cursor.Y += inputRow
	}

	if a.completions.Open() && cursor != nil {
		cmp := a.completions.View()
		x, y := a.completions.Position()
		layers = append(
			layers,
			lipgloss.NewLayer(cmp).X(x).Y(y),
		)
	}

	canvas := lipgloss.NewCanvas(layers...)

	view := tea.NewView(canvas.Render())
	view.BackgroundColor = t.BgBase
	view.Cursor = cursor
	return view
}

func (a *appModel) statusLine() string {
	parts := []string{"type to complete", "enter/tab accept", "esc dismiss", "ctrl+c quit"}
	if a.accepted != "" {
		parts = append(parts, "last: "+a.accepted)
	}
	return strings.Join(parts, " · ")
}

// New creates and initializes a new TUI application model.
func New() tea.Model {
	t := styles.CurrentTheme()

	ti := textinput.New()
	ti.Placeholder = "Start typing..."
	ti.SetVirtualCursor(false)
	ti.Prompt = "> "
	ti.SetStyles(t.S().TextInput)

	return &appModel{
		keyMap:      DefaultKeyMap(),
		input:       ti,
		completions: completions.New(),
		words:       defaultWords(),
	}
}

// defaultWords is the demo dictionary offered by the popup.
func defaultWords() []completions.Completion {
	keywords := []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
	}
	builtins := []string{
		"append", "cap", "close", "copy", "delete", "len", "make", "new",
		"panic", "print", "println", "recover",
	}
	var words []completions.Completion
	for _, w := range keywords {
		words = append(words, completions.Completion{Title: w, Value: w, Group: "keyword"})
	}
	for _, w := range builtins {
		words = append(words, completions.Completion{Title: w, Value: w, Group: "builtin"})
	}
	return words
}
