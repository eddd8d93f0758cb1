package completions

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/dropdown/internal/dropdown"
	"github.com/charmbracelet/dropdown/internal/tui/styles"
	"github.com/charmbracelet/dropdown/internal/tui/util"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/sahilm/fuzzy"
)

const (
	maxCompletionsWidth  = 80 // Maximum width for the completions popup
	maxCompletionsHeight = 10
)

// Completion is one candidate offered to the user.
type Completion struct {
	Title string // The display text of the completion item
	Value any    // The value of the completion item
	Group string // The source group that produced the item
}

type OpenCompletionsMsg struct {
	Completions []Completion
	X           int // X position for the completions popup
	Y           int // Y position for the completions popup
}

type FilterCompletionsMsg struct {
	Query  string // The query to filter completions
	Reopen bool
}

type CompletionsClosedMsg struct{}

type CompletionsOpenedMsg struct{}

type CloseCompletionsMsg struct{}

type SelectCompletionMsg struct {
	Value any // The value of the selected completion item
}

type Completions interface {
	util.Model
	Open() bool
	Query() string // Returns the current filter query
	KeyMap() KeyMap
	Position() (int, int) // Returns the X and Y position of the completions popup
	Width() int
	Height() int
}

type completionsCmp struct {
	width     int
	height    int
	winWidth  int
	winHeight int
	x         int // X position of the anchor cell
	y         int // Y position of the anchor cell
	keyMap    KeyMap

	surface *cellSurface
	dd      *dropdown.Dropdown

	all     []Completion // the unfiltered batch
	matches map[string][]int
	query   string // The current filter query

	selected *dropdown.Candidate
}

// New creates the completions popup. Dropdown options (header, footer,
// maxCount, placement, rotation) pass straight through to the underlying
// state machine.
func New(opts ...dropdown.Option) Completions {
	c := &completionsCmp{
		keyMap:  DefaultKeyMap(),
		surface: newCellSurface(),
		matches: map[string][]int{},
	}
	c.dd = dropdown.New(c.surface, opts...)
	c.dd.On(dropdown.EventSelected, func(e *dropdown.Event) {
		c.selected = e.Candidate
	})
	return c
}

// Init implements Completions.
func (c *completionsCmp) Init() tea.Cmd {
	return nil
}

// Update implements Completions.
func (c *completionsCmp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.winWidth = msg.Width
		c.winHeight = msg.Height
		c.surface.height = msg.Height
		c.width = min(msg.Width-c.x, maxCompletionsWidth)
		return c, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, c.keyMap.Up):
			nav := &dropdown.NavEvent{}
			c.dd.Up(nav)
			if !nav.Handled() {
				// nothing to navigate, give the key back to the host
				return c, util.CmdHandler(CloseCompletionsMsg{})
			}
			return c, nil
		case key.Matches(msg, c.keyMap.Down):
			nav := &dropdown.NavEvent{}
			c.dd.Down(nav)
			if !nav.Handled() {
				return c, util.CmdHandler(CloseCompletionsMsg{})
			}
			return c, nil
		case key.Matches(msg, c.keyMap.Select):
			item := c.dd.ActiveItem()
			if item == nil {
				return c, nil
			}
			c.selected = nil
			c.dd.Select(item)
			if c.selected == nil {
				// a listener vetoed the selection
				return c, nil
			}
			comp := c.selected.Value.(Completion)
			return c, util.CmdHandler(SelectCompletionMsg{
				Value: comp.Value,
			})
		case key.Matches(msg, c.keyMap.Cancel):
			return c, util.CmdHandler(CloseCompletionsMsg{})
		}
	case CloseCompletionsMsg:
		c.dd.Hide()
		c.dd.Clear()
		return c, util.CmdHandler(CompletionsClosedMsg{})
	case OpenCompletionsMsg:
		c.x = msg.X
		c.y = msg.Y
		c.query = ""
		c.all = msg.Completions
		c.matches = map[string][]int{}
		c.width = min(max(c.winWidth-c.x, 1), maxCompletionsWidth)
		c.render(c.all)
		if !c.dd.Shown() {
			return c, nil
		}
		return c, util.CmdHandler(CompletionsOpenedMsg{})
	case FilterCompletionsMsg:
		if !c.dd.Shown() && !msg.Reopen {
			return c, nil
		}
		if c.dd.Shown() {
			// These shortcuts only hold while the popup is open: a close
			// clears the collection, so an empty collection here says
			// nothing about what the query matches.
			if msg.Query == c.query {
				// PERF: if same query, don't need to filter again
				return c, nil
			}
			if len(c.dd.Items()) == 0 &&
				len(msg.Query) > len(c.query) &&
				strings.HasPrefix(msg.Query, c.query) {
				// PERF: the current query already matches nothing and the
				// new one only appends to it, so it cannot match either.
				return c, nil
			}
		}
		c.query = msg.Query
		c.render(c.filter(msg.Query))
		if len(c.dd.Items()) == 0 {
			return c, util.CmdHandler(CloseCompletionsMsg{})
		}
		if msg.Reopen {
			c.dd.Show()
			return c, util.CmdHandler(CompletionsOpenedMsg{})
		}
		return c, nil
	}
	return c, nil
}

// View implements Completions.
func (c *completionsCmp) View() string {
	if !c.dd.Shown() {
		return ""
	}
	lines := c.surface.lines()
	if len(lines) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(lines))
	for _, n := range lines {
		rendered = append(rendered, renderLine(n.text, c.matches[n.text], c.width, n.active))
	}
	c.height = util.Clamp(len(rendered), 1, maxCompletionsHeight)

	t := styles.CurrentTheme()
	return t.S().Base.
		Width(c.width).
		Background(t.BgSubtle).
		Render(lipgloss.JoinVertical(lipgloss.Left, rendered[:c.height]...))
}

// filter narrows the open batch with a fuzzy query, best matches first, and
// records the match positions for underlining.
func (c *completionsCmp) filter(query string) []Completion {
	c.matches = map[string][]int{}
	if query == "" {
		return c.all
	}

	words := make([]string, len(c.all))
	for i, comp := range c.all {
		words[i] = strings.ToLower(comp.Title)
	}

	matches := fuzzy.Find(query, words)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	filtered := make([]Completion, 0, len(matches))
	for _, match := range matches {
		comp := c.all[match.Index]
		c.matches[comp.Title] = match.MatchedIndexes
		filtered = append(filtered, comp)
	}
	return filtered
}

func (c *completionsCmp) render(comps []Completion) {
	cands := make([]dropdown.Candidate, 0, len(comps))
	for _, comp := range comps {
		cands = append(cands, dropdown.Candidate{
			Value:  comp,
			Group:  comp.Group,
			Render: func() string { return comp.Title },
		})
	}
	c.dd.Render(cands, dropdown.CursorPosition{
		Top:        c.y,
		LineHeight: 1,
		Left:       c.x,
		HasLeft:    true,
	})
	c.height = util.Clamp(len(c.surface.lines()), 1, maxCompletionsHeight)
}

func (c *completionsCmp) Open() bool {
	return c.dd.Shown()
}

func (c *completionsCmp) Query() string {
	return c.query
}

func (c *completionsCmp) KeyMap() KeyMap {
	return c.keyMap
}

// Position returns the top-left cell of the popup, derived from the offset
// the dropdown computed for its placement.
func (c *completionsCmp) Position() (int, int) {
	off := c.surface.offset
	x := off.Left
	if off.FromRight {
		x = c.winWidth - off.Right - c.width
	}
	if off.FromBottom {
		return x, c.winHeight - off.Bottom - c.height + 1
	}
	return x, off.Top + 1
}

func (c *completionsCmp) Width() int {
	return c.width
}

func (c *completionsCmp) Height() int {
	return c.height
}
