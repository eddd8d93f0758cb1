package completions

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompletions() []Completion {
	return []Completion{
		{Title: "banana", Value: "banana", Group: "fruit"},
		{Title: "blueberry", Value: "blueberry", Group: "fruit"},
		{Title: "cherry", Value: "cherry", Group: "fruit"},
	}
}

// drain runs a command chain and returns every produced message.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func openPopup(t *testing.T, comps []Completion) *completionsCmp {
	t.Helper()
	c := New().(*completionsCmp)
	c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	_, cmd := c.Update(OpenCompletionsMsg{Completions: comps, X: 4, Y: 10})
	require.Contains(t, drain(cmd), tea.Msg(CompletionsOpenedMsg{}))
	return c
}

func TestOpenCompletions(t *testing.T) {
	t.Parallel()

	c := openPopup(t, testCompletions())

	assert.True(t, c.Open())
	assert.Equal(t, "", c.Query())

	items := c.dd.Items()
	require.Len(t, items, 3)
	assert.True(t, items[0].Active())
	assert.Equal(t, "fruit", c.dd.GroupTag())
}

func TestView(t *testing.T) {
	t.Parallel()

	c := openPopup(t, testCompletions())

	view := ansi.Strip(c.View())
	assert.Contains(t, view, "banana")
	assert.Contains(t, view, "blueberry")
	assert.Contains(t, view, "cherry")

	_, cmd := c.Update(CloseCompletionsMsg{})
	assert.Contains(t, drain(cmd), tea.Msg(CompletionsClosedMsg{}))
	assert.Empty(t, c.View())
}

func TestNavigationKeys(t *testing.T) {
	t.Run("down moves the highlight", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())

		c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		assert.Equal(t, 1, c.dd.ActiveItem().Position())
	})

	t.Run("up wraps to the last item", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())

		c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
		assert.Equal(t, 2, c.dd.ActiveItem().Position())
	})

	t.Run("closed popup hands the key back", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())
		c.Update(CloseCompletionsMsg{})

		_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		assert.Contains(t, drain(cmd), tea.Msg(CloseCompletionsMsg{}))
	})
}

func TestSelectKey(t *testing.T) {
	t.Run("reports the active value and closes", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())
		c.Update(tea.KeyPressMsg{Code: tea.KeyDown})

		_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		msgs := drain(cmd)
		require.Len(t, msgs, 1)
		assert.Equal(t, SelectCompletionMsg{Value: "blueberry"}, msgs[0])
		assert.False(t, c.Open())
		assert.Empty(t, c.dd.Items())
	})

	t.Run("no-op with nothing active", func(t *testing.T) {
		t.Parallel()
		c := New().(*completionsCmp)
		c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

		_, cmd := c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		assert.Nil(t, cmd)
	})
}

func TestFilter(t *testing.T) {
	t.Run("narrows and ranks the batch", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())

		c.Update(FilterCompletionsMsg{Query: "b"})
		items := c.dd.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "b", c.Query())
		assert.True(t, items[0].Active())
	})

	t.Run("no matches closes the popup", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())

		_, cmd := c.Update(FilterCompletionsMsg{Query: "zzz"})
		assert.Contains(t, drain(cmd), tea.Msg(CloseCompletionsMsg{}))
	})

	t.Run("same query is a no-op", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())

		c.Update(FilterCompletionsMsg{Query: "b"})
		items := c.dd.Items()

		_, cmd := c.Update(FilterCompletionsMsg{Query: "b"})
		assert.Nil(t, cmd)
		assert.Equal(t, items, c.dd.Items())
	})

	t.Run("clearing the query restores the batch", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())

		c.Update(FilterCompletionsMsg{Query: "che"})
		require.Len(t, c.dd.Items(), 1)

		c.Update(FilterCompletionsMsg{Query: ""})
		assert.Len(t, c.dd.Items(), 3)
	})

	t.Run("ignored while closed without reopen", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())
		c.Update(CloseCompletionsMsg{})

		_, cmd := c.Update(FilterCompletionsMsg{Query: "b"})
		assert.Nil(t, cmd)
		assert.False(t, c.Open())
	})

	t.Run("reopen restores visibility", func(t *testing.T) {
		t.Parallel()
		c := openPopup(t, testCompletions())
		c.Update(CloseCompletionsMsg{})

		_, cmd := c.Update(FilterCompletionsMsg{Query: "ban", Reopen: true})
		assert.Contains(t, drain(cmd), tea.Msg(CompletionsOpenedMsg{}))
		assert.True(t, c.Open())
	})
}

func TestPosition(t *testing.T) {
	t.Parallel()

	c := openPopup(t, testCompletions())
	x, y := c.Position()
	assert.Equal(t, 4, x)
	// popup opens on the line below the anchor
	assert.Equal(t, 11, y)
}
