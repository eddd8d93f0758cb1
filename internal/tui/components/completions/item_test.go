package completions

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestMatchedRanges(t *testing.T) {
	t.Parallel()

	assert.Empty(t, matchedRanges(nil))
	assert.Equal(t, [][2]int{{2, 2}}, matchedRanges([]int{2}))
	assert.Equal(t, [][2]int{{1, 3}}, matchedRanges([]int{1, 2, 3}))
	assert.Equal(t, [][2]int{{0, 1}, {4, 4}, {6, 7}}, matchedRanges([]int{0, 1, 4, 6, 7}))
}

func TestSmartTruncate(t *testing.T) {
	t.Run("short text is untouched", func(t *testing.T) {
		t.Parallel()
		text, idx := smartTruncate("abc", 10, []int{1})
		assert.Equal(t, "abc", text)
		assert.Equal(t, []int{1}, idx)
	})

	t.Run("zero width yields nothing", func(t *testing.T) {
		t.Parallel()
		text, idx := smartTruncate("abcdef", 0, []int{1})
		assert.Empty(t, text)
		assert.Empty(t, idx)
	})

	t.Run("match near the start truncates the tail", func(t *testing.T) {
		t.Parallel()
		text, _ := smartTruncate("abcdefghij", 5, []int{0, 1})
		assert.Equal(t, "abcd…", text)
	})

	t.Run("match near the end stays visible", func(t *testing.T) {
		t.Parallel()
		text, idx := smartTruncate("abcdefghij", 5, []int{9})
		assert.Equal(t, 5, ansi.StringWidth(text))
		assert.Contains(t, text, "j")
		assert.NotEmpty(t, idx)
	})
}

func TestRenderLine(t *testing.T) {
	t.Run("pads to width", func(t *testing.T) {
		t.Parallel()
		line := renderLine("word", nil, 12, false)
		assert.Equal(t, 12, ansi.StringWidth(line))
		assert.Contains(t, ansi.Strip(line), "word")
	})

	t.Run("active and inactive differ", func(t *testing.T) {
		t.Parallel()
		active := renderLine("word", nil, 12, true)
		inactive := renderLine("word", nil, 12, false)
		assert.NotEqual(t, active, inactive)
		assert.Equal(t, ansi.Strip(active), ansi.Strip(inactive))
	})

	t.Run("long lines truncate", func(t *testing.T) {
		t.Parallel()
		line := renderLine("this is a very long completion entry", nil, 10, false)
		assert.Equal(t, 10, ansi.StringWidth(line))
		assert.Contains(t, ansi.Strip(line), "…")
	})
}
