package completions

import (
	"github.com/charmbracelet/dropdown/internal/tui/styles"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// renderLine draws one dropdown line at the given width. Fuzzy match
// positions are underlined; the active line uses the selected style.
func renderLine(text string, matchIndexes []int, width int, active bool) string {
	t := styles.CurrentTheme()

	lineStyle := t.S().Text.Padding(0, 1).Width(width).Background(t.BgSubtle)
	matchStyle := t.S().Text.Underline(true).Background(t.BgSubtle)
	if active {
		lineStyle = t.S().TextSelected.Padding(0, 1).Width(width)
		matchStyle = t.S().TextSelected.Underline(true)
	}

	var truncated string
	var adjusted []int

	innerWidth := width - 2 // Account for padding
	if len(matchIndexes) > 0 && len(text) > innerWidth {
		truncated, adjusted = smartTruncate(text, innerWidth, matchIndexes)
	} else {
		truncated = ansi.Truncate(text, innerWidth, "…")
		adjusted = matchIndexes
	}

	line := lineStyle.Render(truncated)
	if len(adjusted) > 0 {
		var ranges []lipgloss.Range
		for _, rng := range matchedRanges(adjusted) {
			// Match indexes are byte positions into the plain text, but
			// lipgloss ranges want visible cell positions, so convert.
			// The left padding cell shifts everything right by one.
			start, stop := bytePosToVisibleCharPos(truncated, rng)
			ranges = append(ranges, lipgloss.NewRange(start+1, stop+2, matchStyle))
		}
		line = lipgloss.StyleRanges(line, ranges...)
	}
	return line
}

// smartTruncate implements fzf-style truncation that keeps the last matching
// part visible.
func smartTruncate(text string, width int, matchIndexes []int) (string, []int) {
	if width <= 0 {
		return "", []int{}
	}

	textLen := ansi.StringWidth(text)
	if textLen <= width {
		return text, matchIndexes
	}

	if len(matchIndexes) == 0 {
		return ansi.Truncate(text, width, "…"), []int{}
	}

	lastMatchPos := matchIndexes[len(matchIndexes)-1]

	// Convert byte position to visual width position.
	lastMatchVisualPos := 0
	bytePos := 0
	gr := uniseg.NewGraphemes(text)
	for bytePos < lastMatchPos && gr.Next() {
		bytePos += len(gr.Str())
		lastMatchVisualPos += max(1, gr.Width())
	}

	ellipsisWidth := 1
	availableWidth := width - ellipsisWidth

	// The last match already fits, truncate from the end.
	if lastMatchVisualPos < availableWidth {
		return ansi.Truncate(text, width, "…"), matchIndexes
	}

	// Show some context before the last match when possible.
	startVisualPos := max(0, lastMatchVisualPos-availableWidth+1)

	startBytePos := 0
	currentVisualPos := 0
	gr = uniseg.NewGraphemes(text)
	for currentVisualPos < startVisualPos && gr.Next() {
		startBytePos += len(gr.Str())
		currentVisualPos += max(1, gr.Width())
	}

	truncatedText := text[startBytePos:]
	truncatedText = ansi.Truncate(truncatedText, availableWidth, "")
	truncatedText = "…" + truncatedText

	adjustedIndexes := []int{}
	for _, idx := range matchIndexes {
		if idx >= startBytePos {
			newIdx := idx - startBytePos + 1
			if newIdx < len(truncatedText) {
				adjustedIndexes = append(adjustedIndexes, newIdx)
			}
		}
	}

	return truncatedText, adjustedIndexes
}

func matchedRanges(in []int) [][2]int {
	if len(in) == 0 {
		return [][2]int{}
	}
	current := [2]int{in[0], in[0]}
	if len(in) == 1 {
		return [][2]int{current}
	}
	var out [][2]int
	for i := 1; i < len(in); i++ {
		if in[i] == current[1]+1 {
			current[1] = in[i]
		} else {
			out = append(out, current)
			current = [2]int{in[i], in[i]}
		}
	}
	out = append(out, current)
	return out
}

func bytePosToVisibleCharPos(str string, rng [2]int) (int, int) {
	bytePos, byteStart, byteStop := 0, rng[0], rng[1]
	pos, start, stop := 0, 0, 0
	gr := uniseg.NewGraphemes(str)
	for byteStart > bytePos {
		if !gr.Next() {
			break
		}
		bytePos += len(gr.Str())
		pos += max(1, gr.Width())
	}
	start = pos
	for byteStop > bytePos {
		if !gr.Next() {
			break
		}
		bytePos += len(gr.Str())
		pos += max(1, gr.Width())
	}
	stop = pos
	return start, stop
}
