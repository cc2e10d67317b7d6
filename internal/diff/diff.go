// internal/diff/diff.go
package diff

import (
	"fmt"
	"strings"
)

// LineType indicates whether a line was added, removed, or is context
type LineType int

const (
	Context LineType = iota
	Addition
	Deletion
)

// Line is a single line of a diff. OldNum and NewNum are 1-based and zero
// when the line does not exist on that side.
type Line struct {
	Type    LineType
	Content string
	OldNum  int
	NewNum  int
}

// Hunk is a continuous run of changes with its surrounding context
type Hunk struct {
	OldStart int
	OldLines int
	NewStart int
	NewLines int
	Lines    []Line
}

// Result contains the complete diff of two texts
type Result struct {
	Hunks []Hunk
	Stats struct {
		Additions int
		Deletions int
	}
}

// Empty reports whether the two texts had identical lines.
func (r *Result) Empty() bool {
	return len(r.Hunks) == 0
}

// Engine provides line diffing
type Engine struct {
	contextLines int
}

// NewEngine creates a new diff engine with specified context lines
func NewEngine(contextLines int) *Engine {
	if contextLines < 0 {
		contextLines = 0
	}
	return &Engine{contextLines: contextLines}
}

// Diff computes a line diff between oldText and newText.
func (e *Engine) Diff(oldText, newText string) *Result {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	lines := e.walk(oldLines, newLines)

	result := &Result{Hunks: e.group(lines)}
	for _, line := range lines {
		switch line.Type {
		case Addition:
			result.Stats.Additions++
		case Deletion:
			result.Stats.Deletions++
		}
	}
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// walk produces the full edit script from the longest common subsequence
// of the two line slices.
func (e *Engine) walk(oldLines, newLines []string) []Line {
	// lcs[i][j] is the LCS length of oldLines[i:] and newLines[j:]
	lcs := make([][]int, len(oldLines)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(newLines)+1)
	}
	for i := len(oldLines) - 1; i >= 0; i-- {
		for j := len(newLines) - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	var lines []Line
	i, j := 0, 0
	for i < len(oldLines) || j < len(newLines) {
		switch {
		case i < len(oldLines) && j < len(newLines) && oldLines[i] == newLines[j]:
			lines = append(lines, Line{Type: Context, Content: oldLines[i], OldNum: i + 1, NewNum: j + 1})
			i++
			j++
		case j < len(newLines) && (i == len(oldLines) || lcs[i][j+1] > lcs[i+1][j]):
			lines = append(lines, Line{Type: Addition, Content: newLines[j], NewNum: j + 1})
			j++
		default:
			lines = append(lines, Line{Type: Deletion, Content: oldLines[i], OldNum: i + 1})
			i++
		}
	}
	return lines
}

// group splits the edit script into hunks, keeping contextLines of
// unchanged lines around each change and merging hunks whose context
// would overlap.
func (e *Engine) group(lines []Line) []Hunk {
	var hunks []Hunk
	start, end := -1, -1

	flush := func() {
		if start < 0 {
			return
		}
		hunks = append(hunks, newHunk(lines, start, end))
		start, end = -1, -1
	}

	for idx, line := range lines {
		if line.Type == Context {
			continue
		}
		from := max(0, idx-e.contextLines)
		to := min(len(lines), idx+e.contextLines+1)
		if start >= 0 && from > end {
			flush()
		}
		if start < 0 {
			start = from
		}
		end = to
	}
	flush()

	return hunks
}

// newHunk builds the hunk spanning lines[start:end]. A side with no lines
// in the hunk starts at the last line of that side before it, as in
// unified diffs.
func newHunk(lines []Line, start, end int) Hunk {
	hunk := Hunk{Lines: lines[start:end]}
	for _, line := range hunk.Lines {
		if line.Type != Addition {
			hunk.OldLines++
			if hunk.OldStart == 0 {
				hunk.OldStart = line.OldNum
			}
		}
		if line.Type != Deletion {
			hunk.NewLines++
			if hunk.NewStart == 0 {
				hunk.NewStart = line.NewNum
			}
		}
	}

	for i := start - 1; i >= 0 && (hunk.OldLines == 0 || hunk.NewLines == 0); i-- {
		if hunk.OldLines == 0 && hunk.OldStart == 0 && lines[i].OldNum > 0 {
			hunk.OldStart = lines[i].OldNum
		}
		if hunk.NewLines == 0 && hunk.NewStart == 0 && lines[i].NewNum > 0 {
			hunk.NewStart = lines[i].NewNum
		}
		if (hunk.OldLines > 0 || hunk.OldStart > 0) && (hunk.NewLines > 0 || hunk.NewStart > 0) {
			break
		}
	}
	return hunk
}

// Header returns the unified-diff style range header of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
}

// Format returns a plain string representation of the diff
func (r *Result) Format() string {
	var buf strings.Builder

	for _, hunk := range r.Hunks {
		buf.WriteString(hunk.Header())
		buf.WriteString("\n")

		for _, line := range hunk.Lines {
			switch line.Type {
			case Addition:
				buf.WriteString("+ ")
			case Deletion:
				buf.WriteString("- ")
			case Context:
				buf.WriteString("  ")
			}
			buf.WriteString(line.Content)
			buf.WriteString("\n")
		}
	}

	return buf.String()
}
