// Package console prints the human-readable progress of a rewrite run.
package console

import (
	"fmt"
	"io"
	"strings"

	"articlefix/internal/batch"
	"articlefix/internal/diff"
	"articlefix/internal/rewrite"

	"github.com/fatih/color"
)

// Console writes progress lines to an io.Writer. It implements
// batch.Reporter.
type Console struct {
	w io.Writer

	header  *color.Color
	info    *color.Color
	success *color.Color
	failure *color.Color
	added   *color.Color
	removed *color.Color
	hunk    *color.Color
}

// New creates a Console writing to w. Colors are emitted only when colored
// is true.
func New(w io.Writer, colored bool) *Console {
	c := &Console{
		w:       w,
		header:  color.New(color.Bold),
		info:    color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		hunk:    color.New(color.FgCyan),
	}
	for _, col := range []*color.Color{c.header, c.info, c.success, c.failure, c.added, c.removed, c.hunk} {
		if colored {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

func (c *Console) Start() {
	c.header.Fprintln(c.w, "🔧 Fixing article readability across all pages...")
}

func (c *Console) NoFiles() {
	c.failure.Fprintln(c.w, "❌ No article files found!")
}

func (c *Console) Found(n int) {
	c.info.Fprintf(c.w, "📋 Found %d article files\n", n)
}

func (c *Console) Processing(path string) {
	fmt.Fprintf(c.w, "📝 Processing: %s\n", path)
}

func (c *Console) Done(result rewrite.Result) {
	if !result.OK() {
		c.failure.Fprintf(c.w, "❌ Error processing %s: %v\n", result.Path, result.Err)
		return
	}
	c.success.Fprintf(c.w, "✅ Updated: %s\n", result.Path)
}

// Diff prints the formatted diff of path, coloring added and removed lines.
func (c *Console) Diff(path string, d *diff.Result) {
	if d.Empty() {
		return
	}
	fmt.Fprintf(c.w, "\ndiff a/%s b/%s\n", path, path)
	for _, line := range strings.Split(strings.TrimSuffix(d.Format(), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			c.hunk.Fprintln(c.w, line)
		case strings.HasPrefix(line, "+"):
			c.added.Fprintln(c.w, line)
		case strings.HasPrefix(line, "-"):
			c.removed.Fprintln(c.w, line)
		default:
			fmt.Fprintln(c.w, line)
		}
	}
	fmt.Fprintln(c.w)
}

func (c *Console) Summary(report *batch.Report) {
	fmt.Fprintln(c.w)
	if report.Failed() == 0 {
		c.header.Fprintln(c.w, "🎉 All article pages updated with improved readability!")
	} else {
		c.header.Fprintln(c.w, "⚠️  Article pages updated with errors, see above.")
	}
	fmt.Fprintf(c.w, "📊 %d processed: %d changed, %d unchanged, %d failed\n",
		report.Processed(), report.Changed(), report.Unchanged(), report.Failed())

	fmt.Fprintln(c.w, "📋 Changes made:")
	fmt.Fprintln(c.w, "   - Added white background containers to all articles")
	fmt.Fprintln(c.w, "   - Improved text contrast and readability")
	fmt.Fprintln(c.w, "   - Maintained responsive design")

	fmt.Fprintln(c.w, "\n💡 Next steps:")
	fmt.Fprintln(c.w, "   1. Test with: npm run build")
	fmt.Fprintln(c.w, "   2. Deploy to see the improvements")
	fmt.Fprintf(c.w, "   3. Originals are kept next to each article as *%s\n", rewrite.BackupSuffix)
}
