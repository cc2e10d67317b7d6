package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"articlefix/internal/batch"
	"articlefix/internal/diff"
	"articlefix/internal/rewrite"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const article = "<main class=\"main\">\n\t\t<div class=\"container\">\n\t\t\tBody\n\t\t</div>\n\t</main>"

func run(t *testing.T, fsys afero.Fs, opts batch.Options) (string, *batch.Report) {
	var buf bytes.Buffer
	logger := zaptest.NewLogger(t)
	runner := batch.NewRunner(fsys, rewrite.NewRewriter(fsys, rewrite.ArticleRules, logger), New(&buf, false), opts, logger)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	return buf.String(), report
}

func TestConsole_BatchWithFailure(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "src/pages/articles/one.astro", []byte(article), 0644))
	require.NoError(t, afero.WriteFile(fsys, "src/pages/articles/two.astro", []byte("\xc3\x28 broken"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "src/pages/articles/three.astro", []byte(article), 0644))

	out, report := run(t, fsys, batch.Options{})

	assert.Equal(t, 1, report.Failed())
	assert.Equal(t, 2, report.Changed())

	lines := strings.Split(out, "\n")
	var errorLines []string
	for _, line := range lines {
		if strings.Contains(line, "Error processing") {
			errorLines = append(errorLines, line)
		}
	}
	require.Len(t, errorLines, 1)
	assert.Contains(t, errorLines[0], "src/pages/articles/two.astro")
	assert.Contains(t, errorLines[0], "not valid UTF-8")

	assert.Contains(t, out, "🔧 Fixing article readability across all pages...\n")
	assert.Contains(t, out, "📋 Found 3 article files\n")
	assert.Contains(t, out, "📝 Processing: src/pages/articles/one.astro\n")
	assert.Contains(t, out, "✅ Updated: src/pages/articles/one.astro\n")
	assert.Contains(t, out, "✅ Updated: src/pages/articles/three.astro\n")
	assert.NotContains(t, out, "✅ Updated: src/pages/articles/two.astro")
	assert.Contains(t, out, "📊 3 processed: 2 changed, 0 unchanged, 1 failed\n")
	assert.Contains(t, out, "with errors")
	assert.NotContains(t, out, "\x1b[", "no escape codes when color is off")
}

func TestConsole_NoFiles(t *testing.T) {
	out, _ := run(t, afero.NewMemMapFs(), batch.Options{})

	assert.Equal(t,
		"🔧 Fixing article readability across all pages...\n❌ No article files found!\n",
		out,
	)
}

func TestConsole_Success(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "src/pages/articles/one.astro", []byte(article), 0644))

	out, _ := run(t, fsys, batch.Options{ShowDiff: true})

	assert.Contains(t, out, "🎉 All article pages updated with improved readability!")
	assert.Contains(t, out, "diff a/src/pages/articles/one.astro b/src/pages/articles/one.astro\n")
	assert.Contains(t, out, "+ \t\t<div class=\"article-container\">\n")
	assert.Contains(t, out, "- \t\t<div class=\"container\">\n")
	assert.Contains(t, out, "npm run build")
}

func TestConsole_Diff(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Diff("same.astro", diff.NewEngine(3).Diff("a\n", "a\n"))
	assert.Empty(t, buf.String())

	c.Diff("x.astro", diff.NewEngine(0).Diff("a\nb\n", "a\nc\n"))
	assert.Equal(t, "\ndiff a/x.astro b/x.astro\n@@ -2,1 +2,1 @@\n- b\n+ c\n\n", buf.String())
}

func TestConsole_Colored(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).NoFiles()
	assert.Contains(t, buf.String(), "\x1b[31m")

	buf.Reset()
	New(&buf, true).Diff("x.astro", diff.NewEngine(0).Diff("a\nb\n", "a\nc\n"))
	out := buf.String()
	assert.Contains(t, out, "\x1b[36m@@ -2,1 +2,1 @@")
	assert.Contains(t, out, "\x1b[31m- b")
	assert.Contains(t, out, "\x1b[32m+ c")
}
