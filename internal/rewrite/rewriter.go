// internal/rewrite/rewriter.go
package rewrite

import (
	"unicode/utf8"

	apperrors "articlefix/internal/errors"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// BackupSuffix is appended to a file's path to name its backup.
const BackupSuffix = ".backup"

// Result is the outcome of rewriting a single file.
type Result struct {
	Path    string
	Changed bool
	Stats   Stats
	Err     error

	// Before and After hold the file content; they are empty on failure.
	Before string
	After  string
}

// OK reports whether the file was rewritten without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Rewriter backs up and rewrites files in place.
type Rewriter struct {
	fs     afero.Fs
	rules  []Rule
	logger *zap.Logger
}

// NewRewriter creates a Rewriter applying rules to files on fsys.
func NewRewriter(fsys afero.Fs, rules []Rule, logger *zap.Logger) *Rewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Rewriter{
		fs:     fsys,
		rules:  rules,
		logger: logger,
	}
}

// BackupPath returns where the backup of path is written.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// RewriteFile reads path, writes its backup, applies the rules and writes
// the result back. The file is written even when no rule matched. Failures
// are returned in the Result as *errors.Error.
func (r *Rewriter) RewriteFile(path string) Result {
	result := Result{Path: path}

	info, err := r.fs.Stat(path)
	if err != nil {
		result.Err = apperrors.ReadError(path, err)
		return result
	}
	mode := info.Mode().Perm()

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		result.Err = apperrors.ReadError(path, err)
		return result
	}
	if !utf8.Valid(data) {
		result.Err = apperrors.DecodeError(path)
		return result
	}

	backup := BackupPath(path)
	if err := afero.WriteFile(r.fs, backup, data, mode); err != nil {
		result.Err = apperrors.BackupError(path, err)
		return result
	}
	// WriteFile only applies mode when it creates the file.
	if err := r.fs.Chmod(backup, mode); err != nil {
		result.Err = apperrors.BackupError(path, err)
		return result
	}
	r.logger.Debug("backup written", zap.String("path", backup), zap.Int("bytes", len(data)))

	before := string(data)
	after, stats := Transform(before, r.rules)

	if err := afero.WriteFile(r.fs, path, []byte(after), mode); err != nil {
		result.Err = apperrors.WriteError(path, err)
		return result
	}

	r.logger.Debug("file rewritten",
		zap.String("path", path),
		zap.Int(RuleOpening, stats[RuleOpening]),
		zap.Int(RuleClosing, stats[RuleClosing]),
		zap.Int("total", stats.Total()),
	)

	result.Stats = stats
	result.Changed = after != before
	result.Before = before
	result.After = after
	return result
}
