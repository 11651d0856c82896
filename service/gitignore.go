package service

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const gitignoreFile = ".gitignore"

// IgnoreFilter reports whether a child of the listed directory is hidden by
// its .gitignore.
type IgnoreFilter interface {
	Ignored(name string, isDir bool) bool
}

type gitIgnoreFilter struct {
	matcher gitignore.Matcher
}

// LoadGitIgnore reads the .gitignore of dir. A missing file yields a filter
// that ignores nothing.
func LoadGitIgnore(dir string) (IgnoreFilter, error) {
	f, err := os.Open(filepath.Join(dir, gitignoreFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &gitIgnoreFilter{matcher: gitignore.NewMatcher(nil)}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", gitignoreFile, err)
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", gitignoreFile, err)
	}

	return &gitIgnoreFilter{matcher: gitignore.NewMatcher(patterns)}, nil
}

func (g *gitIgnoreFilter) Ignored(name string, isDir bool) bool {
	return g.matcher.Match([]string{name}, isDir)
}
