package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nanaki-93/lsr/model"
)

// ScanOptions configures a directory listing
type ScanOptions struct {
	// ShowHidden includes names starting with a dot
	ShowHidden bool
	// Flatten lists a directory as a single entry instead of its children
	Flatten bool
	// Detail and Size are passed to the resolver for every entry
	Detail bool
	Size   bool
	// GitIgnore hides children matched by the directory's .gitignore
	GitIgnore bool
	// Workers bounds concurrent resolutions (0 = number of CPUs)
	Workers int
}

func (o ScanOptions) resolveOptions() ResolveOptions {
	return ResolveOptions{Detail: o.Detail, Size: o.Size}
}

// DirectoryScanner produces the unsorted listing for a path
type DirectoryScanner interface {
	Scan(ctx context.Context, path string, opts ScanOptions) ([]model.Entry, error)
}

type Scanner struct {
	resolver MetadataResolver
	logger   Logger
}

func NewScanner(logger Logger) *Scanner {
	return &Scanner{
		resolver: NewResolver(logger),
		logger:   logger,
	}
}

func NewScannerWithResolver(resolver MetadataResolver, logger Logger) *Scanner {
	return &Scanner{
		resolver: resolver,
		logger:   logger,
	}
}

// Scan lists path. A plain file, or any path when Flatten is set, yields a
// single entry. Every resolution failure aborts the listing.
func (s *Scanner) Scan(ctx context.Context, path string, opts ScanOptions) ([]model.Entry, error) {
	top, err := s.resolver.Resolve(path, ResolveOptions{})
	if err != nil {
		s.handleError(err, path)
		return nil, err
	}

	if !top.IsDir() || opts.Flatten {
		entry, err := s.resolver.Resolve(path, opts.resolveOptions())
		if err != nil {
			s.handleError(err, path)
			return nil, err
		}
		return []model.Entry{entry}, nil
	}

	children, err := s.listChildren(path, opts)
	if err != nil {
		s.handleError(err, path)
		return nil, err
	}

	entries, err := s.resolveAll(ctx, children, opts)
	if err != nil {
		s.handleError(err, path)
		return nil, err
	}
	return entries, nil
}

func (s *Scanner) listChildren(path string, opts ScanOptions) ([]string, error) {
	dirEntries, err := s.readDirectory(path)
	if err != nil {
		return nil, err
	}

	var ignore IgnoreFilter
	if opts.GitIgnore {
		ignore, err = LoadGitIgnore(path)
		if err != nil {
			return nil, err
		}
	}

	children := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		name := entry.Name()
		if !opts.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if ignore != nil && ignore.Ignored(name, entry.IsDir()) {
			s.logger.Debug("skipping ignored entry", "name", name)
			continue
		}
		children = append(children, filepath.Join(path, name))
	}
	return children, nil
}

func (s *Scanner) readDirectory(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, metadataError(path, fmt.Errorf("failed to read directory: %w", err))
	}
	return entries, nil
}

// resolveAll resolves every path on a bounded pool. Each goroutine writes
// only its own slot of the result slice.
func (s *Scanner) resolveAll(ctx context.Context, paths []string, opts ScanOptions) ([]model.Entry, error) {
	results := make([]model.Entry, len(paths))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry, err := s.resolver.Resolve(p, opts.resolveOptions())
			if err != nil {
				return err
			}
			results[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("resolved entries", "count", len(results), "workers", workers)
	return results, nil
}

func (s *Scanner) handleError(err error, path string) {
	if errors.Is(err, fs.ErrPermission) {
		s.logger.Debug("permission denied", "path", path)
	} else {
		s.logger.Debug("failed to list path", "path", path, "error", err)
	}
}
