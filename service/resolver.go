package service

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nanaki-93/lsr/model"
)

const ownerCacheSize = 256

// ResolveOptions selects how much metadata is collected for an entry.
type ResolveOptions struct {
	// Detail fills permissions, owner, time and size fields
	Detail bool
	// Size computes recursive directory sizes, only honored with Detail
	Size bool
}

// MetadataResolver builds the entry record for a single path
type MetadataResolver interface {
	Resolve(path string, opts ResolveOptions) (model.Entry, error)
}

// Resolver implements MetadataResolver against the local filesystem.
// It is safe for concurrent use.
type Resolver struct {
	logger Logger
	now    func() time.Time
	lookup func(uid uint32) (string, error)
	owners *lru.Cache[uint32, string]
}

func NewResolver(logger Logger) *Resolver {
	// lru.New only fails for a non-positive size
	owners, _ := lru.New[uint32, string](ownerCacheSize)
	return &Resolver{
		logger: logger,
		now:    time.Now,
		lookup: lookupUser,
		owners: owners,
	}
}

func (r *Resolver) Resolve(path string, opts ResolveOptions) (model.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.Entry{}, metadataError(path, err)
	}

	kind := model.KindOf(info.Mode())
	entry := model.Entry{
		Path:  path,
		Name:  displayName(path),
		Kind:  kind,
		Color: model.ColorOf(kind, info.Mode()),
	}
	if !opts.Detail {
		return entry, nil
	}

	entry.Mode = info.Mode()
	entry.Permissions = model.Permissions(info.Mode())
	entry.Owner = r.ownerName(path, info)
	entry.ModTime = info.ModTime()
	entry.TimeStr = model.FormatTime(entry.ModTime, r.now())

	switch {
	case kind == model.KindFile:
		entry.Size = uint64(info.Size())
	case kind == model.KindDirectory && opts.Size:
		size, err := dirSize(path)
		if err != nil {
			return model.Entry{}, &model.MetadataError{Path: path, Kind: model.ErrTraversal, Err: err}
		}
		entry.Size = size
	}
	entry.HumanSize = model.HumanSize(entry.Size)

	return entry, nil
}

func (r *Resolver) ownerName(path string, info fs.FileInfo) string {
	uid, ok := ownerID(info)
	if !ok {
		return model.UnknownOwner
	}
	if name, ok := r.owners.Get(uid); ok {
		return name
	}

	name, err := r.lookup(uid)
	if err != nil || name == "" {
		r.logger.Debug("owner lookup failed", "path", path, "uid", uid, "error", err)
		name = model.UnknownOwner
	}
	r.owners.Add(uid, name)
	return name
}

// displayName is the basename of path, or path itself for roots.
func displayName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return path
	}
	return name
}

func metadataError(path string, err error) error {
	kind := model.ErrMetadataUnreadable
	if errors.Is(err, fs.ErrNotExist) {
		kind = model.ErrNotFound
	}
	return &model.MetadataError{Path: path, Kind: kind, Err: err}
}
