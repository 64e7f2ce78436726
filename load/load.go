/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading token documents.
package load

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cascade-design/cascade/config"
	"github.com/cascade-design/cascade/convert"
	"github.com/cascade-design/cascade/fs"
	"github.com/cascade-design/cascade/parser"
	"github.com/cascade-design/cascade/token"
)

// Options configures how token documents are loaded.
type Options struct {
	// Root is the directory relative paths and globs resolve against.
	// Defaults to the current directory.
	Root string

	// FS is the filesystem to use. Defaults to the OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher retrieves http(s) file entries. Nil disables remote
	// loading; remote entries then fail with an error.
	Fetcher Fetcher

	// FetchTimeout is the maximum time to wait for one remote fetch.
	// Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

// Load reads every file named by the config, in configured order, and
// merges the parsed sets so that later files override earlier ones.
//
// File entries may be plain paths, glob patterns (with ** support), or
// http(s) URLs when a Fetcher is configured. The result is an unresolved
// token set; resolution is the caller's concern.
func Load(ctx context.Context, cfg *config.Config, opts Options) (*token.Set, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	merged := token.NewSet()
	for _, entry := range cfg.Files {
		if isRemote(entry) {
			set, err := loadRemote(ctx, entry, opts)
			if err != nil {
				return nil, err
			}
			merged = convert.Merge(merged, set)
			continue
		}

		expanded, err := config.ExpandFile(filesystem, root, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", entry, err)
		}
		for _, path := range expanded {
			set, err := File(filesystem, path)
			if err != nil {
				return nil, err
			}
			merged = convert.Merge(merged, set)
		}
	}

	return merged, nil
}

// File reads and parses a single token document from the filesystem.
func File(filesystem fs.FileSystem, path string) (*token.Set, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	set, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return set, nil
}

// loadRemote fetches and parses one http(s) file entry.
func loadRemote(ctx context.Context, url string, opts Options) (*token.Set, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("remote file %s requires a fetcher", url)
	}

	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := opts.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	set, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return set, nil
}

// isRemote reports whether a file entry is an http(s) URL.
func isRemote(entry string) bool {
	return strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://")
}
