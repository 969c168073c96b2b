// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio provides atomic file writing with optional backups.
package atomicio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"
)

const (
	backupTimeFormat = "20060102150405.000000000"
	maxBackups       = 10
)

// Options control how [WriteFile] replaces a file.
type Options struct {
	// Backup keeps the previous contents of the file next to it, in a file
	// named name.TIMESTAMP.bak. Only the newest backups are kept.
	Backup bool
	// Perm is used when the file doesn't exist yet. Existing files keep their
	// permissions. Zero means 0o644.
	Perm fs.FileMode
}

// WriteFile writes data to a file atomically. Readers of name observe either
// the old or the new contents, never a partial write.
//
// If name is a symlink, the file it points to is replaced and the link is
// kept. Backups are made next to that file.
func WriteFile(name string, data []byte, opts Options) (err error) {
	if target, err := filepath.EvalSymlinks(name); err == nil {
		name = target
	}

	perm := opts.Perm
	if perm == 0 {
		perm = 0o644
	}
	fi, err := os.Stat(name)
	switch {
	case err == nil:
		perm = fi.Mode().Perm()
	case errors.Is(err, fs.ErrNotExist):
		fi = nil
	default:
		return err
	}

	// The temporary file must be on the same filesystem for os.Rename to be
	// atomic.
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Chmod(perm); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if opts.Backup && fi != nil {
		backupName := name + "." + time.Now().UTC().Format(backupTimeFormat) + ".bak"
		if err := os.Link(name, backupName); err != nil {
			return err
		}
	}

	if err := os.Rename(f.Name(), name); err != nil {
		return err
	}

	if opts.Backup {
		return pruneBackups(name)
	}
	return nil
}

// Backups returns backups of the named file, oldest first.
func Backups(name string) ([]string, error) {
	backups, err := filepath.Glob(name + ".*.bak")
	if err != nil {
		return nil, err
	}
	slices.Sort(backups)
	return backups, nil
}

func pruneBackups(name string) error {
	backups, err := Backups(name)
	if err != nil {
		return err
	}
	if len(backups) <= maxBackups {
		return nil
	}
	for _, b := range backups[:len(backups)-maxBackups] {
		if err := os.Remove(b); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
