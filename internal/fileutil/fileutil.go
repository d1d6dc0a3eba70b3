// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrSourceNotDir   = errors.New("source is not a directory")
	ErrUnsafeMirror   = errors.New("refusing to mirror between nested directories")
	ErrSymlinkCycle   = errors.New("symlink cycle")
	ErrEmptyPath      = errors.New("path cannot be empty")
	ErrDestinationDir = errors.New("destination is a directory")
)

// Permissions for files and directories created by this package.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// WriteFileAtomic writes content to path through a temporary file in the
// same directory, then renames it into place. Parent directories are created
// as needed. Readers never observe a partially written file.
func WriteFileAtomic(path, content string) (err error) {
	if path == "" {
		return ErrEmptyPath
	}
	if DirExists(path) {
		return fmt.Errorf("%w: %s", ErrDestinationDir, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if chmodErr := os.Chmod(tmpPath, FilePerm); chmodErr != nil {
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}
	return nil
}

// MirrorDir makes dst an exact copy of src: dst is removed, recreated and
// filled with every file and directory under src. File modes are preserved.
// Symlinks are followed, so a linked file is copied as its target and a
// linked directory as its contents; a link back into one of its own
// ancestors is an error.
// dst may not be src, one of its ancestors, or a directory inside src.
// Returns the number of regular files copied.
func MirrorDir(src, dst string) (int, error) {
	if src == "" || dst == "" {
		return 0, ErrEmptyPath
	}

	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("reading source %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrSourceNotDir, src)
	}

	for _, pair := range [][2]string{{dst, src}, {src, dst}} {
		inside, err := IsWithin(pair[0], pair[1])
		if err != nil {
			return 0, err
		}
		if inside {
			return 0, fmt.Errorf("%w: %s -> %s", ErrUnsafeMirror, src, dst)
		}
	}

	if err := os.RemoveAll(dst); err != nil {
		return 0, fmt.Errorf("clearing %s: %w", dst, err)
	}

	m := &mirror{active: map[string]bool{}}
	if err := m.copyDir(src, dst); err != nil {
		return m.count, fmt.Errorf("mirroring %s to %s: %w", src, dst, err)
	}
	return m.count, nil
}

// mirror holds the state of one MirrorDir call. active lists the resolved
// directories currently being copied, to detect symlink cycles.
type mirror struct {
	count  int
	active map[string]bool
}

func (m *mirror) copyDir(src, dst string) error {
	resolved, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}
	if m.active[resolved] {
		return fmt.Errorf("%w: %s", ErrSymlinkCycle, src)
	}
	m.active[resolved] = true
	defer delete(m.active, resolved)

	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		fi, err := os.Stat(from)
		if err != nil {
			return err
		}
		switch {
		case fi.IsDir():
			if err := m.copyDir(from, to); err != nil {
				return err
			}
		case fi.Mode().IsRegular():
			if err := copyFile(from, to, fi.Mode().Perm()); err != nil {
				return err
			}
			m.count++
		}
	}
	return nil
}

// IsWithin reports whether ancestor is dir itself or one of its parents.
func IsWithin(ancestor, dir string) (bool, error) {
	a, err := filepath.Abs(ancestor)
	if err != nil {
		return false, err
	}
	d, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(a, d)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src) // #nosec G304 -- walked from the static directory
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) // #nosec G304 -- under the output directory
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "blog" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "../shared/site.yaml" -> true (parent path)
//   - "C:\sites\blog.yaml" -> true (Windows)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReplaceExt swaps the extension of path for ext, which includes the dot.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
