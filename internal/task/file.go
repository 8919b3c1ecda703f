package task

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/antopolskiy/cardboard-md/internal/date"
)

// ReadFile parses one markdown document from disk. The path doubles as the
// source identifier, and a daily-note file name ("2006-01-02.md") supplies
// the fallback due date for lines without one. A missing file yields an
// empty collection, which is how a deletion flows through ReplaceForFile.
func ReadFile(path string) (Collection, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, nil
		}
		return Collection{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var fallback *date.Day
	if d, ok := date.FromPath(path); ok {
		fallback = &d
	}
	return Parse(string(data), path, fallback), nil
}

// ReadAll parses every markdown document under notesDir, walking nested
// directories, in lexical walk order. A missing directory yields an empty
// collection.
func ReadAll(notesDir string) (Collection, error) {
	var cols []Collection
	err := filepath.WalkDir(notesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		c, err := ReadFile(path)
		if err != nil {
			return err
		}
		cols = append(cols, c)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return Collection{}, nil
		}
		return Collection{}, fmt.Errorf("reading notes dir: %w", err)
	}
	return Concat(cols), nil
}

// NoteDirs lists notesDir and every nested directory, the set a watcher
// needs to cover the whole vault.
func NoteDirs(notesDir string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(notesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing note directories: %w", err)
	}
	return dirs, nil
}
