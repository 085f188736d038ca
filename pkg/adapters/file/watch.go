package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// Watch observes the pattern's base directory (recursively when the pattern
// contains "**") and every ExtraWatch entry. Each relevant event sends the
// changed path. Chmod-only events are ignored.
func (s *Source) Watch(ctx context.Context) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dirs, err := s.watchDirs()
	if err != nil {
		w.Close()
		return nil, err
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", d, err)
		}
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op == fsnotify.Chmod {
					continue
				}
				select {
				case out <- ev.Name:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

// watchDirs lists the directories to register with fsnotify, deduplicated.
func (s *Source) watchDirs() ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		d = filepath.Clean(d)
		if !seen[d] {
			seen[d] = true
			dirs = append(dirs, d)
		}
	}

	base, _ := doublestar.SplitPattern(filepath.ToSlash(s.Pattern))
	root := s.resolve(filepath.FromSlash(base))
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("watch root %s: %w", root, err)
	}

	if strings.Contains(s.Pattern, "**") {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	} else {
		add(root)
	}

	for _, extra := range s.ExtraWatch {
		info, err := os.Stat(extra)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", extra, err)
		}
		if info.IsDir() {
			add(extra)
		} else {
			// Editors replace files on save; watching the parent catches that.
			add(filepath.Dir(extra))
		}
	}

	return dirs, nil
}
