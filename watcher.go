package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// fsChangeMsg is sent when the working tree or git metadata changes,
// prompting the picker to refresh its file list.
type fsChangeMsg struct {
	at time.Time
}

// repoWatcher watches the working tree and key .git paths so the picker can
// re-list files while the user has it open.
type repoWatcher struct {
	watcher *fsnotify.Watcher
	root    string
	gitDir  string
	active  bool
}

func newRepoWatcher(root string) (*repoWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &repoWatcher{
		watcher: fsWatcher,
		root:    root,
		gitDir:  filepath.Join(root, ".git"),
	}

	if err := w.watchTree(root); err != nil {
		_ = fsWatcher.Close()
		return nil, err
	}

	// Index and refs drive what the active plan diffs against.
	gitPaths := []string{
		w.gitDir,
		filepath.Join(w.gitDir, "HEAD"),
		filepath.Join(w.gitDir, "index"),
		filepath.Join(w.gitDir, "refs"),
		filepath.Join(w.gitDir, "refs", "heads"),
		filepath.Join(w.gitDir, "refs", "remotes"),
	}
	for _, p := range gitPaths {
		if _, err := os.Stat(p); err == nil {
			_ = fsWatcher.Add(p)
		}
	}

	w.active = true
	return w, nil
}

// NextChange blocks until a relevant file system event arrives.
func (w *repoWatcher) NextChange() tea.Cmd {
	return func() tea.Msg {
		if !w.active {
			return errMsg{errors.New("watcher is not running")}
		}

		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = w.watchTree(event.Name)
					}
				}
				// Debounce bursts from editors writing temp files.
				time.Sleep(50 * time.Millisecond)
				return fsChangeMsg{at: time.Now()}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return errMsg{errors.New("watcher closed")}
				}
				return errMsg{err}
			}
		}
	}
}

func (w *repoWatcher) Close() error {
	if !w.active {
		return nil
	}
	w.active = false
	return w.watcher.Close()
}

func (w *repoWatcher) watchTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if w.insideGitDir(path) {
			return filepath.SkipDir
		}
		_ = w.watcher.Add(path)
		return nil
	})
}

func (w *repoWatcher) insideGitDir(path string) bool {
	if path == w.gitDir {
		return true
	}
	return strings.HasPrefix(path, w.gitDir+string(os.PathSeparator))
}
