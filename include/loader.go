package include

import (
	"fmt"
	"os"
	"path/filepath"

	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/value"
)

// Loader resolves relative include paths against the file currently being
// processed, loads and parses a document, and tracks nesting depth as the
// resolver pushes into and pops out of included files.
type Loader interface {
	// Resolve turns a path written in an include record into an absolute
	// path, relative to whichever file is currently on top of the
	// loader's stack.
	Resolve(relative string) (string, error)
	// LoadAndPush parses the document at absolute and pushes its
	// directory as the new base for subsequent Resolve calls.
	LoadAndPush(absolute string) (value.Value, error)
	// Pop undoes the last LoadAndPush.
	Pop()
	// NestedDepth reports how many LoadAndPush calls are outstanding.
	NestedDepth() int
}

// OSLoader is the default [Loader]: it reads real files from disk and
// parses them as TML.
type OSLoader struct {
	dirs []string
}

// NewOSLoader returns an [OSLoader] that resolves top-level include paths
// relative to baseDir.
func NewOSLoader(baseDir string) *OSLoader {
	return &OSLoader{dirs: []string{baseDir}}
}

func (l *OSLoader) Resolve(relative string) (string, error) {
	base := l.dirs[len(l.dirs)-1]
	return filepath.Clean(filepath.Join(base, relative)), nil
}

func (l *OSLoader) LoadAndPush(absolute string) (value.Value, error) {
	data, err := os.ReadFile(absolute)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	tree, err := tml.ParseString(string(data), tml.Options{
		Filename: absolute, KeepComments: true, KeepEmptyLines: true,
	})
	if err != nil {
		return value.Value{}, err
	}

	l.dirs = append(l.dirs, filepath.Dir(absolute))

	return tree, nil
}

func (l *OSLoader) Pop() {
	if len(l.dirs) > 1 {
		l.dirs = l.dirs[:len(l.dirs)-1]
	}
}

func (l *OSLoader) NestedDepth() int {
	return len(l.dirs) - 1
}
