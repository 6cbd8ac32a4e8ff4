package include

import (
	"path"

	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/value"
)

// MapLoader is an in-memory [Loader] backed by a fixed map of absolute
// path to TML source, for tests that exercise the resolver without
// touching a filesystem.
type MapLoader struct {
	Files map[string]string
	dirs  []string
}

// NewMapLoader returns a [MapLoader] serving files, resolving top-level
// include paths relative to baseDir.
func NewMapLoader(files map[string]string, baseDir string) *MapLoader {
	return &MapLoader{Files: files, dirs: []string{baseDir}}
}

func (l *MapLoader) Resolve(relative string) (string, error) {
	base := l.dirs[len(l.dirs)-1]
	return path.Clean(path.Join(base, relative)), nil
}

func (l *MapLoader) LoadAndPush(absolute string) (value.Value, error) {
	src, ok := l.Files[absolute]
	if !ok {
		return value.Value{}, ErrNotFound
	}

	tree, err := tml.ParseString(src, tml.Options{
		Filename: absolute, KeepComments: true, KeepEmptyLines: true,
	})
	if err != nil {
		return value.Value{}, err
	}

	l.dirs = append(l.dirs, path.Dir(absolute))

	return tree, nil
}

func (l *MapLoader) Pop() {
	if len(l.dirs) > 1 {
		l.dirs = l.dirs[:len(l.dirs)-1]
	}
}

func (l *MapLoader) NestedDepth() int {
	return len(l.dirs) - 1
}
