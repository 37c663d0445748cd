package item

import (
	"fmt"
)

// Rooter resolves a possibly-relative item path to its fully-qualified, canonical form. The
// resolution must be deterministic so that rooted paths compare stably after case folding.
type Rooter interface {
	MakeRooted(p Path) (Path, error)
}

// RooterFunc adapts a plain function to the Rooter interface.
type RooterFunc func(p Path) (Path, error)

func (f RooterFunc) MakeRooted(p Path) (Path, error) {
	return f(p)
}

// DirRooter roots relative paths under a base directory, normalizing all separators to "/".
// Absolute paths pass through with separators normalized only.
type DirRooter struct {
	dir string
}

func NewDirRooter(dir string) DirRooter {
	return DirRooter{
		dir: string(Path(dir).Clean()),
	}
}

func (r DirRooter) MakeRooted(p Path) (Path, error) {
	if len(p.Segments()) == 0 {
		return "", fmt.Errorf("cannot root empty path %q", string(p))
	}
	if p.IsAbsolute() {
		return p.Clean(), nil
	}
	if r.dir == "" {
		return DirSeparator + p.Clean(), nil
	}
	return Path(r.dir) + DirSeparator + p.Clean(), nil
}
