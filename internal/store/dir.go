package store

import (
	"context"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"

	"github.com/Iron-Ham/feeflow/internal/errors"
)

// Dir serves objects from a directory tree. The object name is a
// slash-separated path relative to the root.
type Dir struct {
	fs afero.Fs
}

// NewDir creates a Dir over fsys rooted at root.
func NewDir(fsys afero.Fs, root string) *Dir {
	if root == "" || root == "." {
		return &Dir{fs: fsys}
	}
	return &Dir{fs: afero.NewBasePathFs(fsys, root)}
}

// NewOSDir creates a Dir over the host filesystem.
func NewOSDir(root string) *Dir {
	return NewDir(afero.NewOsFs(), root)
}

// Fetch implements Store.
func (d *Dir) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(BackendDir, name); err != nil {
		return nil, err
	}
	if err := canceled(ctx, BackendDir, name); err != nil {
		return nil, err
	}

	p := path.Clean("/" + name)
	info, err := d.fs.Stat(p)
	if err == nil && info.IsDir() {
		return nil, errors.NewFetchError(name, errors.ErrObjectNotFound).
			WithBackend(BackendDir).
			WithMessage("object is a directory")
	}

	data, err := afero.ReadFile(d.fs, p)
	if err != nil {
		cause := err
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			cause = errors.Join(errors.ErrObjectNotFound, err)
		}
		return nil, errors.NewFetchError(name, cause).WithBackend(BackendDir)
	}
	return data, nil
}
