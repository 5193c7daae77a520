package api

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func newDumpDir(datadir string) *dumpDir {
	return &dumpDir{datadir: datadir}
}

// dumpDir saves documents into datadir/path/fname.
type dumpDir struct {
	datadir string
}

func (self *dumpDir) Save(path, fname string, r io.Reader) error {
	if err := self.makePath(path); err != nil {
		return err
	}

	path = filepath.Join(self.datadir, path, fname)
	w, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed create %q: %w", path, err)
	}

	if _, err = io.Copy(w, r); err != nil {
		w.Close()
		return fmt.Errorf("failed write into %q: %w", path, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed close %q: %w", path, err)
	}
	return nil
}

func (self *dumpDir) makePath(path string) error {
	dir, err := os.Stat(self.datadir)
	if err != nil {
		return fmt.Errorf("makePath %q: %w", self.datadir, err)
	} else if !dir.IsDir() {
		return fmt.Errorf("makePath: %q not a directory", self.datadir)
	}

	path = filepath.Join(self.datadir, path)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("mkdir %q: %w", path, err)
	}
	return nil
}
