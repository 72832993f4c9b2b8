package fairvalue

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultFile is the well-known file holding the portfolio snapshot.
const DefaultFile = "portfolio.json"

// Load reads the portfolio snapshot from path.
//
// A missing file is a normal first run and yields an empty default
// portfolio. A corrupt file must not crash the application either: it is
// logged and the empty default is returned, the user keeps working.
func Load(path string) *Portfolio {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New()
	}
	if err != nil {
		log.Printf("could not open portfolio file %q: %v, starting empty", path, err)
		return New()
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		log.Printf("could not load portfolio file %q: %v, starting empty", path, err)
		return New()
	}
	return p
}

// Save writes the full portfolio snapshot to path, atomically: the snapshot
// is written to a temporary file first and renamed into place, so a crash
// mid-write never corrupts the previous save. On success the portfolio is
// marked clean.
func Save(path string, p *Portfolio) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, p); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write portfolio file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace portfolio file %q: %w", path, err)
	}

	p.markClean()
	return nil
}
