package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// localDisk is the local-filesystem driver.
type localDisk struct {
	root    string // absolute root directory
	baseURL string // public URL prefix for URL()
}

// NewLocal returns a disk rooted at root. A relative root is resolved
// against the working directory.
func NewLocal(root, baseURL string) Disk {
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &localDisk{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (d *localDisk) abs(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(d.root, filepath.FromSlash(p))
}

func (d *localDisk) Put(p string, content []byte) error {
	full := d.abs(p)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage/local: mkdir: %w", err)
	}
	// Write to a sibling temp file first so a failed write never truncates p.
	tmp, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".*")
	if err != nil {
		return fmt.Errorf("storage/local: create %s: %w", p, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("storage/local: write %s: %w", p, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage/local: write %s: %w", p, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("storage/local: chmod %s: %w", p, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return fmt.Errorf("storage/local: rename %s: %w", p, err)
	}
	return nil
}

func (d *localDisk) Get(p string) ([]byte, error) {
	data, err := os.ReadFile(d.abs(p))
	if err != nil {
		return nil, fmt.Errorf("storage/local: get %s: %w", p, err)
	}
	return data, nil
}

func (d *localDisk) Exists(p string) bool {
	info, err := os.Stat(d.abs(p))
	return err == nil && !info.IsDir()
}

func (d *localDisk) URL(p string) string {
	return d.baseURL + "/" + strings.TrimLeft(filepath.ToSlash(p), "/")
}

func (d *localDisk) Copy(src, dst string) error {
	data, err := d.Get(src)
	if err != nil {
		return err
	}
	return d.Put(dst, data)
}

func (d *localDisk) Files(directory string) ([]string, error) {
	entries, err := os.ReadDir(d.abs(directory))
	if err != nil {
		return nil, fmt.Errorf("storage/local: files %s: %w", directory, err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, path.Join(filepath.ToSlash(directory), e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
