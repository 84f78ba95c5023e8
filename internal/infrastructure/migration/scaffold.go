package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const upTemplate = `-- %s
-- Created: %s

-- UP migration

`

const downTemplate = `-- %s (rollback)
-- Created: %s

-- DOWN migration

`

// FilePair is the up/down file pair produced for a new migration.
type FilePair struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// Scaffold writes an empty up/down migration pair into dir, creating the
// directory if needed. Versions are second-resolution timestamps so the
// files sort in creation order.
func Scaffold(dir, name string) (*FilePair, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now()
	version := now.Format("20060102150405")
	base := version + "_" + slugify(name)

	pair := &FilePair{
		Version:  version,
		Name:     name,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}

	created := now.Format(time.RFC3339)
	if err := os.WriteFile(pair.UpPath, fmt.Appendf(nil, upTemplate, name, created), 0o644); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}
	if err := os.WriteFile(pair.DownPath, fmt.Appendf(nil, downTemplate, name, created), 0o644); err != nil {
		_ = os.Remove(pair.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}

	return pair, nil
}

// List returns the base names of the migrations found in dir, one entry
// per up/down pair. A missing directory is treated as empty.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries)/2)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	return names, nil
}

// slugify lowercases a migration name and collapses separators to single
// underscores, dropping everything else.
func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			s := b.String()
			if len(s) > 0 && !strings.HasSuffix(s, "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
