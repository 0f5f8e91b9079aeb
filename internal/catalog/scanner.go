// Package catalog builds the in-memory texture catalog from a folder
// of exported texture files.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"texwire/internal/config"
	"texwire/internal/errors"
	"texwire/internal/log"
	"texwire/pkg/types"

	"github.com/gobwas/glob"
)

// Scanner parses texture filenames against the configured naming
// schema. The expected form is {prefix}{material}{suffix}_{token}.{ext}.
type Scanner struct {
	prefix string
	suffix string
	match  glob.Glob
}

// New creates a scanner for the default naming schema.
func New() *Scanner {
	s, err := NewWithConfig(config.New())
	if err != nil {
		// The default extensions always compile
		panic(err)
	}
	return s
}

// NewWithConfig creates a scanner for the schema in cfg.
func NewWithConfig(cfg *config.Config) (*Scanner, error) {
	pattern := "*.{" + strings.Join(cfg.Naming.Extensions, ",") + "}"
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewConfigError("bad extension pattern", pattern, errors.InvalidConfig, err)
	}
	return &Scanner{
		prefix: cfg.Naming.Prefix,
		suffix: cfg.Naming.Suffix,
		match:  g,
	}, nil
}

// Scan reads a directory non-recursively and returns a fresh catalog
// of the texture files found in it.
func (s *Scanner) Scan(dir string) (*types.Catalog, error) {
	cat := types.NewCatalog()
	if err := s.ScanInto(dir, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ScanInto merges a directory's textures into an existing catalog.
// Entries already present are never overwritten, so rescanning the
// same folder is a no-op for known textures. Files that fail the
// naming schema are recorded as skipped and do not stop the scan.
func (s *Scanner) ScanInto(dir string, cat *types.Catalog) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !s.match.Match(strings.ToLower(name)) {
			continue
		}

		material, token, err := s.parseName(name)
		if err != nil {
			log.Debugf("skipping %s: %v", name, err)
			cat.AddSkipped(name, err.Error())
			continue
		}

		cat.Add(material, token, filepath.Join(dir, name))
	}

	return nil
}

// parseName splits a texture filename into its material key and
// texture token. The token is kept verbatim; whether it names a known
// texture kind is decided at assembly time.
func (s *Scanner) parseName(name string) (material, token string, err error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.TrimPrefix(base, s.prefix)
	if s.suffix != "" {
		base = strings.ReplaceAll(base, s.suffix, "")
	}

	i := strings.LastIndex(base, "_")
	if i <= 0 || i == len(base)-1 {
		return "", "", errors.NewParseError("filename does not match naming schema", name, nil)
	}

	return capitalize(base[:i]), base[i+1:], nil
}

// capitalize upper-cases the first letter and leaves the rest alone.
func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
