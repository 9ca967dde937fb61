// Package directory provides the committee recipient directory used when
// sending testimony. A built-in Kansas directory is embedded in the binary;
// a user TOML file can add, replace or remove entries.
//
// File format:
//
//	[committees]
//	"House Committee on Education" = "H.Education@house.ks.gov"
//	"Senate Committee on Utilities" = ""   # removes the entry
package directory

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/legis-cli/internal/core/ports/driven"
)

//go:embed committees.toml
var builtin []byte

// Ensure Directory implements the interface.
var _ driven.CommitteeDirectory = (*Directory)(nil)

type file struct {
	Committees map[string]string `toml:"committees"`
}

// Directory maps committee names to recipient addresses.
type Directory struct {
	entries map[string]string
	folded  map[string]string
}

// New returns the built-in directory.
func New() (*Directory, error) {
	return Load("")
}

// Load returns the built-in directory overlaid with the file at path.
// An empty path loads only the built-in entries.
func Load(path string) (*Directory, error) {
	d := &Directory{entries: make(map[string]string)}

	if err := d.merge(builtin); err != nil {
		return nil, fmt.Errorf("parse built-in committees: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read committees file: %w", err)
		}
		if err := d.merge(data); err != nil {
			return nil, fmt.Errorf("parse committees file %s: %w", path, err)
		}
	}

	d.folded = make(map[string]string, len(d.entries))
	for name := range d.entries {
		d.folded[strings.ToLower(name)] = name
	}
	return d, nil
}

func (d *Directory) merge(data []byte) error {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}
	for name, addr := range f.Committees {
		name = strings.TrimSpace(name)
		addr = strings.TrimSpace(addr)
		if name == "" {
			continue
		}
		if addr == "" {
			delete(d.entries, name)
			continue
		}
		d.entries[name] = addr
	}
	return nil
}

// Lookup returns the address for a committee. Matching ignores surrounding
// whitespace and falls back to a case-insensitive match.
func (d *Directory) Lookup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if addr, ok := d.entries[name]; ok {
		return addr, true
	}
	if canonical, ok := d.folded[strings.ToLower(name)]; ok {
		return d.entries[canonical], true
	}
	return "", false
}

// Names returns all committee names, sorted.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
