// Package classification provides the lookup tables used to classify
// securities: the region and market of each country, and the canonical names
// of sectors.
//
// Default returns the built-in table. Operators extend or override it with a
// YAML file:
//
//	countries:
//	  Estonia: {region: Europe, market: Developed}
//	  Kazakhstan: {region: Asia, market: Frontier}
//	sectors:
//	  Information Technology: [Technology, Tech]
package classification

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/etnz/exposure"
	"gopkg.in/yaml.v3"
)

// Table maps countries to regions and markets, and sector synonyms to
// canonical sectors. Lookups ignore case and surrounding spaces.
//
// A Table is read-only once built, it can be shared.
type Table struct {
	countries map[string]Country
	names     []string          // usual country names in declaration order
	sectors   map[string]string // any known name to its canonical name
	canonical []string          // canonical sectors in declaration order
}

// Country is the classification of a country.
type Country struct {
	Region string `yaml:"region"`
	Market string `yaml:"market"`
}

// New returns an empty table.
func New() *Table {
	return &Table{
		countries: make(map[string]Country),
		sectors:   make(map[string]string),
	}
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// SetCountry declares the region and market of a country. The first name is
// the usual one, the others are aliases.
func (t *Table) SetCountry(c Country, names ...string) {
	if len(names) == 0 {
		return
	}
	if _, known := t.countries[key(names[0])]; !known {
		t.names = append(t.names, names[0])
	}
	for _, name := range names {
		t.countries[key(name)] = c
	}
}

// Country returns the classification of a country or one of its aliases.
func (t *Table) Country(name string) (Country, bool) {
	c, ok := t.countries[key(name)]
	return c, ok
}

// Countries returns the usual names of the known countries, sorted.
func (t *Table) Countries() []string {
	names := slices.Clone(t.names)
	slices.Sort(names)
	return names
}

// AddSector declares a canonical sector and its synonyms.
func (t *Table) AddSector(canonical string, synonyms ...string) {
	if !slices.Contains(t.canonical, canonical) {
		t.canonical = append(t.canonical, canonical)
	}
	t.sectors[key(canonical)] = canonical
	for _, s := range synonyms {
		t.sectors[key(s)] = canonical
	}
}

// RegionOf implements exposure.ClassificationTable.
func (t *Table) RegionOf(country string) (string, error) {
	c, ok := t.countries[key(country)]
	if !ok || c.Region == "" {
		return "", fmt.Errorf("%w: no region for %q", exposure.ErrUnknownCountry, country)
	}
	return c.Region, nil
}

// MarketOf implements exposure.ClassificationTable.
func (t *Table) MarketOf(country string) (string, error) {
	c, ok := t.countries[key(country)]
	if !ok || c.Market == "" {
		return "", fmt.Errorf("%w: no market for %q", exposure.ErrUnknownCountry, country)
	}
	return c.Market, nil
}

// SectorOf implements exposure.SectorTable. A table without sectors accepts
// any sector as is.
func (t *Table) SectorOf(sector string) (string, error) {
	if len(t.sectors) == 0 {
		return sector, nil
	}
	if c, ok := t.sectors[key(sector)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", exposure.ErrUnknownSector, sector)
}

// Sectors returns the canonical sectors.
func (t *Table) Sectors() []string { return slices.Clone(t.canonical) }

// overlay is the YAML format of a table.
type overlay struct {
	Countries map[string]Country  `yaml:"countries"`
	Sectors   map[string][]string `yaml:"sectors"`
}

// Decode reads a YAML overlay from r and adds it to the table. Countries
// already known are replaced.
func (t *Table) Decode(r io.Reader) error {
	var o overlay
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && err != io.EOF {
		return fmt.Errorf("cannot decode classification table: %w", err)
	}

	names := make([]string, 0, len(o.Countries))
	for name := range o.Countries {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c := o.Countries[name]
		if c.Region == "" || c.Market == "" {
			return fmt.Errorf("country %q needs both a region and a market", name)
		}
		t.SetCountry(c, name)
	}

	sectors := make([]string, 0, len(o.Sectors))
	for name := range o.Sectors {
		sectors = append(sectors, name)
	}
	slices.Sort(sectors)
	for _, name := range sectors {
		t.AddSector(name, o.Sectors[name]...)
	}
	return nil
}

// LoadFile returns the default table extended with the YAML overlay in path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open classification file %q: %w", path, err)
	}
	defer f.Close()

	t := Default()
	if err := t.Decode(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
