// SPDX-FileCopyrightText: 2023 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package uartpads

import (
	"bytes"
	_ "embed"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Family identifies a peripheral family sharing a SERCOM implementation.
type Family int

const (
	// FamilySAMD21 covers the SAM D21 and DA1 parts.
	FamilySAMD21 Family = iota + 1

	// FamilySAMx51 covers the SAM D51 and E5x parts.
	FamilySAMx51
)

var familyNames = map[Family]string{
	FamilySAMD21: "samd21",
	FamilySAMx51: "samx51",
}

func (f Family) String() string {
	if n, ok := familyNames[f]; ok {
		return n
	}
	return "unknown"
}

// NumSercoms returns the number of SERCOM instances in the family.
func (f Family) NumSercoms() int {
	switch f {
	case FamilySAMD21:
		return 6
	case FamilySAMx51:
		return 8
	default:
		return 0
	}
}

// ParseFamily returns the Family with the given name, e.g. "samd21".
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for f, fn := range familyNames {
		if fn == n {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFamily, "%q", name)
}

// UnmarshalYAML decodes a Family from its name.
func (f *Family) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	ff, err := ParseFamily(s)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*f = ff
	return nil
}

// Catalog contains the IoSets available on each SERCOM of each family.
//
// A Catalog is immutable once loaded and may be shared freely.
type Catalog struct {
	sets map[Family]map[int][]*IoSet
}

type catalogFile struct {
	Families []struct {
		Name   Family `yaml:"name"`
		IoSets []struct {
			Sercom int        `yaml:"sercom"`
			Name   string     `yaml:"name"`
			Pads   [][]PinRef `yaml:"pads"`
		} `yaml:"iosets"`
	} `yaml:"families"`
}

// LoadCatalog reads a Catalog from its YAML form.
//
// See catalog.yaml in the package source for the format.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}
	c := &Catalog{sets: make(map[Family]map[int][]*IoSet)}
	for _, fam := range f.Families {
		for _, is := range fam.IoSets {
			if is.Sercom < 0 || is.Sercom >= fam.Name.NumSercoms() {
				return nil, errors.Errorf("%s has no sercom%d", fam.Name, is.Sercom)
			}
			if len(is.Pads) > NumSlots {
				return nil, errors.Errorf("%s/sercom%d/%s has %d pads",
					fam.Name, is.Sercom, is.Name, len(is.Pads))
			}
			var opts []NewIoSetOption
			for slot, pins := range is.Pads {
				opts = append(opts, WithPad(Slot(slot), pins...))
			}
			if err := c.add(NewIoSet(fam.Name, is.Sercom, is.Name, opts...)); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Catalog) add(s *IoSet) error {
	sercoms := c.sets[s.Family]
	if sercoms == nil {
		sercoms = make(map[int][]*IoSet)
		c.sets[s.Family] = sercoms
	}
	for _, x := range sercoms[s.Sercom] {
		if x.Name == s.Name {
			return errors.Errorf("duplicate ioset %s", s)
		}
	}
	sets := append(sercoms[s.Sercom], s)
	slices.SortFunc(sets, func(a, b *IoSet) bool { return a.Name < b.Name })
	sercoms[s.Sercom] = sets
	return nil
}

// IoSet returns the named IoSet on the given SERCOM.
func (c *Catalog) IoSet(family Family, sercom int, name string) (*IoSet, error) {
	for _, s := range c.sets[family][sercom] {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownIoSet, "%s/sercom%d/%s", family, sercom, name)
}

// IoSets returns the IoSets available on the given SERCOM, sorted by name.
func (c *Catalog) IoSets(family Family, sercom int) []*IoSet {
	return slices.Clone(c.sets[family][sercom])
}

// Sercoms returns the SERCOMs of the family with at least one IoSet.
func (c *Catalog) Sercoms(family Family) []int {
	sercoms := maps.Keys(c.sets[family])
	slices.Sort(sercoms)
	return sercoms
}

// Families returns the families present in the catalog.
func (c *Catalog) Families() []Family {
	families := maps.Keys(c.sets)
	slices.Sort(families)
	return families
}

// Find returns the IoSets on the given SERCOM containing every one of the
// pins.
//
// This assists in selecting an IoSet for a set of pins fixed by a board.
func (c *Catalog) Find(family Family, sercom int, pins ...PinRef) []*IoSet {
	var found []*IoSet
	for _, s := range c.sets[family][sercom] {
		if slices.IndexFunc(pins, func(p PinRef) bool {
			_, ok := s.pads[p]
			return !ok
		}) < 0 {
			found = append(found, s)
		}
	}
	return found
}

// Select returns the one IoSet on the given SERCOM that contains every one
// of the pins.
//
// Returns ErrUnknownIoSet if no IoSet, or more than one, contains the pins.
func (c *Catalog) Select(family Family, sercom int, pins ...PinRef) (*IoSet, error) {
	found := c.Find(family, sercom, pins...)
	switch len(found) {
	case 0:
		return nil, errors.Wrapf(ErrUnknownIoSet, "%s/sercom%d: no ioset contains %v", family, sercom, pins)
	case 1:
		return found[0], nil
	default:
		names := make([]string, len(found))
		for i, s := range found {
			names[i] = s.Name
		}
		return nil, errors.Wrapf(ErrUnknownIoSet, "%s/sercom%d: %v in %s",
			family, sercom, pins, strings.Join(names, ", "))
	}
}

//go:embed catalog.yaml
var rawCatalog []byte

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the catalog built into the package.
//
// It panics if the built in catalog is corrupt, which would be a build error.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := LoadCatalog(bytes.NewReader(rawCatalog))
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
