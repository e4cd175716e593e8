package curriculum

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/pathkeeper/internal/domain"
	"github.com/alexanderramin/pathkeeper/internal/progression"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Catalog is the read-only curriculum lookup the mission engine consults.
// A miss is not an error; callers fall back to Fallback.
type Catalog interface {
	Lookup(office domain.Office, day int) (domain.Mission, bool)
}

type trackKey struct {
	month int
	order domain.PriesthoodOrder
}

// JSONCatalog is a Catalog built from a curriculum Document.
type JSONCatalog struct {
	starter map[domain.Office]map[int]domain.Mission
	months  map[trackKey]map[int]domain.Mission
}

// Parse decodes and validates a curriculum document.
func Parse(data []byte) (*JSONCatalog, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing curriculum: %w", err)
	}
	if errs := ValidateDocument(&doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid curriculum: %w", errors.Join(errs...))
	}
	return FromDocument(&doc), nil
}

// Load reads a curriculum file. An empty path loads the embedded catalog.
func Load(path string) (*JSONCatalog, error) {
	if path == "" {
		return Parse(embeddedCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading curriculum %s: %w", path, err)
	}
	return Parse(data)
}

// FromDocument indexes an already validated document.
func FromDocument(doc *Document) *JSONCatalog {
	c := &JSONCatalog{
		starter: map[domain.Office]map[int]domain.Mission{},
		months:  map[trackKey]map[int]domain.Mission{},
	}
	for name, entries := range doc.StarterPack {
		office, ok := domain.ParseOffice(name)
		if !ok {
			continue
		}
		c.starter[office] = index(entries)
	}

	shared := index(doc.Month1.Days)
	c.months[trackKey{1, domain.OrderAaronic}] = shared
	c.months[trackKey{1, domain.OrderMelchizedek}] = shared
	c.months[trackKey{2, domain.OrderAaronic}] = index(doc.Month2.Gatekeeper)
	c.months[trackKey{2, domain.OrderMelchizedek}] = index(doc.Month2.Healer)
	c.months[trackKey{3, domain.OrderAaronic}] = index(doc.Month3.Aaronic)
	c.months[trackKey{3, domain.OrderMelchizedek}] = index(doc.Month3.Melchizedek)
	c.months[trackKey{4, domain.OrderAaronic}] = index(doc.Month4.Aaronic)
	c.months[trackKey{4, domain.OrderMelchizedek}] = index(doc.Month4.Melchizedek)
	return c
}

func index(entries []Entry) map[int]domain.Mission {
	out := make(map[int]domain.Mission, len(entries))
	for _, e := range entries {
		out[e.Day] = domain.Mission{
			Day:       e.Day,
			Scripture: e.Scripture,
			Title:     e.Title,
			Message:   e.Message,
			Challenge: e.Challenge,
			URL:       e.URL,
		}
	}
	return out
}

// Lookup resolves the curated mission for an absolute day on the office's
// track.
func (c *JSONCatalog) Lookup(office domain.Office, day int) (domain.Mission, bool) {
	pos, ok := progression.MonthAndDayOf(day)
	if !ok {
		return domain.Mission{}, false
	}
	var byDay map[int]domain.Mission
	if pos.Month == 0 {
		byDay = c.starter[office]
	} else {
		byDay = c.months[trackKey{pos.Month, progression.TrackFor(office)}]
	}
	m, ok := byDay[day]
	return m, ok
}

// Size returns the number of curated starter and month entries visible to
// office.
func (c *JSONCatalog) Size(office domain.Office) int {
	n := len(c.starter[office])
	order := progression.TrackFor(office)
	for month := 1; month <= progression.MasteryMonths; month++ {
		n += len(c.months[trackKey{month, order}])
	}
	return n
}
