package challenge

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// PoolSize is the number of simultaneously active challenges per user.
const PoolSize = 3

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	once     sync.Once
	instance *Catalog
)

type Challenge struct {
	ID         int       `yaml:"id"`
	Title      string    `yaml:"title"`
	XP         int       `yaml:"xp"`
	Icon       string    `yaml:"icon"`
	Difficulty string    `yaml:"difficulty"`
	Predicate  Predicate `yaml:"predicate"`
}

type Catalog struct {
	entries []Challenge
	byID    map[int]Challenge
}

type catalogFile struct {
	Challenges []Challenge `yaml:"challenges"`
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	once.Do(func() {
		c, err := Load(defaultCatalog)
		if err != nil {
			log.Fatal("loading challenge catalog error: " + err.Error())
		}
		instance = c
	})
	return instance
}

func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New("parsing catalog error: " + err.Error())
	}
	if len(file.Challenges) == 0 {
		return nil, errors.New("catalog is empty")
	}
	c := &Catalog{
		entries: make([]Challenge, 0, len(file.Challenges)),
		byID:    make(map[int]Challenge, len(file.Challenges)),
	}
	for _, ch := range file.Challenges {
		if _, ok := c.byID[ch.ID]; ok {
			return nil, fmt.Errorf("duplicate challenge id %d", ch.ID)
		}
		if !ch.Predicate.known() {
			return nil, fmt.Errorf("challenge %d: unknown predicate kind %q", ch.ID, ch.Predicate.Kind)
		}
		if ch.XP <= 0 {
			return nil, fmt.Errorf("challenge %d: xp must be positive", ch.ID)
		}
		c.byID[ch.ID] = ch
		c.entries = append(c.entries, ch)
	}
	sort.Slice(c.entries, func(i, j int) bool {
		return c.entries[i].ID < c.entries[j].ID
	})
	return c, nil
}

func (c *Catalog) Get(id int) (Challenge, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

// All returns entries ordered by id.
func (c *Catalog) All() []Challenge {
	out := make([]Challenge, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
