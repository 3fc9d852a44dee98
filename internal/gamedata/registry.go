package gamedata

import (
	"errors"

	gameerrors "github.com/samdwyer/dungeo/internal/errors"
)

// Rand is the random source used for catalog picks.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// =============================================================================
// ClassRegistry
// =============================================================================

// ClassRegistry holds playable classes in menu order.
type ClassRegistry struct {
	classes []ClassDef
	byID    map[string]*ClassDef
}

// NewClassRegistry creates a registry from loaded class definitions.
func NewClassRegistry(classes []ClassDef) *ClassRegistry {
	registry := &ClassRegistry{
		classes: classes,
		byID:    make(map[string]*ClassDef, len(classes)),
	}
	for i := range classes {
		registry.byID[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(classes), nil
}

// Get returns the class with the given ID.
func (r *ClassRegistry) Get(id string) (*ClassDef, error) {
	def, ok := r.byID[id]
	if !ok {
		return nil, gameerrors.NotFoundf("class %q not found", id)
	}
	return def, nil
}

// At returns the class at a menu index, or nil when out of range.
func (r *ClassRegistry) At(index int) *ClassDef {
	if index < 0 || index >= len(r.classes) {
		return nil
	}
	return &r.classes[index]
}

// All returns all class definitions in menu order.
func (r *ClassRegistry) All() []ClassDef {
	return r.classes
}

// Count returns the number of classes in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.classes)
}

// =============================================================================
// MonsterRegistry
// =============================================================================

type monsterTier struct {
	monsters    []*MonsterDef
	totalWeight int
}

// MonsterRegistry holds monster archetypes grouped by tier.
type MonsterRegistry struct {
	monsters []MonsterDef
	tiers    map[int]*monsterTier
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	registry := &MonsterRegistry{
		monsters: monsters,
		tiers:    make(map[int]*monsterTier),
	}
	for i := range monsters {
		m := &monsters[i]
		tier, ok := registry.tiers[m.Tier]
		if !ok {
			tier = &monsterTier{}
			registry.tiers[m.Tier] = tier
		}
		tier.monsters = append(tier.monsters, m)
		tier.totalWeight += m.SpawnWeight
	}
	return registry
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	registry := NewMonsterRegistry(monsters)
	for tier := 1; tier <= MaxTier; tier++ {
		if t := registry.tiers[tier]; t == nil || t.totalWeight <= 0 {
			return nil, gameerrors.Internalf("monsters.json has no spawnable monster in tier %d", tier)
		}
	}
	return registry, nil
}

// SpawnForLevel picks a random archetype from the tier matching level.
// Archetypes with higher spawnWeight are more likely to be selected.
func (r *MonsterRegistry) SpawnForLevel(rng Rand, level int) (*MonsterDef, error) {
	tierNum := TierForLevel(level)
	tier := r.tiers[tierNum]
	if tier == nil || tier.totalWeight <= 0 {
		return nil, gameerrors.NotFoundf("no monsters in tier %d", tierNum).
			WithMeta("level", level)
	}

	roll := rng.Intn(tier.totalWeight)

	cumulative := 0
	for _, m := range tier.monsters {
		cumulative += m.SpawnWeight
		if roll < cumulative {
			return m, nil
		}
	}

	// Unreachable with a well-behaved rng
	return tier.monsters[0], nil
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Tier returns the archetypes of one tier.
func (r *MonsterRegistry) Tier(tier int) []*MonsterDef {
	if t := r.tiers[tier]; t != nil {
		return t.monsters
	}
	return nil
}

// Count returns the number of monster archetypes in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles every registry the game needs. It is built once at startup
// and never mutated.
type Catalog struct {
	Classes  *ClassRegistry
	Monsters *MonsterRegistry
	Stories  *StoryBook
}

// LoadCatalog loads all embedded catalog files.
func LoadCatalog() (*Catalog, error) {
	classes, err := LoadClassRegistry()
	if err != nil {
		return nil, err
	}
	monsters, err := LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	stories, err := LoadStoryBook()
	if err != nil {
		return nil, err
	}
	return &Catalog{Classes: classes, Monsters: monsters, Stories: stories}, nil
}

// MustLoadCatalog loads the catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}
