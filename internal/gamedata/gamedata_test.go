package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadClasses(t *testing.T) {
	registry, err := LoadClassRegistry()
	if err != nil {
		t.Fatalf("Failed to load classes: %v", err)
	}

	if registry.Count() != 3 {
		t.Fatalf("Expected 3 classes, got %d", registry.Count())
	}

	wantOrder := []string{"warrior", "scout", "shaman"}
	for i, id := range wantOrder {
		if got := registry.At(i); got == nil || got.ID != id {
			t.Errorf("At(%d) = %v, want %q", i, got, id)
		}
	}
	if registry.At(3) != nil {
		t.Error("At(3) should be nil")
	}

	warrior, err := registry.Get("warrior")
	if err != nil {
		t.Fatalf("Get(warrior) failed: %v", err)
	}
	if warrior.HP != 120 || warrior.Attack != 8 || warrior.Defense != 10 {
		t.Errorf("Warrior stats = %d/%d/%d, want 120/8/10", warrior.HP, warrior.Attack, warrior.Defense)
	}
	if warrior.SpecialName == "" {
		t.Error("Warrior should have a special name")
	}

	if _, err := registry.Get("bard"); err == nil {
		t.Error("Get(bard) should fail")
	}
}

func TestLoadMonsterRegistry(t *testing.T) {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		t.Fatalf("Failed to load monsters: %v", err)
	}

	for tier := 1; tier <= MaxTier; tier++ {
		if len(registry.Tier(tier)) == 0 {
			t.Errorf("Tier %d has no monsters", tier)
		}
	}

	slime := registry.GetByID("slime")
	if slime == nil {
		t.Fatal("Slime not found by ID")
	}
	if slime.Tier != 1 || slime.HPMultiplier != 1.0 || slime.AttackMultiplier != 1.0 || slime.DefenseMultiplier != 1.0 {
		t.Errorf("Slime should be a tier 1 archetype with unit multipliers, got %+v", slime)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID(dragon) should be nil")
	}
}

func TestTierForLevel(t *testing.T) {
	tests := []struct {
		level int
		tier  int
	}{
		{0, 1},
		{1, 1},
		{3, 1},
		{4, 2},
		{6, 2},
		{7, 3},
		{40, 3},
	}

	for _, tt := range tests {
		if got := TierForLevel(tt.level); got != tt.tier {
			t.Errorf("TierForLevel(%d) = %d, want %d", tt.level, got, tt.tier)
		}
	}
}

func TestSpawnForLevel(t *testing.T) {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		t.Fatalf("Failed to load monsters: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for level := 1; level <= 12; level++ {
		for i := 0; i < 20; i++ {
			def, err := registry.SpawnForLevel(rng, level)
			if err != nil {
				t.Fatalf("SpawnForLevel(%d) failed: %v", level, err)
			}
			if def.Tier != TierForLevel(level) {
				t.Errorf("SpawnForLevel(%d) returned tier %d archetype %s", level, def.Tier, def.ID)
			}
		}
	}

	// Same seed, same spawns
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		a, _ := registry.SpawnForLevel(rng1, 5)
		b, _ := registry.SpawnForLevel(rng2, 5)
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
	}
}

func TestSpawnForLevelEmptyTier(t *testing.T) {
	registry := NewMonsterRegistry([]MonsterDef{{ID: "slime", Tier: 1, SpawnWeight: 1}})
	if _, err := registry.SpawnForLevel(rand.New(rand.NewSource(1)), 9); err == nil {
		t.Error("SpawnForLevel should fail for a tier with no monsters")
	}
}

func TestStoryBook(t *testing.T) {
	book, err := LoadStoryBook()
	if err != nil {
		t.Fatalf("Failed to load stories: %v", err)
	}
	if len(book.Stories) == 0 {
		t.Fatal("Expected story texts")
	}

	rng := rand.New(rand.NewSource(3))
	if book.RandomStory(rng) == "" {
		t.Error("RandomStory returned empty text")
	}

	name := book.RandomName(rng, "warrior", "Warrior")
	found := false
	for _, n := range book.Names["warrior"] {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("RandomName(warrior) = %q, not in pool", name)
	}

	if got := book.RandomName(rng, "bard", "Bard"); got != "Bard" {
		t.Errorf("RandomName(bard) = %q, want fallback", got)
	}

	empty := &StoryBook{}
	if empty.RandomStory(rng) == "" {
		t.Error("RandomStory on an empty book should return a fallback")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#60e060", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestDefGlyphs(t *testing.T) {
	m := MonsterDef{Glyph: "T", Color: "#FF0000"}
	if m.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", m.GlyphRune())
	}
	if (&MonsterDef{}).GlyphRune() != '?' {
		t.Error("Empty glyph should render as '?'")
	}
	if (&ClassDef{}).SymbolRune() != '@' {
		t.Error("Empty class symbol should render as '@'")
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog := MustLoadCatalog()
	if catalog.Classes == nil || catalog.Monsters == nil || catalog.Stories == nil {
		t.Fatal("catalog has nil registries")
	}
}
