package gamedata

// StoryBook holds story tile texts and character name pools.
type StoryBook struct {
	Stories []string            `yaml:"stories"`
	Names   map[string][]string `yaml:"names"`
}

// LoadStoryBook loads the embedded stories.yaml file.
func LoadStoryBook() (*StoryBook, error) {
	book, err := Load[StoryBook]("stories.yaml")
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// RandomStory returns a random story text, or a fallback if none are loaded.
func (b *StoryBook) RandomStory(rng Rand) string {
	if len(b.Stories) == 0 {
		return "The walls here are old and silent."
	}
	return b.Stories[rng.Intn(len(b.Stories))]
}

// RandomName returns a random name for the class, falling back to fallback
// when the class has no name pool.
func (b *StoryBook) RandomName(rng Rand, classID, fallback string) string {
	pool := b.Names[classID]
	if len(pool) == 0 {
		return fallback
	}
	return pool[rng.Intn(len(pool))]
}
