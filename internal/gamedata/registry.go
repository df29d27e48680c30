package gamedata

import "math/rand"

// MonsterTable holds monster archetypes and picks among them by spawn weight.
type MonsterTable struct {
	monsters    []ActorDef
	totalWeight int
}

// NewMonsterTable creates a table from loaded monster definitions.
func NewMonsterTable(monsters []ActorDef) *MonsterTable {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterTable{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// SpawnRandom selects a monster definition using weighted probability.
// It draws exactly one value from rng, so generation stays reproducible per seed.
func (t *MonsterTable) SpawnRandom(rng *rand.Rand) *ActorDef {
	if t.totalWeight <= 0 || len(t.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(t.totalWeight)
	cumulative := 0
	for i := range t.monsters {
		cumulative += t.monsters[i].SpawnWeight
		if roll < cumulative {
			return &t.monsters[i]
		}
	}
	return &t.monsters[len(t.monsters)-1]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (t *MonsterTable) GetByID(id string) *ActorDef {
	for i := range t.monsters {
		if t.monsters[i].ID == id {
			return &t.monsters[i]
		}
	}
	return nil
}

// Count returns the number of monster types in the table.
func (t *MonsterTable) Count() int {
	return len(t.monsters)
}
