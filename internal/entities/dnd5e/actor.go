package dnd5e

// ActorKind discriminates the Actor union
type ActorKind string

// Actor kinds. NPCs and monsters share the stat-block shape.
const (
	ActorKindCharacter ActorKind = "character"
	ActorKindStatBlock ActorKind = "statblock"
)

// StatBlockKind distinguishes NPCs from monsters for display and storage
type StatBlockKind string

// Stat block kinds
const (
	StatBlockKindNPC     StatBlockKind = "npc"
	StatBlockKindMonster StatBlockKind = "monster"
)

// Actor is anything that can roll. Exactly one of Character or StatBlock is
// set, selected by Kind.
type Actor struct {
	Kind      ActorKind  `json:"kind" yaml:"kind"`
	Character *Character `json:"character,omitempty" yaml:"character,omitempty"`
	StatBlock *StatBlock `json:"stat_block,omitempty" yaml:"stat_block,omitempty"`
}

// NewCharacterActor wraps a character
func NewCharacterActor(c *Character) *Actor {
	return &Actor{Kind: ActorKindCharacter, Character: c}
}

// NewStatBlockActor wraps an NPC or monster
func NewStatBlockActor(s *StatBlock) *Actor {
	return &Actor{Kind: ActorKindStatBlock, StatBlock: s}
}

// GetID returns the id of whichever variant is set
func (a *Actor) GetID() string {
	if a == nil {
		return ""
	}
	switch a.Kind {
	case ActorKindCharacter:
		if a.Character != nil {
			return a.Character.ID
		}
	case ActorKindStatBlock:
		if a.StatBlock != nil {
			return a.StatBlock.ID
		}
	}
	return ""
}

// GetName returns the display name of whichever variant is set
func (a *Actor) GetName() string {
	if a == nil {
		return ""
	}
	switch a.Kind {
	case ActorKindCharacter:
		if a.Character != nil {
			return a.Character.Name
		}
	case ActorKindStatBlock:
		if a.StatBlock != nil {
			return a.StatBlock.Name
		}
	}
	return ""
}

// Scores returns the ability scores of whichever variant is set
func (a *Actor) Scores() AbilityScores {
	if a == nil {
		return nil
	}
	switch a.Kind {
	case ActorKindCharacter:
		if a.Character != nil {
			return a.Character.AbilityScores
		}
	case ActorKindStatBlock:
		if a.StatBlock != nil {
			return a.StatBlock.AbilityScores
		}
	}
	return nil
}

// Character is a player character
type Character struct {
	ID                  string        `json:"id" yaml:"id"`
	Name                string        `json:"name" yaml:"name"`
	Level               int           `json:"level" yaml:"level"`
	ClassName           string        `json:"class_name,omitempty" yaml:"class_name,omitempty"`
	SubclassName        string        `json:"subclass_name,omitempty" yaml:"subclass_name,omitempty"`
	AbilityScores       AbilityScores `json:"ability_scores" yaml:"ability_scores"`
	SkillProficiencies  []string      `json:"skill_proficiencies,omitempty" yaml:"skill_proficiencies,omitempty"`
	SaveProficiencies   []Ability     `json:"save_proficiencies,omitempty" yaml:"save_proficiencies,omitempty"`
	AttackProficiencies []Ability     `json:"attack_proficiencies,omitempty" yaml:"attack_proficiencies,omitempty"`
}

// HasSkill reports skill proficiency, ignoring case and separators
func (c *Character) HasSkill(skill string) bool {
	if c == nil {
		return false
	}
	for _, s := range c.SkillProficiencies {
		if SameName(s, skill) {
			return true
		}
	}
	return false
}

// HasSave reports saving-throw proficiency for an ability
func (c *Character) HasSave(a Ability) bool {
	return c != nil && containsAbility(c.SaveProficiencies, a)
}

// HasAttack reports proficiency with attacks keyed on an ability
func (c *Character) HasAttack(a Ability) bool {
	return c != nil && containsAbility(c.AttackProficiencies, a)
}

// WithNotes returns a copy of c with the DM notes' proficiencies merged in.
// c itself is left untouched.
func (c *Character) WithNotes(notes *DMNotes) *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.AbilityScores = c.AbilityScores.Clone()
	out.SkillProficiencies = append([]string(nil), c.SkillProficiencies...)
	out.SaveProficiencies = append([]Ability(nil), c.SaveProficiencies...)
	out.AttackProficiencies = append([]Ability(nil), c.AttackProficiencies...)
	if notes == nil {
		return &out
	}
	for _, s := range notes.SkillProficiencies {
		if !out.HasSkill(s) {
			out.SkillProficiencies = append(out.SkillProficiencies, s)
		}
	}
	for _, a := range notes.SaveProficiencies {
		if !out.HasSave(a) {
			out.SaveProficiencies = append(out.SaveProficiencies, a)
		}
	}
	return &out
}

func containsAbility(list []Ability, a Ability) bool {
	for _, v := range list {
		if v == a {
			return true
		}
	}
	return false
}

// StatBlock is an NPC or monster. Its bonuses live in free text.
type StatBlock struct {
	ID              string        `json:"id" yaml:"id"`
	Name            string        `json:"name" yaml:"name"`
	Kind            StatBlockKind `json:"kind" yaml:"kind"`
	ChallengeRating string        `json:"challenge_rating" yaml:"challenge_rating"`
	AbilityScores   AbilityScores `json:"ability_scores" yaml:"ability_scores"`
	Skills          []Trait       `json:"skills,omitempty" yaml:"skills,omitempty"`
	SavingThrows    []Trait       `json:"saving_throws,omitempty" yaml:"saving_throws,omitempty"`
	Attacks         []Trait       `json:"attacks,omitempty" yaml:"attacks,omitempty"`
}

// Trait is a free-text stat block entry
type Trait struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DMNotes is the side record holding proficiencies the DM tracks for a character
type DMNotes struct {
	CharacterID        string    `json:"character_id" yaml:"character_id"`
	SkillProficiencies []string  `json:"skill_proficiencies,omitempty" yaml:"skill_proficiencies,omitempty"`
	SaveProficiencies  []Ability `json:"save_proficiencies,omitempty" yaml:"save_proficiencies,omitempty"`
	Notes              string    `json:"notes,omitempty" yaml:"notes,omitempty"`
}
