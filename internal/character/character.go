// Package character holds the D&D 5e character aggregate used by the sheet
// filler. A Character is built once from JSON, fully populated before any
// mapping happens, and never mutated afterward.
package character

// AbilityScores are the six core ability scores.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// SavingThrows are saving throw proficiencies (true = proficient).
type SavingThrows struct {
	Strength     bool `json:"strength"`
	Dexterity    bool `json:"dexterity"`
	Constitution bool `json:"constitution"`
	Intelligence bool `json:"intelligence"`
	Wisdom       bool `json:"wisdom"`
	Charisma     bool `json:"charisma"`
}

// Skills are skill proficiencies (true = proficient).
type Skills struct {
	Acrobatics     bool `json:"acrobatics"`
	AnimalHandling bool `json:"animal_handling"`
	Arcana         bool `json:"arcana"`
	Athletics      bool `json:"athletics"`
	Deception      bool `json:"deception"`
	History        bool `json:"history"`
	Insight        bool `json:"insight"`
	Intimidation   bool `json:"intimidation"`
	Investigation  bool `json:"investigation"`
	Medicine       bool `json:"medicine"`
	Nature         bool `json:"nature"`
	Perception     bool `json:"perception"`
	Performance    bool `json:"performance"`
	Persuasion     bool `json:"persuasion"`
	Religion       bool `json:"religion"`
	SleightOfHand  bool `json:"sleight_of_hand"`
	Stealth        bool `json:"stealth"`
	Survival       bool `json:"survival"`
}

// Attack is a single attack or spell line on the sheet.
type Attack struct {
	Name        string `json:"name"`
	AttackBonus string `json:"attack_bonus"`
	DamageType  string `json:"damage_type"`
}

// Currency is the character's money by denomination.
type Currency struct {
	CP int `json:"cp"`
	SP int `json:"sp"`
	EP int `json:"ep"`
	GP int `json:"gp"`
	PP int `json:"pp"`
}

// DeathSaves tracks death save successes and failures. The sheet convention
// is 0-3 each; values outside that range pass through unchecked.
type DeathSaves struct {
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// SpellSlots is the (total, expended) pair for one spell level.
type SpellSlots struct {
	Total    int `json:"total"`
	Expended int `json:"expended"`
}

// Spellcasting is the page 3 spellcasting block.
type Spellcasting struct {
	Class       string   `json:"spellcasting_class"`
	Ability     string   `json:"spellcasting_ability"`
	SaveDC      string   `json:"spell_save_dc"`
	AttackBonus string   `json:"spell_attack_bonus"`
	Cantrips    []string `json:"cantrips"`

	Level1Slots  SpellSlots `json:"level_1_slots"`
	Level1Spells []string   `json:"level_1_spells"`
	Level2Slots  SpellSlots `json:"level_2_slots"`
	Level2Spells []string   `json:"level_2_spells"`
	Level3Slots  SpellSlots `json:"level_3_slots"`
	Level3Spells []string   `json:"level_3_spells"`
	Level4Slots  SpellSlots `json:"level_4_slots"`
	Level4Spells []string   `json:"level_4_spells"`
	Level5Slots  SpellSlots `json:"level_5_slots"`
	Level5Spells []string   `json:"level_5_spells"`
	Level6Slots  SpellSlots `json:"level_6_slots"`
	Level6Spells []string   `json:"level_6_spells"`
	Level7Slots  SpellSlots `json:"level_7_slots"`
	Level7Spells []string   `json:"level_7_spells"`
	Level8Slots  SpellSlots `json:"level_8_slots"`
	Level8Spells []string   `json:"level_8_spells"`
	Level9Slots  SpellSlots `json:"level_9_slots"`
	Level9Spells []string   `json:"level_9_spells"`
}

// Slots returns the slot pair for a spell level between 1 and 9. Levels
// outside that range return the zero value.
func (s *Spellcasting) Slots(level int) SpellSlots {
	switch level {
	case 1:
		return s.Level1Slots
	case 2:
		return s.Level2Slots
	case 3:
		return s.Level3Slots
	case 4:
		return s.Level4Slots
	case 5:
		return s.Level5Slots
	case 6:
		return s.Level6Slots
	case 7:
		return s.Level7Slots
	case 8:
		return s.Level8Slots
	case 9:
		return s.Level9Slots
	}
	return SpellSlots{}
}

// SpellNames returns the prepared spell names for a level between 1 and 9.
func (s *Spellcasting) SpellNames(level int) []string {
	switch level {
	case 1:
		return s.Level1Spells
	case 2:
		return s.Level2Spells
	case 3:
		return s.Level3Spells
	case 4:
		return s.Level4Spells
	case 5:
		return s.Level5Spells
	case 6:
		return s.Level6Spells
	case 7:
		return s.Level7Spells
	case 8:
		return s.Level8Spells
	case 9:
		return s.Level9Spells
	}
	return nil
}

// Appearance is the page 2 appearance block.
type Appearance struct {
	Age    string `json:"age"`
	Height string `json:"height"`
	Weight string `json:"weight"`
	Eyes   string `json:"eyes"`
	Skin   string `json:"skin"`
	Hair   string `json:"hair"`
}

// Character is the aggregate root for one complete 5e character.
type Character struct {
	// Page 1 - header
	CharacterName    string `json:"character_name"`
	ClassLevel       string `json:"class_level"`
	Background       string `json:"background"`
	PlayerName       string `json:"player_name"`
	Race             string `json:"race"`
	Alignment        string `json:"alignment"`
	ExperiencePoints string `json:"experience_points"`

	// Page 1 - core stats
	AbilityScores    AbilityScores `json:"ability_scores"`
	Inspiration      bool          `json:"inspiration"`
	ProficiencyBonus string        `json:"proficiency_bonus"`

	// Page 1 - saving throws & skills
	SavingThrows      SavingThrows `json:"saving_throws"`
	Skills            Skills       `json:"skills"`
	PassivePerception string       `json:"passive_perception"`

	// Page 1 - combat
	ArmorClass         string     `json:"armor_class"`
	Initiative         string     `json:"initiative"`
	Speed              string     `json:"speed"`
	HitPointMaximum    string     `json:"hit_point_maximum"`
	CurrentHitPoints   string     `json:"current_hit_points"`
	TemporaryHitPoints string     `json:"temporary_hit_points"`
	HitDiceTotal       string     `json:"hit_dice_total"`
	HitDice            string     `json:"hit_dice"`
	DeathSaves         DeathSaves `json:"death_saves"`

	// Page 1 - attacks
	Attacks      []Attack `json:"attacks"`
	AttacksNotes string   `json:"attacks_notes"`

	// Page 1 - equipment & currency
	Currency  Currency `json:"currency"`
	Equipment string   `json:"equipment"`

	// Page 1 - personality
	PersonalityTraits string `json:"personality_traits"`
	Ideals            string `json:"ideals"`
	Bonds             string `json:"bonds"`
	Flaws             string `json:"flaws"`

	// Page 1 - other
	OtherProficienciesLanguages string `json:"other_proficiencies_languages"`
	FeaturesTraits              string `json:"features_traits"`

	// Page 2 - appearance & background
	Appearance               Appearance `json:"appearance"`
	CharacterAppearance      string     `json:"character_appearance"`
	CharacterBackstory       string     `json:"character_backstory"`
	AlliesOrganizations      string     `json:"allies_organizations"`
	AlliesOrganizationsName  string     `json:"allies_organizations_name"`
	AdditionalFeaturesTraits string     `json:"additional_features_traits"`
	Treasure                 string     `json:"treasure"`

	// Page 3 - spellcasting
	Spellcasting Spellcasting `json:"spellcasting"`
}
