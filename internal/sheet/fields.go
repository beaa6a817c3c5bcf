package sheet

import "github.com/gamenight-tools/gamenight/internal/character"

// How many entries of each list the form has room for. Longer source lists
// are truncated; see Map.
const (
	MaxAttacks      = 3
	MaxCantrips     = 8
	MaxLevel1Spells = 13
)

// CheckedValue marks an affirmative checkbox in the output mapping. The form
// writer translates it to the PDF's /Yes appearance state.
const CheckedValue = "Yes"

// The tables below pin down every externally dictated field name in one
// place, keyed to the piece of character state that feeds it. Trailing spaces
// and capitalization quirks are part of the form and are intentional.

type savingThrowField struct {
	field      string // text field holding the computed save bonus
	checkbox   string // proficiency checkbox
	ability    Ability
	proficient func(st *character.SavingThrows) bool
}

var savingThrowFields = []savingThrowField{
	{"ST Strength", "Check Box 11", AbilityStrength, func(st *character.SavingThrows) bool { return st.Strength }},
	{"ST Dexterity", "Check Box 18", AbilityDexterity, func(st *character.SavingThrows) bool { return st.Dexterity }},
	{"ST Constitution", "Check Box 19", AbilityConstitution, func(st *character.SavingThrows) bool { return st.Constitution }},
	{"ST Intelligence", "Check Box 20", AbilityIntelligence, func(st *character.SavingThrows) bool { return st.Intelligence }},
	{"ST Wisdom", "Check Box 21", AbilityWisdom, func(st *character.SavingThrows) bool { return st.Wisdom }},
	{"ST Charisma", "Check Box 22", AbilityCharisma, func(st *character.SavingThrows) bool { return st.Charisma }},
}

type skillField struct {
	field      string // text field holding the computed skill bonus
	checkbox   string // proficiency checkbox
	skill      Skill
	proficient func(s *character.Skills) bool
}

var skillFields = []skillField{
	{"Acrobatics", "Check Box 23", SkillAcrobatics, func(s *character.Skills) bool { return s.Acrobatics }},
	{"Animal", "Check Box 24", SkillAnimalHandling, func(s *character.Skills) bool { return s.AnimalHandling }},
	{"Arcana", "Check Box 25", SkillArcana, func(s *character.Skills) bool { return s.Arcana }},
	{"Athletics", "Check Box 26", SkillAthletics, func(s *character.Skills) bool { return s.Athletics }},
	{"Deception ", "Check Box 27", SkillDeception, func(s *character.Skills) bool { return s.Deception }}, // trailing space
	{"History ", "Check Box 28", SkillHistory, func(s *character.Skills) bool { return s.History }},       // trailing space
	{"Insight", "Check Box 29", SkillInsight, func(s *character.Skills) bool { return s.Insight }},
	{"Intimidation", "Check Box 30", SkillIntimidation, func(s *character.Skills) bool { return s.Intimidation }},
	{"Investigation ", "Check Box 31", SkillInvestigation, func(s *character.Skills) bool { return s.Investigation }}, // trailing space
	{"Medicine", "Check Box 32", SkillMedicine, func(s *character.Skills) bool { return s.Medicine }},
	{"Nature", "Check Box 33", SkillNature, func(s *character.Skills) bool { return s.Nature }},
	{"Perception ", "Check Box 34", SkillPerception, func(s *character.Skills) bool { return s.Perception }}, // trailing space
	{"Performance", "Check Box 35", SkillPerformance, func(s *character.Skills) bool { return s.Performance }},
	{"Persuasion", "Check Box 36", SkillPersuasion, func(s *character.Skills) bool { return s.Persuasion }},
	{"Religion", "Check Box 37", SkillReligion, func(s *character.Skills) bool { return s.Religion }},
	{"SleightofHand", "Check Box 38", SkillSleightOfHand, func(s *character.Skills) bool { return s.SleightOfHand }},
	{"Stealth ", "Check Box 39", SkillStealth, func(s *character.Skills) bool { return s.Stealth }}, // trailing space
	{"Survival", "Check Box 40", SkillSurvival, func(s *character.Skills) bool { return s.Survival }},
}

type abilityField struct {
	score   string // raw score text field
	mod     string // formatted modifier text field
	ability Ability
	value   func(a *character.AbilityScores) int
}

var abilityFields = []abilityField{
	{"STR", "STRmod", AbilityStrength, func(a *character.AbilityScores) int { return a.Strength }},
	{"DEX", "DEXmod ", AbilityDexterity, func(a *character.AbilityScores) int { return a.Dexterity }}, // trailing space
	{"CON", "CONmod", AbilityConstitution, func(a *character.AbilityScores) int { return a.Constitution }},
	{"INT", "INTmod", AbilityIntelligence, func(a *character.AbilityScores) int { return a.Intelligence }},
	{"WIS", "WISmod", AbilityWisdom, func(a *character.AbilityScores) int { return a.Wisdom }},
	{"CHA", "CHamod", AbilityCharisma, func(a *character.AbilityScores) int { return a.Charisma }}, // lowercase 'a' in the form
}

// attackFields holds the per-slot field names for the three attack rows.
var attackFields = [MaxAttacks]struct {
	name, bonus, damage string
}{
	{"Wpn Name", "Wpn1 AtkBonus", "Wpn1 Damage"},
	{"Wpn Name 2", "Wpn2 AtkBonus ", "Wpn2 Damage "},  // trailing spaces
	{"Wpn Name 3", "Wpn3 AtkBonus  ", "Wpn3 Damage "}, // two trailing spaces on the bonus
}

// cantripFields are the eight cantrip line fields on page 3.
var cantripFields = [MaxCantrips]string{
	"Spells 1014", "Spells 1015", "Spells 1016", "Spells 1017",
	"Spells 1018", "Spells 1019", "Spells 1020", "Spells 1021",
}

// level1SpellFields are the thirteen level-1 spell line fields on page 3.
var level1SpellFields = [MaxLevel1Spells]string{
	"Spells 1022", "Spells 1023", "Spells 1024", "Spells 1025", "Spells 1026",
	"Spells 1027", "Spells 1028", "Spells 1029", "Spells 1030", "Spells 1031",
	"Spells 1032", "Spells 1033", "Spells 1034",
}

// Spell slot fields are numbered 19 (level 1) through 27 (level 9).
const slotFieldOffset = 18
