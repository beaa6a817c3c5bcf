// Package sheet turns a character into the flat field mapping expected by the
// official WotC fillable character sheet PDF. The field name strings in this
// package are a compatibility contract with that form: several carry trailing
// spaces or odd capitalization ("CHamod") and must never be cleaned up.
package sheet

import (
	"fmt"
	"strconv"
	"strings"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Ability identifies one of the six ability scores.
type Ability string

const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// Skill identifies one of the eighteen skills.
type Skill string

const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal_handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight_of_hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// SkillAbilities maps each skill to its governing ability (5e rules).
var SkillAbilities = map[Skill]Ability{
	SkillAcrobatics:     AbilityDexterity,
	SkillAnimalHandling: AbilityWisdom,
	SkillArcana:         AbilityIntelligence,
	SkillAthletics:      AbilityStrength,
	SkillDeception:      AbilityCharisma,
	SkillHistory:        AbilityIntelligence,
	SkillInsight:        AbilityWisdom,
	SkillIntimidation:   AbilityCharisma,
	SkillInvestigation:  AbilityIntelligence,
	SkillMedicine:       AbilityWisdom,
	SkillNature:         AbilityIntelligence,
	SkillPerception:     AbilityWisdom,
	SkillPerformance:    AbilityCharisma,
	SkillPersuasion:     AbilityCharisma,
	SkillReligion:       AbilityIntelligence,
	SkillSleightOfHand:  AbilityDexterity,
	SkillStealth:        AbilityDexterity,
	SkillSurvival:       AbilityWisdom,
}

// Modifier derives the ability modifier from a score. The rules want floor
// division, which differs from Go's truncation for scores below 10
// (score 7 is -2, not -1).
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		diff--
	}
	return diff / 2
}

// FormatModifier renders a modifier with its sign: +3, +0, -2.
func FormatModifier(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return strconv.Itoa(mod)
}

// ParseProficiencyBonus parses a bonus string like "+3". Empty input means
// the sheet has no bonus filled in and yields 0. Anything else non-numeric is
// an error rather than a silent zero, so a typo in the character file cannot
// quietly wipe out every save and skill bonus.
func ParseProficiencyBonus(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, gnerr.Validationf("proficiency bonus %q is not a number", s)
	}
	return n, nil
}
