package sheet

import (
	"log"
	"strconv"

	"github.com/gamenight-tools/gamenight/internal/character"
	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Field is one entry of the output mapping. Checkbox fields carry
// CheckedValue and only appear when the underlying flag is true; text fields
// always appear, empty string included.
type Field struct {
	Name     string
	Value    string
	Checkbox bool
}

// FieldMap is the ordered mapping handed to the form writer. Order is stable
// across runs for the same character.
type FieldMap []Field

// Get returns the entry with the given name.
func (m FieldMap) Get(name string) (Field, bool) {
	for _, f := range m {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Has reports whether the mapping contains the named field.
func (m FieldMap) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Names returns the field names in mapping order.
func (m FieldMap) Names() []string {
	names := make([]string, len(m))
	for i, f := range m {
		names[i] = f.Name
	}
	return names
}

// mapBuilder accumulates fields and enforces name uniqueness.
type mapBuilder struct {
	fields FieldMap
	seen   map[string]bool
	err    error
}

func (b *mapBuilder) add(f Field) {
	if b.err != nil {
		return
	}
	if b.seen[f.Name] {
		b.err = gnerr.Internalf("duplicate form field %q", f.Name)
		return
	}
	b.seen[f.Name] = true
	b.fields = append(b.fields, f)
}

func (b *mapBuilder) text(name, value string) {
	b.add(Field{Name: name, Value: value})
}

// number renders ints under the form's "don't show zero" convention: zero
// becomes the empty string so unused boxes stay blank.
func (b *mapBuilder) number(name string, value int) {
	if value == 0 {
		b.text(name, "")
		return
	}
	b.text(name, strconv.Itoa(value))
}

// check emits a checkbox field only when the flag is set. Unchecked boxes are
// absent from the mapping entirely, not rendered as "false".
func (b *mapBuilder) check(name string, set bool) {
	if !set {
		return
	}
	b.add(Field{Name: name, Value: CheckedValue, Checkbox: true})
}

// Map translates a character into the flat form field mapping. It is pure and
// deterministic: equal characters produce identical mappings, in the same
// order. List-valued blocks are truncated to the form's slot counts; the
// truncation is logged but is not an error.
func Map(char *character.Character) (FieldMap, error) {
	if char == nil {
		return nil, gnerr.InvalidArgument("character is nil")
	}

	profBonus, err := ParseProficiencyBonus(char.ProficiencyBonus)
	if err != nil {
		return nil, err
	}

	b := &mapBuilder{seen: make(map[string]bool)}

	// Page 1 - header
	b.text("CharacterName", char.CharacterName)
	b.text("ClassLevel", char.ClassLevel)
	b.text("Background", char.Background)
	b.text("PlayerName", char.PlayerName)
	b.text("Race ", char.Race) // trailing space in the form
	b.text("Alignment", char.Alignment)
	b.text("XP", char.ExperiencePoints)

	// Ability scores and modifiers
	abilityMods := make(map[Ability]int, len(abilityFields))
	for _, af := range abilityFields {
		score := af.value(&char.AbilityScores)
		mod := Modifier(score)
		abilityMods[af.ability] = mod

		b.text(af.score, strconv.Itoa(score))
		b.text(af.mod, FormatModifier(mod))
	}

	b.text("ProfBonus", char.ProficiencyBonus)
	b.check("Inspiration", char.Inspiration)

	// Saving throws: ability modifier plus proficiency bonus when proficient.
	for _, sf := range savingThrowFields {
		bonus := abilityMods[sf.ability]
		if sf.proficient(&char.SavingThrows) {
			bonus += profBonus
		}
		b.text(sf.field, FormatModifier(bonus))
	}
	for _, sf := range savingThrowFields {
		b.check(sf.checkbox, sf.proficient(&char.SavingThrows))
	}

	// Skills: same formula, governing ability from the fixed table.
	for _, sf := range skillFields {
		bonus := abilityMods[SkillAbilities[sf.skill]]
		if sf.proficient(&char.Skills) {
			bonus += profBonus
		}
		b.text(sf.field, FormatModifier(bonus))
	}
	for _, sf := range skillFields {
		b.check(sf.checkbox, sf.proficient(&char.Skills))
	}

	b.text("Passive", char.PassivePerception)

	// Combat block
	b.text("AC", char.ArmorClass)
	b.text("Initiative", char.Initiative)
	b.text("Speed", char.Speed)
	b.text("HPMax", char.HitPointMaximum)
	b.text("HPCurrent", char.CurrentHitPoints)
	b.text("HPTemp", char.TemporaryHitPoints)
	b.text("HDTotal", char.HitDiceTotal)
	b.text("HD", char.HitDice)

	// Death saves stay in the model only: the form's checkbox names for them
	// are unverified, so rendering them risks ticking the wrong boxes.

	// Attacks: three rows on the form, extras dropped.
	if len(char.Attacks) > MaxAttacks {
		log.Printf("character has %d attacks, rendering the first %d", len(char.Attacks), MaxAttacks)
	}
	for i, atk := range char.Attacks {
		if i >= MaxAttacks {
			break
		}
		b.text(attackFields[i].name, atk.Name)
		b.text(attackFields[i].bonus, atk.AttackBonus)
		b.text(attackFields[i].damage, atk.DamageType)
	}
	b.text("AttacksSpellcasting", char.AttacksNotes)

	// Currency: zero denominations stay blank.
	b.number("CP", char.Currency.CP)
	b.number("SP", char.Currency.SP)
	b.number("EP", char.Currency.EP)
	b.number("GP", char.Currency.GP)
	b.number("PP", char.Currency.PP)

	b.text("Equipment", char.Equipment)

	// Personality
	b.text("PersonalityTraits ", char.PersonalityTraits) // trailing space
	b.text("Ideals", char.Ideals)
	b.text("Bonds", char.Bonds)
	b.text("Flaws", char.Flaws)

	b.text("ProficienciesLang", char.OtherProficienciesLanguages)
	b.text("Features and Traits", char.FeaturesTraits)

	// Page 2 - appearance & background
	b.text("CharacterName 2", char.CharacterName)
	b.text("Age", char.Appearance.Age)
	b.text("Height", char.Appearance.Height)
	b.text("Weight", char.Appearance.Weight)
	b.text("Eyes", char.Appearance.Eyes)
	b.text("Skin", char.Appearance.Skin)
	b.text("Hair", char.Appearance.Hair)

	b.text("Backstory", char.CharacterBackstory)
	b.text("Allies", char.AlliesOrganizations)
	b.text("FactionName", char.AlliesOrganizationsName)
	b.text("Feat+Traits", char.AdditionalFeaturesTraits)
	b.text("Treasure", char.Treasure)

	// Page 3 - spellcasting header
	b.text("Spellcasting Class 2", char.Spellcasting.Class)
	b.text("SpellcastingAbility 2", char.Spellcasting.Ability)
	b.text("SpellSaveDC  2", char.Spellcasting.SaveDC) // two spaces before the 2
	b.text("SpellAtkBonus 2", char.Spellcasting.AttackBonus)

	// Cantrips: eight lines.
	if len(char.Spellcasting.Cantrips) > MaxCantrips {
		log.Printf("character has %d cantrips, rendering the first %d", len(char.Spellcasting.Cantrips), MaxCantrips)
	}
	for i, cantrip := range char.Spellcasting.Cantrips {
		if i >= MaxCantrips {
			break
		}
		b.text(cantripFields[i], cantrip)
	}

	// Spell slots for levels 1-9; zero totals leave the boxes blank.
	for level := 1; level <= 9; level++ {
		slots := char.Spellcasting.Slots(level)
		fieldNum := strconv.Itoa(level + slotFieldOffset)
		if slots.Total != 0 {
			b.text("SlotsTotal "+fieldNum, strconv.Itoa(slots.Total))
		}
		if slots.Expended != 0 {
			b.text("SlotsRemaining "+fieldNum, strconv.Itoa(slots.Expended))
		}
	}

	// Level-1 spell lines. Higher-level spell line fields on the form do not
	// follow a usable numbering scheme, so only level 1 is rendered.
	spells := char.Spellcasting.SpellNames(1)
	if len(spells) > MaxLevel1Spells {
		log.Printf("character has %d level-1 spells, rendering the first %d", len(spells), MaxLevel1Spells)
	}
	for i, spell := range spells {
		if i >= MaxLevel1Spells {
			break
		}
		b.text(level1SpellFields[i], spell)
	}

	if b.err != nil {
		return nil, b.err
	}
	return b.fields, nil
}
