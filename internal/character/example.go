package character

// Example returns a fully populated demonstration character. The sheet
// example command prints it as JSON so players have a schema to start from.
func Example() *Character {
	return &Character{
		CharacterName:    "Thorn Ironbark",
		ClassLevel:       "Fighter 5",
		Background:       "Soldier",
		PlayerName:       "Example Player",
		Race:             "Half-Orc",
		Alignment:        "Lawful Good",
		ExperiencePoints: "6500",
		AbilityScores: AbilityScores{
			Strength:     18,
			Dexterity:    14,
			Constitution: 16,
			Intelligence: 10,
			Wisdom:       12,
			Charisma:     8,
		},
		Inspiration:      false,
		ProficiencyBonus: "+3",
		SavingThrows: SavingThrows{
			Strength:     true,
			Constitution: true,
		},
		Skills: Skills{
			Athletics:    true,
			Intimidation: true,
			Perception:   true,
			Survival:     true,
		},
		PassivePerception:  "14",
		ArmorClass:         "18",
		Initiative:         "+2",
		Speed:              "30 ft",
		HitPointMaximum:    "44",
		CurrentHitPoints:   "44",
		TemporaryHitPoints: "",
		HitDiceTotal:       "5d10",
		HitDice:            "5d10",
		DeathSaves:         DeathSaves{},
		Attacks: []Attack{
			{Name: "Greatsword", AttackBonus: "+7", DamageType: "2d6+4 slashing"},
			{Name: "Javelin", AttackBonus: "+7", DamageType: "1d6+4 piercing"},
			{Name: "Handaxe", AttackBonus: "+7", DamageType: "1d6+4 slashing"},
		},
		AttacksNotes: "Extra Attack: Can attack twice per Attack action.\nSecond Wind: Regain 1d10+5 HP as bonus action (1/short rest).",
		Currency:     Currency{SP: 15, GP: 75},
		Equipment:    "Greatsword\nChain mail\n2 Handaxes\n4 Javelins\nExplorer's pack\nInsignia of rank\nTrophy from fallen enemy\nDice set\nCommon clothes",

		PersonalityTraits: "I face problems head-on. A simple, direct solution is the best path to success.",
		Ideals:            "Responsibility. I do what I must and obey just authority.",
		Bonds:             "Those who fight beside me are worth dying for.",
		Flaws:             "I made a terrible mistake in battle that cost many lives—I would do anything to keep that secret.",

		OtherProficienciesLanguages: "Languages: Common, Orc\n\nArmor: All armor, shields\nWeapons: Simple weapons, martial weapons\nTools: Dice set, vehicles (land)",
		FeaturesTraits:              "Relentless Endurance\nSavage Attacks\nFighting Style: Great Weapon Fighting\nSecond Wind\nAction Surge (1 use)\nExtra Attack",

		Appearance: Appearance{
			Age:    "28",
			Height: "6'4\"",
			Weight: "250 lbs",
			Eyes:   "Yellow",
			Skin:   "Gray-green",
			Hair:   "Black",
		},
		CharacterAppearance:     "Massive half-orc with prominent tusks and numerous battle scars. Wears well-maintained chain mail with a military insignia.",
		CharacterBackstory:      "Thorn served in the king's army for a decade before a catastrophic battle changed everything...",
		AlliesOrganizations:     "The Iron Legion (former military unit)",
		AlliesOrganizationsName: "The Iron Legion",
		Treasure:                "A lucky gold coin from my first battle",
	}
}
