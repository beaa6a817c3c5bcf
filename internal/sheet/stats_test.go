package sheet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
	"github.com/gamenight-tools/gamenight/internal/sheet"
)

func TestModifier(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{7, -2}, // floor, not truncation: -3/2 is -2
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{15, 2},
		{20, 5},
		{30, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sheet.Modifier(tt.score), "modifier of %d", tt.score)
	}
}

func TestModifier_MatchesFloorAcrossRange(t *testing.T) {
	for score := 1; score <= 30; score++ {
		want := int(math.Floor(float64(score-10) / 2))
		assert.Equal(t, want, sheet.Modifier(score), "modifier of %d", score)
	}
}

func TestFormatModifier(t *testing.T) {
	tests := []struct {
		mod  int
		want string
	}{
		{3, "+3"},
		{0, "+0"},
		{-2, "-2"},
		{10, "+10"},
		{-5, "-5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sheet.FormatModifier(tt.mod))
	}
}

func TestParseProficiencyBonus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plus prefix", input: "+3", want: 3},
		{name: "plus zero", input: "+0", want: 0},
		{name: "empty means unset", input: "", want: 0},
		{name: "bare number", input: "4", want: 4},
		{name: "negative passes through", input: "-1", want: -1},
		{name: "garbage is an error", input: "three", wantErr: true},
		{name: "trailing junk is an error", input: "+3 (expertise)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sheet.ParseProficiencyBonus(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, gnerr.IsValidation(err), "parse failures are validation errors")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkillAbilities_CoversAllSkills(t *testing.T) {
	assert.Len(t, sheet.SkillAbilities, 18)

	valid := map[sheet.Ability]bool{
		sheet.AbilityStrength:     true,
		sheet.AbilityDexterity:    true,
		sheet.AbilityConstitution: true,
		sheet.AbilityIntelligence: true,
		sheet.AbilityWisdom:       true,
		sheet.AbilityCharisma:     true,
	}
	for skill, ability := range sheet.SkillAbilities {
		assert.True(t, valid[ability], "skill %s maps to unknown ability %s", skill, ability)
	}

	// Spot-check the rules table.
	assert.Equal(t, sheet.AbilityDexterity, sheet.SkillAbilities[sheet.SkillStealth])
	assert.Equal(t, sheet.AbilityStrength, sheet.SkillAbilities[sheet.SkillAthletics])
	assert.Equal(t, sheet.AbilityWisdom, sheet.SkillAbilities[sheet.SkillAnimalHandling])
	assert.Equal(t, sheet.AbilityCharisma, sheet.SkillAbilities[sheet.SkillPerformance])
	assert.Equal(t, sheet.AbilityIntelligence, sheet.SkillAbilities[sheet.SkillReligion])
}
