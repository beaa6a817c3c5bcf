package geo

import (
	"encoding/json"
	"os"
	"sort"

	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

// Home is one person's home address.
type Home struct {
	Name    string
	Address string
}

// LoadHomes reads a JSON object of person name to home address. Entries come
// back sorted by name so downstream output is stable between runs.
func LoadHomes(path string) ([]Home, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gnerr.WrapWithCode(err, gnerr.CodeNotFound, "reading homes file")
	}

	var byName map[string]string
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, gnerr.WrapWithCode(err, gnerr.CodeValidation, "homes file is not a JSON name-to-address object")
	}
	if len(byName) == 0 {
		return nil, gnerr.Validation("homes file has no entries")
	}

	homes := make([]Home, 0, len(byName))
	for name, address := range byName {
		homes = append(homes, Home{Name: name, Address: address})
	}
	sort.Slice(homes, func(i, j int) bool { return homes[i].Name < homes[j].Name })
	return homes, nil
}
