// Package normalize - reference data loaders
package normalize

import (
	"encoding/json"
	"os"

	"freight-rate/internal/errors"
)

// LoadAliasTable reads an alias table from a JSON file.
func LoadAliasTable(path string) (AliasTable, error) {
	var table AliasTable
	data, err := os.ReadFile(path)
	if err != nil {
		return table, errors.Wrapf(errors.TypeConfig, err, "read alias table %s", path)
	}
	if err := json.Unmarshal(data, &table); err != nil {
		return table, errors.Parsing("decode alias table", err)
	}
	return table, nil
}

// LoadList reads a flat JSON string array, used for the metro-city
// and special-states lists.
func LoadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "read list %s", path)
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.Parsing("decode list", err)
	}
	return list, nil
}
