package parser

import (
	"encoding/json"

	"go.trai.ch/getlicense/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ParseDataFile parses a YAML data file into JSON-compatible values.
// Numbers come back as float64 so the value survives a trip through the cache file unchanged.
func ParseDataFile(filename, raw string) (any, error) {
	var parsed any
	if err := yaml.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDataDecodeFailed.Error()), "file", filename)
	}
	if parsed == nil {
		return nil, nil
	}

	normalized, err := normalize(parsed)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDataDecodeFailed.Error()), "file", filename)
	}
	return normalized, nil
}

func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeRuleTable views a cached rules.yml value as a rule table.
func DecodeRuleTable(content any) (*domain.RuleTable, error) {
	var table domain.RuleTable
	if err := remarshal(content, &table); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDataDecodeFailed.Error()), "key", domain.RulesDataKey)
	}
	return &table, nil
}

// DecodeFieldTable views a cached fields.yml value as a field table.
// The value is either a bare list or a map holding it under "items" or "fields".
func DecodeFieldTable(content any) (*domain.FieldTable, error) {
	var items []domain.FieldSource

	switch v := content.(type) {
	case []any:
		if err := remarshal(v, &items); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDataDecodeFailed.Error()), "key", domain.FieldsDataKey)
		}
	case map[string]any:
		list, ok := v["items"]
		if !ok {
			list = v["fields"]
		}
		if list != nil {
			if err := remarshal(list, &items); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrDataDecodeFailed.Error()), "key", domain.FieldsDataKey)
			}
		}
	case nil:
	default:
		return nil, zerr.With(domain.ErrDataDecodeFailed, "key", domain.FieldsDataKey)
	}

	return &domain.FieldTable{Items: items}, nil
}

func remarshal(in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
