package section

import (
	"encoding/json"
	"fmt"
	"os"
)

// File is the JSON layout accepted by LoadFromFile: either a tabulated
// property set, or plate dimensions of a built-up I-shape
type File struct {
	Properties
	Plates *Plates `json:"plates,omitempty"`
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Properties, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a section definition
func Parse(data []byte) (*Properties, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode section: %w", err)
	}

	props := &f.Properties
	if f.Plates != nil {
		built, err := f.Plates.IShape(f.Designation)
		if err != nil {
			return nil, err
		}
		built.TypeTag = f.TypeTag
		props = built
	}
	if props.Family == Unknown && props.TypeTag != "" {
		fam, err := FamilyOf(props.TypeTag)
		if err != nil {
			return nil, err
		}
		props.Family = fam
	}

	if err := props.Validate(); err != nil {
		return nil, err
	}
	return props, nil
}
