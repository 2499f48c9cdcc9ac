package memory

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedUser is one entry of a fixture file.
type SeedUser struct {
	LastName  string `yaml:"last_name"`
	FirstName string `yaml:"first_name"`
	Email     string `yaml:"email"`
	BirthDate string `yaml:"birth_date"`
}

type seedFile struct {
	Users []SeedUser `yaml:"users"`
}

// LoadSeedFile reads a YAML fixture file of the form
//
//	users:
//	  - last_name: Doe
//	    first_name: Jane
//	    email: jane@example.com
//	    birth_date: 1990-04-12
//
// Unknown keys are rejected so typos surface at startup.
func LoadSeedFile(path string) ([]SeedUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return f.Users, nil
}
