// Package yaml loads the household roster from a YAML file.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tkoide/grocer/pkg/domain/entities"
)

// rosterFile mirrors the on-disk roster layout:
//
//	members:
//	  - age: 25
//	    gender: male
type rosterFile struct {
	Members []memberEntry `yaml:"members"`
}

type memberEntry struct {
	Age    int    `yaml:"age"`
	Gender string `yaml:"gender"`
}

// LoadHousehold reads a roster file and returns the validated members
func LoadHousehold(filename string) ([]entities.HouseholdMember, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open household file %s: %w", filename, err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse household file %s: %w", filename, err)
	}
	if len(file.Members) == 0 {
		return nil, fmt.Errorf("household file %s lists no members", filename)
	}

	members := make([]entities.HouseholdMember, 0, len(file.Members))
	for i, entry := range file.Members {
		gender, err := entities.ParseGender(entry.Gender)
		if err != nil {
			return nil, fmt.Errorf("household member %d: %w", i+1, err)
		}
		member := entities.HouseholdMember{Age: entry.Age, Gender: gender}
		if err := member.Validate(); err != nil {
			return nil, fmt.Errorf("household member %d: %w", i+1, err)
		}
		members = append(members, member)
	}
	return members, nil
}
