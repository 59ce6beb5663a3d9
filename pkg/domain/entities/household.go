package entities

import (
	"fmt"
	"strings"
)

// Gender identifies the requirement group a household member belongs to
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender normalizes a gender label from user input or a data file
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	default:
		return "", fmt.Errorf("invalid gender: %q (expected: male or female)", s)
	}
}

// String method for Gender
func (g Gender) String() string {
	return string(g)
}

// HouseholdMember represents one person the weekly plan must feed
type HouseholdMember struct {
	Age    int
	Gender Gender
}

// Validate checks that the member can be matched against a requirement table
func (m HouseholdMember) Validate() error {
	if m.Age <= 0 {
		return fmt.Errorf("member age must be positive, got %d", m.Age)
	}
	if m.Gender != Male && m.Gender != Female {
		return fmt.Errorf("invalid member gender: %q", m.Gender)
	}
	return nil
}
