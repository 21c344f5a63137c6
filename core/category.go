package core

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is the closed set of catalog item kinds.
type Category int

const (
	// CategoryFrame is the root of an assembly.
	CategoryFrame Category = iota
	// CategoryMotor is a motor including its props.
	CategoryMotor
	// CategoryBattery is a battery pack.
	CategoryBattery
	// CategoryFlightController is a flight controller board.
	CategoryFlightController
	// CategoryCamera is an FPV camera.
	CategoryCamera
	// CategoryVideoAntenna is a video transmitter antenna.
	CategoryVideoAntenna
	// CategoryRadioModule is a radio receiver module.
	CategoryRadioModule

	categoryCount
)

var categoryTags = [categoryCount]string{
	CategoryFrame:            "frame",
	CategoryMotor:            "motor",
	CategoryBattery:          "battery",
	CategoryFlightController: "flight-controller",
	CategoryCamera:           "camera",
	CategoryVideoAntenna:     "video-antenna",
	CategoryRadioModule:      "radio-module",
}

// Categories returns all categories in catalog order, the frame first.
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := CategoryFrame; c < categoryCount; c++ {
		all = append(all, c)
	}

	return all
}

// PartCategories returns all categories that can be installed on a connection point.
func PartCategories() []Category {
	return Categories()[1:]
}

// ParseCategory resolves a category tag like "flight-controller".
func ParseCategory(tag string) (Category, error) {
	for c, t := range categoryTags {
		if t == tag {
			return Category(c), nil
		}
	}

	return 0, errors.Join(ErrUnknownCategory, fmt.Errorf("tag %q", tag))
}

// IsValid reports whether c is one of the declared categories.
func (c Category) IsValid() bool {
	return c >= CategoryFrame && c < categoryCount
}

// IsPart reports whether c can occupy a connection point.
func (c Category) IsPart() bool {
	return c.IsValid() && c != CategoryFrame
}

// String returns the category tag.
func (c Category) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return categoryTags[c]
}

// DisplayName returns the human-readable name, e.g. "Flight Controller".
func (c Category) DisplayName() string {
	if !c.IsValid() {
		return c.String()
	}

	return cases.Title(language.English).String(strings.ReplaceAll(categoryTags[c], "-", " "))
}

// MarshalText encodes the category as its tag.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.Join(ErrUnknownCategory, fmt.Errorf("value %d", int(c)))
	}

	return []byte(categoryTags[c]), nil
}

// UnmarshalText decodes a category tag.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
