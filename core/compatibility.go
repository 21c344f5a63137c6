package core

import (
	"errors"
	"fmt"
)

// MaxMotorsPerAssembly is the number of motors a quad frame carries.
const MaxMotorsPerAssembly = 4

// ViolationCode classifies a ConstraintViolation.
type ViolationCode string

const (
	// ViolationMotorMismatch means a motor differs from the motors already installed.
	ViolationMotorMismatch ViolationCode = "motor-mismatch"

	// ViolationMotorLimit means MaxMotorsPerAssembly motors are already installed.
	ViolationMotorLimit ViolationCode = "motor-limit"

	// ViolationSingleInstance means a part of the same category is already installed.
	ViolationSingleInstance ViolationCode = "single-instance"

	// ViolationMaxPrice means the cumulative price would exceed the advisory max price.
	ViolationMaxPrice ViolationCode = "max-price"
)

// ConstraintViolation is a non-fatal reason why a part should not be added to an assembly.
// The Reason is meant for display only; the Code is the contract.
type ConstraintViolation struct {
	Code   ViolationCode
	Reason string
}

// Error returns the human-readable reason.
func (v *ConstraintViolation) Error() string {
	return v.Reason
}

// IsAdvisory reports whether the violation only flags a choice instead of forbidding it.
func (v *ConstraintViolation) IsAdvisory() bool {
	return v.Code == ViolationMaxPrice
}

func violation(code ViolationCode, format string, args ...any) *ConstraintViolation {
	return &ConstraintViolation{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// partRule evaluates a candidate against the parts already installed on the assembly, excluding the candidate.
type partRule func(candidate CatalogItem, installed []CatalogItem) *ConstraintViolation

// partRules maps every part category to its rule. Frames have no rule.
var partRules = [categoryCount]partRule{
	CategoryMotor:            homogeneousMotorsRule,
	CategoryBattery:          singleInstanceRule,
	CategoryFlightController: singleInstanceRule,
	CategoryCamera:           singleInstanceRule,
	CategoryVideoAntenna:     singleInstanceRule,
	CategoryRadioModule:      singleInstanceRule,
}

func homogeneousMotorsRule(candidate CatalogItem, installed []CatalogItem) *ConstraintViolation {
	motors := 0
	for _, part := range installed {
		if part.Category != CategoryMotor {
			continue
		}

		if part.Name != candidate.Name {
			return violation(ViolationMotorMismatch, "all motors must be the same model, %q is installed", part.Name)
		}

		motors++
	}

	if motors >= MaxMotorsPerAssembly {
		return violation(ViolationMotorLimit, "only %d motors can be installed", MaxMotorsPerAssembly)
	}

	return nil
}

func singleInstanceRule(candidate CatalogItem, installed []CatalogItem) *ConstraintViolation {
	for _, part := range installed {
		if part.Category == candidate.Category {
			return violation(ViolationSingleInstance, "only one %s can be installed", candidate.Category.DisplayName())
		}
	}

	return nil
}

// CheckCompatibilityWithOtherParts evaluates the category-specific rule of the item against the parts
// already installed on the assembly (excluding the item itself).
//
// Returns nil when the item may be added, otherwise a *ConstraintViolation.
//
//	GIVEN: a motor
//	ERROR: motor-mismatch if an installed motor has a different name
//	ERROR: motor-limit if 4 or more motors are installed
//	GIVEN: any other part
//	ERROR: single-instance if a part of the same category is installed
func (i CatalogItem) CheckCompatibilityWithOtherParts(installed []CatalogItem) error {
	if !i.Category.IsValid() {
		return nil
	}

	rule := partRules[i.Category]
	if rule == nil {
		return nil
	}

	if v := rule(i, installed); v != nil {
		return v
	}

	return nil
}

// CheckInstallable reports whether the part could be installed somewhere on the frame:
// the frame exists, the part fits its size, a free point for its category exists,
// and the other-part rules pass. The advisory max price is not part of this check.
func CheckInstallable(frame *Frame, part CatalogItem) error {
	if err := checkFits(frame, part); err != nil {
		return err
	}

	if len(frame.FreePoints(part.Category)) == 0 {
		return errors.Join(ErrNoFreeConnectionPoint, fmt.Errorf("category %s", part.Category))
	}

	return part.CheckCompatibilityWithOtherParts(frame.InstalledParts())
}

// CheckPlacement reports whether the part may be installed on the connection point with the given id.
// It re-validates everything CheckInstallable does against that specific point.
func CheckPlacement(frame *Frame, part CatalogItem, pointID PointIDInt) error {
	if err := checkFits(frame, part); err != nil {
		return err
	}

	point, found := frame.Point(pointID)
	if !found {
		return errors.Join(ErrConnectionPointNotFound, fmt.Errorf("frame %d, point %d", frame.ID, pointID))
	}

	if point.Accepts != part.Category {
		return errors.Join(
			ErrCategoryMismatch,
			fmt.Errorf("point %d accepts %s, got %s", point.ID, point.Accepts, part.Category),
		)
	}

	if point.IsOccupied() {
		return errors.Join(ErrConnectionPointOccupied, fmt.Errorf("point %d holds %q", point.ID, point.Installed.Name))
	}

	return part.CheckCompatibilityWithOtherParts(frame.InstalledParts())
}

func checkFits(frame *Frame, part CatalogItem) error {
	if frame == nil {
		return ErrNoFrameSelected
	}

	if !part.Category.IsPart() {
		return errors.Join(ErrCategoryMismatch, fmt.Errorf("item %d is a %s", part.ID, part.Category))
	}

	if !part.FitsFrame(frame.CatalogItem) {
		return errors.Join(
			ErrIncompatibleFrameSize,
			fmt.Errorf("%q fits %v, frame %q is %v", part.Name, part.CompatibleSizes, frame.Name, frame.CompatibleSizes),
		)
	}

	return nil
}
