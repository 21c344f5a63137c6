package importassembly

import (
	"errors"
	"fmt"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

const (
	failureReasonNoFrameEntry         = "import has no frame entry"
	failureReasonMultipleFrameEntries = "import has more than one frame entry"
)

// Catalog is the part of the catalog this feature reads.
type Catalog interface {
	Frame(id core.ItemIDInt) (*core.Frame, bool)
	Part(id core.ItemIDInt) (core.CatalogItem, bool)
}

// Decide determines the next assembly snapshot from an import.
//
// Business Rules:
//
//	GIVEN: A list of entries
//	WHEN: ImportAssembly command is received
//	THEN: AssemblyImported event is generated and the reconstructed assembly is the next snapshot
//	ERROR: "import has no frame entry" / "import has more than one frame entry"
//	ERROR: unknown frame or part id, or any entry that cannot be installed where it says
//	       (category, frame size, occupied point or other-part constraints)
func Decide(catalog Catalog, command Command) core.DecisionResult {
	assembly, err := reconstruct(catalog, command.Entries)
	if err != nil {
		event := core.BuildImportingAssemblyFailed(err.Error(), command.OccurredAt)
		return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, errors.Join(core.ErrMalformedImport, err)))
	}

	return core.SuccessDecision(
		assembly,
		core.BuildAssemblyImported(assembly.ID, assembly.Progress().Installed, command.OccurredAt),
	)
}

func reconstruct(catalog Catalog, entries []Entry) (*core.Frame, error) {
	frameEntry, err := findFrameEntry(entries)
	if err != nil {
		return nil, err
	}

	assembly, found := catalog.Frame(frameEntry.ItemID)
	if !found {
		return nil, fmt.Errorf("%w: id %d", core.ErrFrameNotFound, frameEntry.ItemID)
	}

	for _, entry := range entries {
		if entry.IsFrame() {
			continue
		}

		part, found := catalog.Part(entry.ItemID)
		if !found {
			return nil, fmt.Errorf("%w: id %d at position %d", core.ErrItemNotFound, entry.ItemID, entry.PositionID)
		}

		if err := core.CheckPlacement(assembly, part, entry.PositionID); err != nil {
			return nil, err
		}

		point, _ := assembly.Point(entry.PositionID)
		if err := point.Install(part); err != nil {
			return nil, err
		}
	}

	return assembly, nil
}

func findFrameEntry(entries []Entry) (Entry, error) {
	var frameEntries []Entry
	for _, entry := range entries {
		if entry.IsFrame() {
			frameEntries = append(frameEntries, entry)
		}
	}

	switch len(frameEntries) {
	case 0:
		return Entry{}, errors.New(failureReasonNoFrameEntry)
	case 1:
		return frameEntries[0], nil
	default:
		return Entry{}, errors.New(failureReasonMultipleFrameEntries)
	}
}
