package exportassembly

import (
	"slices"

	"github.com/AntonStoeckl/drone-assembly-go/core"
)

// Row is one exported item.
type Row struct {
	ItemID          core.ItemIDInt
	PositionID      core.PointIDInt // 0 for the frame
	Category        core.Category
	Name            string
	Price           core.PriceFloat64
	CompatibleSizes []core.FrameSizeInt
}

// IsFrame reports whether the row describes the frame.
func (r Row) IsFrame() bool {
	return r.PositionID == 0
}

// Rows is the exported row set of one assembly.
type Rows = []Row

// Project builds the row set of an assembly. The empty assembly yields no rows.
func Project(assembly *core.Frame) Rows {
	if assembly.IsEmpty() {
		return Rows{}
	}

	rows := make(Rows, 0, 1+assembly.Progress().Installed)
	rows = append(rows, rowOf(assembly.CatalogItem, 0))

	for _, point := range assembly.ConnectionPoints {
		if point.Installed == nil {
			continue
		}

		rows = append(rows, rowOf(*point.Installed, point.ID))
	}

	return rows
}

func rowOf(item core.CatalogItem, positionID core.PointIDInt) Row {
	return Row{
		ItemID:          item.ID,
		PositionID:      positionID,
		Category:        item.Category,
		Name:            item.Name,
		Price:           item.Price,
		CompatibleSizes: slices.Clone(item.CompatibleSizes),
	}
}
