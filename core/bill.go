package core

// BillLine is one installed item of an assembly.
type BillLine struct {
	Item CatalogItem

	// PointID is the connection point holding the item, 0 for the frame itself.
	PointID PointIDInt

	// Removable is false for the frame while parts are still installed on it.
	Removable bool
}

// BillSection groups the installed items of one category.
type BillSection struct {
	Category    Category
	DisplayName string
	Lines       []BillLine
}

// Bill is the grouped list of everything in an assembly, as a shopping cart shows it.
type Bill struct {
	Sections []BillSection
	Total    PriceFloat64
	Progress Progress
}

// BillOf groups the frame and its installed parts by category in catalog category order.
// The empty assembly yields an empty Bill.
func BillOf(frame *Frame) Bill {
	bill := Bill{
		Total:    frame.TotalPrice(),
		Progress: frame.Progress(),
	}

	if frame == nil {
		return bill
	}

	byCategory := make(map[Category][]BillLine)
	byCategory[CategoryFrame] = []BillLine{{
		Item:      frame.CatalogItem.Copy(),
		Removable: bill.Progress.Installed == 0,
	}}

	for _, point := range frame.ConnectionPoints {
		if point.Installed == nil {
			continue
		}

		byCategory[point.Accepts] = append(byCategory[point.Accepts], BillLine{
			Item:      point.Installed.Copy(),
			PointID:   point.ID,
			Removable: true,
		})
	}

	for _, category := range Categories() {
		lines, found := byCategory[category]
		if !found {
			continue
		}

		bill.Sections = append(bill.Sections, BillSection{
			Category:    category,
			DisplayName: category.DisplayName(),
			Lines:       lines,
		})
	}

	return bill
}
