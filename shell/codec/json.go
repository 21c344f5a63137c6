package codec

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/exportassembly"
	"github.com/AntonStoeckl/drone-assembly-go/features/importassembly"
)

type jsonRow struct {
	ID            core.ItemIDInt      `json:"id"`
	PositionID    *core.PointIDInt    `json:"positionId"`
	Type          string              `json:"type,omitempty"`
	Name          string              `json:"name,omitempty"`
	Price         core.PriceFloat64   `json:"price,omitempty"`
	Compatibility []core.FrameSizeInt `json:"compatibility,omitempty"`
}

// EncodeJSON writes the rows as an indented JSON array. The frame's positionId is null.
func EncodeJSON(w io.Writer, rows exportassembly.Rows) error {
	dtos := make([]jsonRow, 0, len(rows))
	for _, row := range rows {
		dto := jsonRow{
			ID:            row.ItemID,
			Type:          row.Category.DisplayName(),
			Name:          row.Name,
			Price:         row.Price,
			Compatibility: row.CompatibleSizes,
		}

		if !row.IsFrame() {
			positionID := row.PositionID
			dto.PositionID = &positionID
		}

		dtos = append(dtos, dto)
	}

	encoder := jsoniter.ConfigFastest.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(dtos); err != nil {
		return fmt.Errorf("encode json rows: %w", err)
	}

	return nil
}

// DecodeJSON reads import entries from a JSON array of objects with id and positionId.
// A null, missing or zero positionId marks the frame.
func DecodeJSON(r io.Reader) ([]importassembly.Entry, error) {
	var dtos []jsonRow
	if err := jsoniter.ConfigFastest.NewDecoder(r).Decode(&dtos); err != nil {
		return nil, errors.Join(core.ErrMalformedImport, fmt.Errorf("decode json rows: %w", err))
	}

	entries := make([]importassembly.Entry, 0, len(dtos))
	for i, dto := range dtos {
		if dto.ID <= 0 {
			return nil, errors.Join(core.ErrMalformedImport, fmt.Errorf("row %d: missing id", i))
		}

		entry := importassembly.Entry{ItemID: dto.ID}
		if dto.PositionID != nil {
			entry.PositionID = *dto.PositionID
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
