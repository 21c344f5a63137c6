package codec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/exportassembly"
	"github.com/AntonStoeckl/drone-assembly-go/features/importassembly"
)

const (
	columnID            = "id"
	columnPositionID    = "positionId"
	columnType          = "type"
	columnName          = "name"
	columnPrice         = "price"
	columnCompatibility = "compatibility"

	sizeSeparator = ";"
)

var csvHeader = []string{columnID, columnPositionID, columnType, columnName, columnPrice, columnCompatibility}

// EncodeCSV writes a header line and one line per row.
func EncodeCSV(w io.Writer, rows exportassembly.Rows) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(csvRecord(row)); err != nil {
			return fmt.Errorf("write csv row for item %d: %w", row.ItemID, err)
		}
	}

	writer.Flush()

	return writer.Error()
}

func csvRecord(row exportassembly.Row) []string {
	positionID := ""
	if !row.IsFrame() {
		positionID = strconv.Itoa(row.PositionID)
	}

	sizes := make([]string, 0, len(row.CompatibleSizes))
	for _, size := range row.CompatibleSizes {
		sizes = append(sizes, strconv.Itoa(size))
	}

	return []string{
		strconv.Itoa(row.ItemID),
		positionID,
		row.Category.DisplayName(),
		row.Name,
		strconv.FormatFloat(row.Price, 'f', -1, 64),
		strings.Join(sizes, sizeSeparator),
	}
}

// DecodeCSV reads import entries from delimited text with a header line.
// The id and positionId columns are located by name; other columns are ignored.
// Blank lines are skipped. An empty positionId marks the frame.
func DecodeCSV(r io.Reader) ([]importassembly.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.Join(core.ErrMalformedImport, errors.New("missing csv header"))
	}
	if err != nil {
		return nil, errors.Join(core.ErrMalformedImport, err)
	}

	idColumn, positionColumn, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var entries []importassembly.Entry
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Join(core.ErrMalformedImport, readErr)
		}

		line, _ := reader.FieldPos(0)
		entry, entryErr := csvEntry(record, idColumn, positionColumn)
		if entryErr != nil {
			return nil, errors.Join(core.ErrMalformedImport, fmt.Errorf("line %d: %w", line, entryErr))
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func locateColumns(header []string) (int, int, error) {
	idColumn, positionColumn := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) {
		case columnID:
			idColumn = i
		case columnPositionID:
			positionColumn = i
		}
	}

	if idColumn < 0 || positionColumn < 0 {
		return 0, 0, errors.Join(
			core.ErrMalformedImport,
			fmt.Errorf("csv header needs %q and %q columns, got %v", columnID, columnPositionID, header),
		)
	}

	return idColumn, positionColumn, nil
}

func csvEntry(record []string, idColumn, positionColumn int) (importassembly.Entry, error) {
	if max(idColumn, positionColumn) >= len(record) {
		return importassembly.Entry{}, fmt.Errorf("expected at least %d fields, got %d", max(idColumn, positionColumn)+1, len(record))
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[idColumn]))
	if err != nil {
		return importassembly.Entry{}, fmt.Errorf("id: %w", err)
	}

	entry := importassembly.Entry{ItemID: id}

	if position := strings.TrimSpace(record[positionColumn]); position != "" {
		if entry.PositionID, err = strconv.Atoi(position); err != nil {
			return importassembly.Entry{}, fmt.Errorf("positionId: %w", err)
		}
	}

	return entry, nil
}
