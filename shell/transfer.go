package shell

import (
	"github.com/AntonStoeckl/drone-assembly-go/core"
	"github.com/AntonStoeckl/drone-assembly-go/features/exportassembly"
	"github.com/AntonStoeckl/drone-assembly-go/features/importassembly"
)

// ImportAssembly replaces the current assembly with one reconstructed from entries.
// Either the whole import succeeds or nothing changes; failures wrap core.ErrMalformedImport.
func (s *Store) ImportAssembly(entries []importassembly.Entry) error {
	command := importassembly.BuildCommand(entries, s.now())

	return s.execute(command.CommandType(), func() core.DecisionResult {
		return importassembly.Decide(s.catalog, command)
	})
}

// ImportRows imports a decoded row set. Only the item and position ids are used.
func (s *Store) ImportRows(rows exportassembly.Rows) error {
	return s.ImportAssembly(EntriesFrom(rows))
}

// ExportAssembly returns the row set of the current assembly.
func (s *Store) ExportAssembly() exportassembly.Rows {
	return exportassembly.Project(s.current())
}

// EntriesFrom keeps the identity columns of a row set.
func EntriesFrom(rows exportassembly.Rows) []importassembly.Entry {
	entries := make([]importassembly.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, importassembly.Entry{ItemID: row.ItemID, PositionID: row.PositionID})
	}

	return entries
}
