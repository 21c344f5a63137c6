// Package codec encodes exported assemblies as delimited text or JSON and decodes
// import files back into import entries.
//
// Both formats carry one row per item: the frame first with an empty position,
// then every installed part with the id of the connection point holding it.
// Only the id and position columns are read back; everything else is resolved
// against the catalog on import.
package codec
