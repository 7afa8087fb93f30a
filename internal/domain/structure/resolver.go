// Package structure resolves cross-references from archive entries to
// structure-database accession codes.
package structure

import (
	"github.com/okian/larmor/internal/domain/model"
)

// Related-entries section keys in the archive document.
const (
	sectionRelated = "related_entries"
	fieldDatabase  = "Database_name"
	fieldAccession = "Database_accession_code"

	// targetDatabase is the structure database we cross-reference into.
	targetDatabase = "PDB"
)

// ResolvePDB scans an entry's related-entries section for the first row
// referencing the PDB and returns its accession code.
//
// This lookup is fully lenient: a missing section, an off-shape row, or a
// missing field never fails, it just reports absence.
func ResolvePDB(raw model.RawEntry) (string, bool) {
	if raw == nil {
		return "", false
	}
	related, ok := raw[sectionRelated].([]any)
	if !ok {
		return "", false
	}
	for _, r := range related {
		row, ok := r.(map[string]any)
		if !ok {
			continue
		}
		if name, _ := row[fieldDatabase].(string); name != targetDatabase {
			continue
		}
		code, ok := row[fieldAccession].(string)
		if !ok || code == "" {
			continue
		}
		return code, true
	}
	return "", false
}
