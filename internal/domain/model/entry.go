// Package model contains domain models passed between layers.
package model

// RawEntry is one archive entry as decoded from the API's JSON response.
// Section layout and presence are archive-defined and not guaranteed;
// only the normalizer is allowed to interpret it.
type RawEntry map[string]any

// Kind identifies one of the four relaxation observables.
type Kind string

// Relaxation observable kinds.
const (
	KindR1  Kind = "R1"  // longitudinal relaxation rate
	KindR2  Kind = "R2"  // transverse relaxation rate
	KindNOE Kind = "NOE" // heteronuclear NOE
	KindCCR Kind = "CCR" // cross-correlated relaxation
)

// Kinds lists the observable kinds in their canonical order.
var Kinds = []Kind{KindR1, KindR2, KindNOE, KindCCR}

// Defaults for labels missing from archive rows. These encode an NMR
// convention (the backbone amide nitrogen is the usual relaxation probe,
// and DD/CSA cross-correlation is the usual CCR experiment), not a
// universal schema default.
const (
	DefaultAtom       = "N"
	DefaultCCRSubtype = "DD_CSA"
)

// Measurement is one relaxation observation for one residue.
//
// A value or error that the archive row omits decodes to 0.0; the schema
// does not distinguish "missing" from "measured zero" (matching the
// upstream archive convention).
type Measurement struct {
	// Residue is the sequence position (Comp_index_ID); 0 when the row
	// does not resolve one.
	Residue int

	// Atom is the observed atom label for R1/R2/NOE rows. Empty for CCR rows.
	Atom string

	// Subtype is the cross-correlation experiment label for CCR rows.
	// Empty for R1/R2/NOE rows.
	Subtype string

	// Value is the measured quantity.
	Value float64

	// Error is the reported uncertainty; 0 when absent.
	Error float64
}

// RecordSet holds the normalized measurements of one archive entry,
// one ordered sequence per observable kind. The four sequences are
// populated independently and preserve source row order.
type RecordSet struct {
	EntryID int

	R1  []Measurement
	R2  []Measurement
	NOE []Measurement
	CCR []Measurement
}

// ByKind returns the measurement sequence for an observable kind.
func (s *RecordSet) ByKind(k Kind) []Measurement {
	switch k {
	case KindR1:
		return s.R1
	case KindR2:
		return s.R2
	case KindNOE:
		return s.NOE
	case KindCCR:
		return s.CCR
	}
	return nil
}

// Total returns the number of measurements across all kinds.
func (s *RecordSet) Total() int {
	return len(s.R1) + len(s.R2) + len(s.NOE) + len(s.CCR)
}
