// Package relax normalizes heterogeneous archive entries into typed
// relaxation record sets.
//
// The archive does not guarantee which sections an entry carries or how
// they are shaped. The normalizer tolerates absence everywhere (a missing
// section, loop, or field is a normal skip) but treats anything present
// and malformed as grounds to discard the whole entry: partial corruption
// invalidates confidence in the rest of the extraction.
package relax

import (
	"context"
	"fmt"

	"github.com/okian/larmor/internal/domain/model"
)

// Archive section keys, one per observable kind.
const (
	sectionT1  = "heteronucl_T1_relaxation"
	sectionT2  = "heteronucl_T2_relaxation"
	sectionNOE = "heteronucl_NOEs"
	sectionCCR = "cross_correlation_DD_CSA"
)

// Archive row field names.
const (
	fieldRows    = "data"
	fieldResidue = "Comp_index_ID"
	fieldAtom    = "Atom_ID"
	fieldRexType = "Rex_type"
	fieldValue   = "Val"
	fieldError   = "Val_err"
)

// sections maps each observable kind to its archive section key.
var sections = []struct {
	kind model.Kind
	key  string
}{
	{model.KindR1, sectionT1},
	{model.KindR2, sectionT2},
	{model.KindNOE, sectionNOE},
	{model.KindCCR, sectionCCR},
}

// Normalizer converts raw archive entries into RecordSets.
type Normalizer struct{}

// New constructs a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Normalize maps one raw archive entry into a RecordSet.
//
// A nil entry is a valid input and yields a nil set with no error and no
// field access. Absent sections, loops, or fields are skipped. Any value
// that is present but malformed aborts normalization of the entire entry
// with an error wrapping ErrMalformedEntry; no partial set is returned.
func (n *Normalizer) Normalize(_ context.Context, raw model.RawEntry, entryID int) (*model.RecordSet, error) {
	if raw == nil {
		return nil, nil
	}

	set := &model.RecordSet{EntryID: entryID}
	for _, sec := range sections {
		rows, err := decodeSection(raw, sec.key)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d, section %s: %v", ErrMalformedEntry, entryID, sec.key, err)
		}
		for _, row := range rows {
			m, err := decodeRow(row, sec.kind)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d, section %s: %v", ErrMalformedEntry, entryID, sec.key, err)
			}
			switch sec.kind {
			case model.KindR1:
				set.R1 = append(set.R1, m)
			case model.KindR2:
				set.R2 = append(set.R2, m)
			case model.KindNOE:
				set.NOE = append(set.NOE, m)
			case model.KindCCR:
				set.CCR = append(set.CCR, m)
			}
		}
	}

	return set, nil
}

// decodeRow extracts one typed Measurement from an archive row. Field
// defaults are kind-specific: R1/R2/NOE rows default the atom label, CCR
// rows default the cross-correlation subtype.
func decodeRow(row map[string]any, kind model.Kind) (model.Measurement, error) {
	residue, err := intField(row, fieldResidue)
	if err != nil {
		return model.Measurement{}, err
	}
	value, err := floatField(row, fieldValue)
	if err != nil {
		return model.Measurement{}, err
	}
	errVal, err := floatField(row, fieldError)
	if err != nil {
		return model.Measurement{}, err
	}

	m := model.Measurement{
		Residue: residue,
		Value:   value,
		Error:   errVal,
	}
	if kind == model.KindCCR {
		m.Subtype, err = stringField(row, fieldRexType, model.DefaultCCRSubtype)
	} else {
		m.Atom, err = stringField(row, fieldAtom, model.DefaultAtom)
	}
	if err != nil {
		return model.Measurement{}, err
	}
	return m, nil
}
