package model_test

import (
	"testing"

	"github.com/okian/larmor/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecordSet(t *testing.T) {
	Convey("Given a record set with measurements in several kinds", t, func() {
		set := &model.RecordSet{
			EntryID: 15477,
			R1:      []model.Measurement{{Residue: 1, Atom: "N", Value: 1.2}},
			NOE: []model.Measurement{
				{Residue: 1, Atom: "N", Value: 0.78},
				{Residue: 2, Atom: "N", Value: 0.81},
			},
		}

		Convey("ByKind returns the matching sequence", func() {
			So(set.ByKind(model.KindR1), ShouldHaveLength, 1)
			So(set.ByKind(model.KindR2), ShouldBeEmpty)
			So(set.ByKind(model.KindNOE), ShouldHaveLength, 2)
			So(set.ByKind(model.KindCCR), ShouldBeEmpty)
		})

		Convey("ByKind returns nil for an unknown kind", func() {
			So(set.ByKind(model.Kind("T1rho")), ShouldBeNil)
		})

		Convey("Total counts measurements across all kinds", func() {
			So(set.Total(), ShouldEqual, 3)
		})
	})

	Convey("Given the canonical kind order", t, func() {
		So(model.Kinds, ShouldResemble, []model.Kind{model.KindR1, model.KindR2, model.KindNOE, model.KindCCR})
	})
}
