package seed_test

import (
	"testing"

	"github.com/okian/larmor/internal/adapters/seed"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCatalog(t *testing.T) {
	Convey("Given the seed catalog", t, func() {
		families := seed.Catalog()

		Convey("Then families come in their canonical order", func() {
			So(families, ShouldHaveLength, 3)
			So(families[0].Name, ShouldEqual, "GB3")
			So(families[1].Name, ShouldEqual, "ubiquitin")
			So(families[2].Name, ShouldEqual, "TDP43")
		})

		Convey("Then the flattened identifier list preserves that order", func() {
			So(seed.EntryIDs(), ShouldResemble, []int{15477, 17769, 6457, 15410, 19684, 26823})
		})

		Convey("Then mutating the returned slice does not change the catalog", func() {
			families[0].Name = "mutated"
			So(seed.Catalog()[0].Name, ShouldEqual, "GB3")
		})
	})
}
