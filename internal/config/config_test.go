package config_test

import (
	"testing"

	"github.com/okian/larmor/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewDefaults(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then sensible defaults are set", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.CacheDir, ShouldEqual, "./bmrb_data")
			So(cfg.APIURL, ShouldEqual, "https://api.bmrb.io/v2")
			So(cfg.StructureURL, ShouldEqual, "https://files.rcsb.org/download")
			So(cfg.HTTPTimeoutMS, ShouldEqual, 30_000)
			So(cfg.MetricsAddr, ShouldBeEmpty)
			So(cfg.Entries, ShouldBeEmpty)
		})
	})
}
