package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/larmor/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given no file and no environment overrides", t, func() {
		t.Setenv("LARMOR_CONFIG", "")

		cfg, err := config.Load(ctx)

		Convey("Then defaults are returned", func() {
			So(err, ShouldBeNil)
			So(cfg.CacheDir, ShouldEqual, "./bmrb_data")
		})
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("LARMOR_CONFIG", "")
		t.Setenv("LARMOR_CACHE_DIR", "/tmp/nmr-cache")
		t.Setenv("LARMOR_LOG_LEVEL", "debug")

		cfg, err := config.Load(ctx)

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.CacheDir, ShouldEqual, "/tmp/nmr-cache")
			So(cfg.LogLevel, ShouldEqual, "debug")
			// Untouched fields keep their defaults.
			So(cfg.APIURL, ShouldEqual, "https://api.bmrb.io/v2")
		})
	})

	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "larmor.yaml")
		content := "api_url: http://localhost:8080/v2\nentries:\n  - 15477\n  - 6457\n"
		So(os.WriteFile(path, []byte(content), 0o644), ShouldBeNil)
		t.Setenv("LARMOR_CONFIG", path)

		cfg, err := config.Load(ctx)

		Convey("Then file values layer over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.APIURL, ShouldEqual, "http://localhost:8080/v2")
			So(cfg.Entries, ShouldResemble, []int{15477, 6457})
		})

		Convey("And env still wins over the file", func() {
			t.Setenv("LARMOR_API_URL", "http://localhost:9090/v2")

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.APIURL, ShouldEqual, "http://localhost:9090/v2")
		})
	})

	Convey("Given an env override that empties a required field", t, func() {
		t.Setenv("LARMOR_CONFIG", "")
		t.Setenv("LARMOR_CACHE_DIR", " ")

		Convey("Then whitespace still counts as set", func() {
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.CacheDir, ShouldEqual, " ")
		})
	})

	Convey("Given a missing config file path", t, func() {
		t.Setenv("LARMOR_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := config.Load(ctx)

		Convey("Then loading fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
