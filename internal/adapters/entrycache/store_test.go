package entrycache_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/larmor/internal/adapters/entrycache"
	"github.com/okian/larmor/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a file-backed entry store", t, func() {
		dir := t.TempDir()
		store, err := entrycache.NewFileStore(entrycache.WithDir(dir))
		So(err, ShouldBeNil)

		Convey("When an uncached identifier is requested", func() {
			_, err := store.Get(ctx, 15477)

			Convey("Then a cache miss is reported", func() {
				So(errors.Is(err, entrycache.ErrMiss), ShouldBeTrue)
			})
		})

		Convey("When a document is stored and re-read", func() {
			raw := model.RawEntry{
				"heteronucl_T1_relaxation": []any{
					map[string]any{"data": []any{
						map[string]any{"Comp_index_ID": float64(1), "Val": "1.2"},
					}},
				},
			}
			So(store.Put(ctx, 15477, raw), ShouldBeNil)

			got, err := store.Get(ctx, 15477)

			Convey("Then the round-tripped document matches", func() {
				So(err, ShouldBeNil)
				So(got, ShouldResemble, raw)
			})

			Convey("And the cache file sits at the deterministic path", func() {
				So(store.Path(15477), ShouldEqual, filepath.Join(dir, "bmrb_15477.json"))
				_, statErr := os.Stat(store.Path(15477))
				So(statErr, ShouldBeNil)
			})

			Convey("And re-storing the same document is idempotent", func() {
				before, readErr := os.ReadFile(store.Path(15477))
				So(readErr, ShouldBeNil)

				So(store.Put(ctx, 15477, raw), ShouldBeNil)

				after, readErr := os.ReadFile(store.Path(15477))
				So(readErr, ShouldBeNil)
				So(string(after), ShouldEqual, string(before))
			})
		})

		Convey("When a cache file holds corrupt JSON", func() {
			So(os.WriteFile(store.Path(6457), []byte("{nope"), 0o644), ShouldBeNil)

			_, err := store.Get(ctx, 6457)

			Convey("Then the read fails without being a miss", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, entrycache.ErrMiss), ShouldBeFalse)
			})
		})
	})

	Convey("Given an unwritable cache location", t, func() {
		base := t.TempDir()
		file := filepath.Join(base, "occupied")
		So(os.WriteFile(file, []byte("x"), 0o644), ShouldBeNil)

		_, err := entrycache.NewFileStore(entrycache.WithDir(filepath.Join(file, "sub")))

		Convey("Then construction fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
