package store_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/ItzRainUwU/RimuWordle/internal/stats"
	"github.com/ItzRainUwU/RimuWordle/internal/store"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	schema := `
	CREATE TABLE round_state (owner TEXT PRIMARY KEY, data TEXT NOT NULL, updated_at TEXT NOT NULL);
	CREATE TABLE lifetime_stats (owner TEXT PRIMARY KEY, data TEXT NOT NULL, updated_at TEXT NOT NULL);`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func TestSQLiteGateway(t *testing.T) {
	ctx := context.Background()

	Convey("Given a sqlite gateway on a fresh database", t, func() {
		db := openTestDB(t)
		gw := store.NewSQLite(db)

		Convey("Missing records report ErrNotFound", func() {
			_, err := gw.LoadRound(ctx, "nobody")
			So(err, ShouldEqual, store.ErrNotFound)
			_, err = gw.LoadStats(ctx, "nobody")
			So(err, ShouldEqual, store.ErrNotFound)
		})

		Convey("Round records survive the JSON round-trip", func() {
			rec := store.RoundRecord{Secret: "crane", History: []string{"trace", "grace"}, Terminal: false}
			So(gw.SaveRound(ctx, "p1", rec), ShouldBeNil)

			got, err := gw.LoadRound(ctx, "p1")
			So(err, ShouldBeNil)
			So(*got, ShouldResemble, rec)

			Convey("And an upsert replaces in place", func() {
				rec.Terminal = true
				So(gw.SaveRound(ctx, "p1", rec), ShouldBeNil)
				got, err := gw.LoadRound(ctx, "p1")
				So(err, ShouldBeNil)
				So(got.Terminal, ShouldBeTrue)
			})
		})

		Convey("Malformed stored data is treated as absent, not fatal", func() {
			_, err := db.Exec(`INSERT INTO round_state (owner, data, updated_at) VALUES ('p1', '{not json', '')`)
			So(err, ShouldBeNil)
			_, err = gw.LoadRound(ctx, "p1")
			So(err, ShouldEqual, store.ErrNotFound)

			_, err = db.Exec(`INSERT INTO lifetime_stats (owner, data, updated_at) VALUES ('p1', 'garbage', '')`)
			So(err, ShouldBeNil)
			_, err = gw.LoadStats(ctx, "p1")
			So(err, ShouldEqual, store.ErrNotFound)
		})

		Convey("Stats persist per owner", func() {
			s := stats.Lifetime{Played: 7, Wins: 5, CurrentStreak: 1, MaxStreak: 4}
			s.Distribution[3] = 5
			So(gw.SaveStats(ctx, "p1", s), ShouldBeNil)

			got, err := gw.LoadStats(ctx, "p1")
			So(err, ShouldBeNil)
			So(*got, ShouldResemble, s)
		})
	})
}
