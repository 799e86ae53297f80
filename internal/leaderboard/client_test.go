package leaderboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ItzRainUwU/RimuWordle/internal/leaderboard"
)

func TestClient(t *testing.T) {
	ctx := context.Background()

	Convey("Given a leaderboard service", t, func() {
		var (
			mu       sync.Mutex
			received []map[string]any
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/submit-score":
				var body map[string]any
				_ = json.NewDecoder(r.Body).Decode(&body)
				mu.Lock()
				received = append(received, body)
				mu.Unlock()
				_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
			case "/leaderboard":
				_ = json.NewEncoder(w).Encode([]leaderboard.Entry{
					{Username: "ada", Guesses: 2},
					{Username: "bob", Guesses: 4},
				})
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		client := leaderboard.NewClient(srv.URL)

		Convey("Submit posts the score payload", func() {
			So(client.Submit(ctx, "ada", 3), ShouldBeNil)
			mu.Lock()
			defer mu.Unlock()
			So(len(received), ShouldEqual, 1)
			So(received[0]["username"], ShouldEqual, "ada")
			So(received[0]["guesses"], ShouldEqual, float64(3))
		})

		Convey("Top decodes the ranked list", func() {
			rows, err := client.Top(ctx)
			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Username, ShouldEqual, "ada")
			So(rows[0].Guesses, ShouldEqual, 2)
		})
	})

	Convey("Given an unreachable service", t, func() {
		client := leaderboard.NewClient("http://127.0.0.1:1")

		Convey("Submit returns an error without panicking", func() {
			So(client.Submit(ctx, "ada", 3), ShouldNotBeNil)
		})

		Convey("Top returns an error without panicking", func() {
			_, err := client.Top(ctx)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("A non-2xx submission surfaces as an error", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"nope"}`, http.StatusBadRequest)
		}))
		defer srv.Close()
		client := leaderboard.NewClient(srv.URL)
		So(client.Submit(ctx, "ada", 3), ShouldNotBeNil)
	})
}
