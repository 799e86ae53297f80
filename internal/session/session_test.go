package session_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ItzRainUwU/RimuWordle/internal/game"
	"github.com/ItzRainUwU/RimuWordle/internal/session"
	"github.com/ItzRainUwU/RimuWordle/internal/stats"
	"github.com/ItzRainUwU/RimuWordle/internal/store"
	"github.com/ItzRainUwU/RimuWordle/internal/words"
)

// brokenGateway fails every call, standing in for an unavailable store.
type brokenGateway struct{}

var errDown = errors.New("disk on fire")

func (brokenGateway) LoadRound(context.Context, string) (*store.RoundRecord, error) {
	return nil, errDown
}
func (brokenGateway) SaveRound(context.Context, string, store.RoundRecord) error { return errDown }
func (brokenGateway) LoadStats(context.Context, string) (*stats.Lifetime, error) {
	return nil, errDown
}
func (brokenGateway) SaveStats(context.Context, string, stats.Lifetime) error { return errDown }

func TestSessionLifecycle(t *testing.T) {
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}
	ctx := context.Background()

	Convey("Given a persisted non-terminal round", t, func() {
		gw := store.NewMemory()
		_ = gw.SaveRound(ctx, "p1", store.RoundRecord{
			Secret:  "crane",
			History: []string{"trace"},
		})

		Convey("Resume adopts it without a new draw", func() {
			s := session.New("p1", gw)
			s.Resume(ctx)

			st := s.CurrentState()
			So(st.History, ShouldResemble, []string{"trace"})
			So(st.Terminal, ShouldBeFalse)
			So(st.Secret, ShouldBeEmpty) // not disclosed while active
			So(st.Verdicts[0], ShouldResemble, game.Score("trace", "crane"))

			Convey("And finishing the round wins with two guesses", func() {
				v, state, err := s.SubmitGuess(ctx, "crane")
				So(err, ShouldBeNil)
				So(v.AllCorrect(), ShouldBeTrue)
				So(state, ShouldEqual, "won")

				st := s.CurrentState()
				So(len(st.History), ShouldEqual, 2)
				So(st.Secret, ShouldEqual, "crane") // disclosed once terminal

				life := s.Stats()
				So(life.Played, ShouldEqual, 1)
				So(life.Wins, ShouldEqual, 1)
				So(life.Distribution[1], ShouldEqual, 1)

				Convey("And the terminal state was persisted", func() {
					rec, err := gw.LoadRound(ctx, "p1")
					So(err, ShouldBeNil)
					So(rec.Terminal, ShouldBeTrue)
					ls, err := gw.LoadStats(ctx, "p1")
					So(err, ShouldBeNil)
					So(ls.Wins, ShouldEqual, 1)
				})
			})
		})
	})

	Convey("Given a persisted terminal round", t, func() {
		gw := store.NewMemory()
		_ = gw.SaveRound(ctx, "p1", store.RoundRecord{
			Secret:   "crane",
			History:  []string{"crane"},
			Terminal: true,
		})

		Convey("Resume starts fresh instead of replaying it", func() {
			s := session.New("p1", gw)
			s.Resume(ctx)
			st := s.CurrentState()
			So(st.History, ShouldBeEmpty)
			So(st.Terminal, ShouldBeFalse)
		})
	})

	Convey("Given a malformed persisted round", t, func() {
		gw := store.NewMemory()
		_ = gw.SaveRound(ctx, "p1", store.RoundRecord{
			Secret:  "cr", // wrong length
			History: []string{"trace"},
		})

		Convey("Resume treats it as absent", func() {
			s := session.New("p1", gw)
			s.Resume(ctx)
			st := s.CurrentState()
			So(st.History, ShouldBeEmpty)
			So(len(s.CurrentState().RoundID), ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given an unavailable storage gateway", t, func() {
		s := session.New("p1", brokenGateway{})
		s.Resume(ctx)

		Convey("Gameplay continues entirely in memory", func() {
			So(s.Degraded(), ShouldBeTrue)
			_, state, err := s.SubmitGuess(ctx, "trace")
			So(err, ShouldBeNil)
			So(state, ShouldEqual, "playing")
			So(len(s.CurrentState().History), ShouldEqual, 1)
		})
	})

	Convey("Given a fresh session", t, func() {
		gw := store.NewMemory()
		s := session.New("p1", gw)
		s.Resume(ctx)

		Convey("NewRound without force keeps the current round", func() {
			id := s.CurrentState().RoundID
			s.NewRound(ctx, false)
			So(s.CurrentState().RoundID, ShouldEqual, id)

			Convey("And with force draws a new one", func() {
				s.NewRound(ctx, true)
				So(s.CurrentState().History, ShouldBeEmpty)
			})
		})

		Convey("Hard mode can be enabled before the first guess", func() {
			So(s.SetHardMode(true), ShouldBeNil)
			So(s.HardMode(), ShouldBeTrue)
		})

		Convey("Enabling hard mode mid-round is rejected, toggle unchanged", func() {
			_, _, err := s.SubmitGuess(ctx, "trace")
			So(err, ShouldBeNil)

			err = s.SetHardMode(true)
			hv, ok := game.IsViolation(err)
			So(ok, ShouldBeTrue)
			So(hv.Kind, ShouldEqual, game.ViolationEnableMidRound)
			So(s.HardMode(), ShouldBeFalse)

			Convey("Disabling is always allowed", func() {
				So(s.SetHardMode(false), ShouldBeNil)
			})
		})

		Convey("Validation failures leave state untouched", func() {
			before := s.CurrentState()
			_, _, err := s.SubmitGuess(ctx, "zz")
			So(err, ShouldEqual, game.ErrMalformed)
			_, _, err = s.SubmitGuess(ctx, "zzzzz")
			So(err, ShouldEqual, game.ErrUnknownWord)
			So(s.CurrentState().History, ShouldResemble, before.History)
		})
	})

	Convey("Round completion notifies subscribers exactly once", t, func() {
		gw := store.NewMemory()
		_ = gw.SaveRound(ctx, "p1", store.RoundRecord{Secret: "crane"})

		s := session.New("p1", gw)
		s.Resume(ctx)

		var got []session.Result
		s.OnRoundComplete(func(r session.Result) { got = append(got, r) })

		_, _, err := s.SubmitGuess(ctx, "trace")
		So(err, ShouldBeNil)
		So(got, ShouldBeEmpty) // not terminal yet

		_, _, err = s.SubmitGuess(ctx, "crane")
		So(err, ShouldBeNil)
		So(len(got), ShouldEqual, 1)
		So(got[0].Won, ShouldBeTrue)
		So(got[0].GuessesUsed, ShouldEqual, 2)
		So(got[0].Secret, ShouldEqual, "crane")

		_, _, err = s.SubmitGuess(ctx, "crane")
		So(err, ShouldEqual, game.ErrRoundOver)
		So(len(got), ShouldEqual, 1)
	})

	Convey("A lost round reports a loss and resets the streak", t, func() {
		gw := store.NewMemory()
		_ = gw.SaveRound(ctx, "p1", store.RoundRecord{Secret: "crane"})
		_ = gw.SaveStats(ctx, "p1", stats.Lifetime{Played: 2, Wins: 2, CurrentStreak: 2, MaxStreak: 2})

		s := session.New("p1", gw)
		s.Resume(ctx)

		var got []session.Result
		s.OnRoundComplete(func(r session.Result) { got = append(got, r) })

		for _, g := range []string{"pivot", "lucky", "moist", "dusty", "sworn", "bloom"} {
			_, _, err := s.SubmitGuess(ctx, g)
			So(err, ShouldBeNil)
		}

		st := s.CurrentState()
		So(st.Terminal, ShouldBeTrue)
		So(st.Won, ShouldBeFalse)
		So(st.Secret, ShouldEqual, "crane")

		life := s.Stats()
		So(life.Played, ShouldEqual, 3)
		So(life.CurrentStreak, ShouldEqual, 0)
		So(life.MaxStreak, ShouldEqual, 2)

		So(len(got), ShouldEqual, 1)
		So(got[0].Won, ShouldBeFalse)
	})
}
