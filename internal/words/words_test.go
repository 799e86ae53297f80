package words_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ItzRainUwU/RimuWordle/internal/words"
)

func TestWordLists(t *testing.T) {
	if err := words.Init(); err != nil {
		t.Fatalf("words.Init: %v", err)
	}

	Convey("Given the embedded word lists", t, func() {
		Convey("Answers are non-empty five-letter lowercase words", func() {
			answers := words.Answers()
			So(len(answers), ShouldBeGreaterThan, 0)
			for _, w := range answers {
				So(len(w), ShouldEqual, 5)
			}
		})

		Convey("Every answer is also an allowed guess", func() {
			for _, w := range words.Answers() {
				So(words.IsAllowed(w), ShouldBeTrue)
			}
		})

		Convey("Lookups are case-insensitive", func() {
			So(words.IsAllowed("CRANE"), ShouldBeTrue)
			So(words.IsAllowed("CrAnE"), ShouldBeTrue)
			So(words.IsAnswer("ERASE"), ShouldBeTrue)
		})

		Convey("Guess-only words are allowed but not answers", func() {
			So(words.IsAllowed("speed"), ShouldBeTrue)
			So(words.IsAnswer("speed"), ShouldBeFalse)
		})

		Convey("Junk is not allowed", func() {
			So(words.IsAllowed("zzzzz"), ShouldBeFalse)
			So(words.IsAllowed(""), ShouldBeFalse)
		})

		Convey("RandomAnswer draws from the answer list", func() {
			for i := 0; i < 20; i++ {
				So(words.IsAnswer(words.RandomAnswer()), ShouldBeTrue)
			}
		})

		Convey("Stats counts line up with the sets", func() {
			a, g := words.Stats()
			So(a, ShouldEqual, len(words.Answers()))
			So(g, ShouldBeGreaterThanOrEqualTo, a)
		})
	})
}
