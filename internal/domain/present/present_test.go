package present_test

import (
	"testing"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/present"
	. "github.com/smartystreets/goconvey/convey"
)

func canonical() model.CanonicalScore {
	return model.CanonicalScore{
		Mode:           model.ModeClassic,
		DisplayedScore: 987_654,
		Statistics: model.HitStatistics{
			Great: 500, Ok: 10, Meh: 0, Miss: 1,
			SliderTail: 142, SliderCount: 150,
		},
		Combo:      800,
		Accuracy:   0.97,
		Rank:       "S",
		PP:         234.6,
		GlobalRank: 1234,
		StarRating: 5.2,
		Status:     model.StatusRanked,
	}
}

func TestFormatting(t *testing.T) {
	Convey("Given the formatting helpers", t, func() {
		Convey("Integers group with thousands separators", func() {
			So(present.GroupInt(987_654), ShouldEqual, "987,654")
			So(present.GroupInt(0), ShouldEqual, "0")
			So(present.GroupInt(1_000_000), ShouldEqual, "1,000,000")
		})

		Convey("Accuracy renders as a fixed two-decimal percentage", func() {
			So(present.FormatAccuracy(0.97), ShouldEqual, "97.00%")
			So(present.FormatAccuracy(0.9753), ShouldEqual, "97.53%")
			So(present.FormatAccuracy(1), ShouldEqual, "100.00%")
		})

		Convey("Star ratings render with two decimals", func() {
			So(present.FormatStars(5.2), ShouldEqual, "5.20")
		})
	})
}

func TestComputeClassic(t *testing.T) {
	Convey("Given a classic-mode canonical score on a ranked map", t, func() {
		m := present.Compute(canonical(), nil)

		Convey("The displayed score is the grouped classic total", func() {
			So(m.ScoreText, ShouldEqual, "987,654")
		})

		Convey("The hit grid uses the classic grouping", func() {
			So(m.HitRows, ShouldHaveLength, 3)
			So(m.HitRows[0].Cells, ShouldHaveLength, 2)
			So(m.HitRows[0].Cells[0].Label, ShouldEqual, "300")
			So(m.HitRows[0].Cells[1].Label, ShouldEqual, "100")
			So(m.HitRows[1].Cells[0].Label, ShouldEqual, "50")
			So(m.HitRows[1].Cells[1].Label, ShouldEqual, "Miss")
			So(m.HitRows[2].Cells[0].Label, ShouldEqual, "Combo")
			So(m.HitRows[2].Cells[1].Label, ShouldEqual, "Accuracy")
		})

		Convey("No heart is shown and pp rounds to an integer with suffix", func() {
			So(m.ShowHeart, ShouldBeFalse)
			So(m.PPText, ShouldEqual, "235pp")
		})

		Convey("The difficulty color matches the 5.2 bucket", func() {
			So(m.DifficultyColor, ShouldEqual, present.DifficultyColor(nil, 5.2))
			So(m.BadgeTextColor, ShouldEqual, "#000000")
		})
	})
}

func TestComputeModern(t *testing.T) {
	Convey("Given a modern-mode canonical score", t, func() {
		c := canonical()
		c.Mode = model.ModeModern
		m := present.Compute(c, nil)

		Convey("The hit grid surfaces 50s up top and the slider-end fraction", func() {
			So(m.HitRows, ShouldHaveLength, 3)
			So(m.HitRows[0].Cells, ShouldHaveLength, 3)
			So(m.HitRows[0].Cells[2].Label, ShouldEqual, "50")
			So(m.HitRows[1].Cells[1].Label, ShouldEqual, "Slider ends")
			So(m.HitRows[1].Cells[1].Value, ShouldEqual, "142/150")
		})
	})
}

func TestLovedHeart(t *testing.T) {
	Convey("Given a loved beatmap", t, func() {
		c := canonical()
		c.Status = model.StatusLoved

		Convey("Without a pp override only the heart shows", func() {
			m := present.Compute(c, nil)
			So(m.ShowHeart, ShouldBeTrue)
			So(m.PPText, ShouldEqual, present.HeartGlyph)
		})

		Convey("With a pp override the value shows with a heart suffix", func() {
			c.PP = 727.4
			c.PPOverridden = true
			m := present.Compute(c, nil)
			So(m.PPText, ShouldEqual, "727 "+present.HeartGlyph)
		})
	})
}

func TestBadgeTextThreshold(t *testing.T) {
	Convey("Given the badge text color threshold", t, func() {
		c := canonical()

		c.StarRating = 6.5
		So(present.Compute(c, nil).BadgeTextColor, ShouldEqual, "#000000")

		c.StarRating = 6.6
		So(present.Compute(c, nil).BadgeTextColor, ShouldEqual, "#ffd966")
	})
}

func TestModIcons(t *testing.T) {
	Convey("Given a mod list", t, func() {
		c := canonical()
		c.Mods = []string{"HD", "DT", "FL"}
		m := present.Compute(c, nil)

		Convey("One icon per mod, order preserved", func() {
			So(m.ModIcons, ShouldHaveLength, 3)
			So(m.ModIcons[0].Acronym, ShouldEqual, "HD")
			So(m.ModIcons[1].Acronym, ShouldEqual, "DT")
			So(m.ModIcons[2].Acronym, ShouldEqual, "FL")
			So(m.ModIcons[1].Asset, ShouldEqual, "mods/dt.png")
		})
	})
}

func TestFullComboFlag(t *testing.T) {
	Convey("Given full-combo state", t, func() {
		c := canonical()
		c.FullCombo = true
		So(present.Compute(c, nil).ShowFullCombo, ShouldBeTrue)

		c.FullCombo = false
		So(present.Compute(c, nil).ShowFullCombo, ShouldBeFalse)
	})
}
