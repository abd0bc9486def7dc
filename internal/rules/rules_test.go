package rules

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cells/internal/core"
)

// printedLen is the length of the shortest decimal string that round-trips x.
func printedLen(x float64) int {
	return len(strconv.FormatFloat(x, 'f', -1, 64))
}

func digitSum(n int) int {
	sum := 0
	for _, r := range strconv.Itoa(n) {
		sum += int(r - '0')
	}
	return sum
}

func TestDefine(t *testing.T) {
	Convey("When defining a rule", t, func() {
		Convey("Total predicates are accepted", func() {
			r, err := Define("always", func(int) bool { return true }, func(int) bool { return false })
			So(err, ShouldBeNil)
			So(r.Name(), ShouldEqual, "always")
			So(r.Resurrect(9), ShouldBeTrue)
			So(r.Die(0), ShouldBeFalse)
		})

		Convey("A predicate that panics inside the domain is rejected", func() {
			table := []bool{true, false, true}
			_, err := Define("short", func(n int) bool { return table[n] }, niceDie)
			So(errors.Is(err, ErrNotTotal), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "short")
			So(err.Error(), ShouldContainSubstring, "n=3")
		})

		Convey("A nil predicate is rejected", func() {
			_, err := Define("half", niceResurrect, nil)
			So(errors.Is(err, ErrNotTotal), ShouldBeTrue)
		})

		Convey("An inconsistent predicate is rejected", func() {
			flip := false
			_, err := Define("flaky", func(int) bool { flip = !flip; return flip }, niceDie)
			So(errors.Is(err, ErrNotTotal), ShouldBeTrue)
		})

		Convey("An empty name is rejected", func() {
			_, err := Define("", niceResurrect, niceDie)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestCatalog(t *testing.T) {
	Convey("Given the rule catalog", t, func() {
		Convey("It holds 21 uniquely named rules", func() {
			names := Names()
			So(len(names), ShouldEqual, 21)
			So(names, ShouldContain, "nice")
			So(names, ShouldContain, "geometric4")
			So(names, ShouldContain, "new")
		})

		Convey("Lookup finds catalog rules and rejects others", func() {
			rs, err := Lookup("maze")
			So(err, ShouldBeNil)
			So(rs.Name(), ShouldEqual, "maze")

			_, err = Lookup("hexagonal")
			So(errors.Is(err, ErrUnknownRule), ShouldBeTrue)
		})

		Convey("Nice follows its thresholds", func() {
			res, die := TruthTable(Nice)
			So(res, ShouldResemble, [core.MaxWindow + 1]bool{3: true})
			So(die, ShouldResemble, [core.MaxWindow + 1]bool{
				0: true, 1: true, 5: true, 6: true, 7: true, 8: true, 9: true,
			})
		})

		Convey("Grid dies on odd counts and revives on empty or crowded windows", func() {
			for n := 0; n <= core.MaxWindow; n++ {
				So(GridRule.Die(n), ShouldEqual, n%2 == 1)
				So(GridRule.Resurrect(n), ShouldEqual, n == 0 || n >= 6)
			}
		})

		Convey("Camo always revives", func() {
			for n := 0; n <= core.MaxWindow; n++ {
				So(Camo.Resurrect(n), ShouldBeTrue)
			}
		})
	})
}

func TestPrintedLengthRules(t *testing.T) {
	Convey("The closed forms match the printed-length definitions on every count", t, func() {
		for n := 0; n <= core.MaxWindow; n++ {
			x := float64(n)
			So(Geometric.Resurrect(n), ShouldEqual, printedLen(x/3) > 3)
			So(Geometric2.Resurrect(n), ShouldEqual, printedLen(x/3.5) > 3)
			So(Geometric3.Resurrect(n), ShouldEqual, printedLen(x/3.1) > 4)
			So(Geometric4.Resurrect(n), ShouldEqual, printedLen(x/.8) > 3)
			So(Camo2.Die(n), ShouldEqual, printedLen(x/3.1) > 2)
			So(Camo3.Resurrect(n), ShouldEqual, digitSum(n*33) > 20)
		}
	})
}
