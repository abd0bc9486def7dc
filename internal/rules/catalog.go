package rules

// Catalog rules. The counts a rule sees include the cell itself, so every
// threshold below is tuned against a window of up to nine cells.
var (
	Nice       = mustDefine("nice", niceResurrect, niceDie)
	OK         = mustDefine("ok", okResurrect, okDie)
	Spotty     = mustDefine("spotty", spottyResurrect, spottyDie)
	Dilating   = mustDefine("dilating", dilatingResurrect, dilatingDie)
	Camo       = mustDefine("camo", camoResurrect, camoDie)
	Camo2      = mustDefine("camo2", camo2Resurrect, camo2Die)
	Camo3      = mustDefine("camo3", camo3Resurrect, camo3Die)
	Maze       = mustDefine("maze", mazeResurrect, mazeDie)
	GridRule   = mustDefine("grid", gridResurrect, gridDie)
	Island     = mustDefine("island", islandResurrect, islandDie)
	Island2    = mustDefine("island2", island2Resurrect, island2Die)
	Noise      = mustDefine("noise", noiseResurrect, noiseDie)
	Pulsing    = mustDefine("pulsing", pulsingResurrect, pulsingDie)
	Pulsing2   = mustDefine("pulsing2", pulsing2Resurrect, pulsing2Die)
	Pulsing3   = mustDefine("pulsing3", pulsing3Resurrect, pulsing3Die)
	Geometric  = mustDefine("geometric", geometricResurrect, geometricDie)
	Geometric2 = mustDefine("geometric2", geometric2Resurrect, geometric2Die)
	Geometric3 = mustDefine("geometric3", geometric3Resurrect, geometric3Die)
	Geometric4 = mustDefine("geometric4", geometric4Resurrect, geometric4Die)
	Life       = mustDefine("life", lifeResurrect, lifeDie)
	New        = mustDefine("new", newResurrect, newDie)
)

func niceResurrect(n int) bool { return n == 3 }
func niceDie(n int) bool       { return n < 2 || n > 4 }

func okResurrect(n int) bool { return n == 4 }
func okDie(n int) bool       { return n < 2 || n > 5 }

func spottyResurrect(n int) bool { return n == 1 }
func spottyDie(n int) bool       { return n == 2 || n == 4 }

func dilatingResurrect(n int) bool { return n > 3 }
func dilatingDie(n int) bool       { return n < 4 || n > 7 }

// camoResurrect is "more than two or fewer than six", which holds for every count.
func camoResurrect(int) bool { return true }
func camoDie(n int) bool     { return n < 5 || n > 7 }

// camo2Die was a test on the printed length of n/3.1. Zero prints as "0"
// and every other count gives a long repeating fraction.
func camo2Resurrect(n int) bool { return n == 5 || n < 3 }
func camo2Die(n int) bool       { return n != 0 }

// camo3Resurrect was "digit sum of 33n exceeds 20". Over the count domain
// the largest digit sum is 18 (99, 198, 297), so it never fires.
func camo3Resurrect(int) bool { return false }
func camo3Die(n int) bool     { return n > 5 || n < 3 }

func mazeResurrect(n int) bool { return n == 3 }
func mazeDie(n int) bool       { return n == 2 || n > 5 }

func gridResurrect(n int) bool { return n == 0 || n >= 6 }
func gridDie(n int) bool       { return n%2 == 1 }

func islandResurrect(n int) bool { return n > 4 }
func islandDie(n int) bool       { return n == 0 || n == 2 || n == 5 || n == 8 }

func island2Resurrect(n int) bool { return n < 2 || n > 5 }
func island2Die(n int) bool       { return n > 5 || n%2 == 1 }

func noiseResurrect(n int) bool { return n%3 == 0 || n == 7 || n < 4 }
func noiseDie(n int) bool       { return n < 3 || n == 5 || n == 7 }

func pulsingResurrect(n int) bool { return n == 0 || n > 5 }
func pulsingDie(n int) bool       { return n < 6 }

func pulsing2Resurrect(n int) bool { return n == 1 || n > 5 }
func pulsing2Die(n int) bool       { return n > 2 }

func pulsing3Resurrect(n int) bool { return n == 0 || n > 5 }
func pulsing3Die(n int) bool       { return n > 2 }

// The geometric family tested how many characters n/k printed as. A
// quotient prints short only when it is exact:
//
//	n/3   is long unless 3 divides n               (threshold 3 chars)
//	n/3.5 is long unless 7 divides n               (threshold 3 chars)
//	n/3.1 is long for every n > 0                  (threshold 4 chars)
//	n/0.8 is 1.25n: "1.25", "3.75" ... for odd n,
//	      "2.5", "5", "7.5", "10" for even n       (threshold 3 chars)
func geometricResurrect(n int) bool { return n%3 != 0 }
func geometricDie(n int) bool       { return n < 6 }

func geometric2Resurrect(n int) bool { return n%7 != 0 }
func geometric2Die(n int) bool       { return n < 6 }

func geometric3Resurrect(n int) bool { return n != 0 }
func geometric3Die(n int) bool       { return n < 7 }

func geometric4Resurrect(n int) bool { return n%2 == 1 }
func geometric4Die(n int) bool       { return n < 5 }

func lifeResurrect(n int) bool { return n > 2 && n != 4 }
func lifeDie(n int) bool       { return n < 2 || n > 3 }

func newResurrect(n int) bool { return n == 2 }
func newDie(n int) bool       { return n < 2 || n > 3 }
