package gamification

// CheckInPoints is awarded for the first mood check-in of a day.
const CheckInPoints = 10

// xpForLevel returns the lifetime points needed to reach level n.
// Level 1 costs nothing; each level up costs 100 more than the last,
// so level n sits at 100 * n * (n-1) / 2.
func xpForLevel(n int) int64 {
	if n <= 1 {
		return 0
	}
	return int64(100 * n * (n - 1) / 2)
}

// LevelFor maps lifetime points to a level, starting at 1.
func LevelFor(points int64) int {
	level := 1
	for xpForLevel(level+1) <= points {
		level++
	}
	return level
}

// LevelProgress describes where the viewer sits between two levels.
type LevelProgress struct {
	Level         int   `json:"level"`
	IntoLevel     int64 `json:"into_level"`
	NeededForNext int64 `json:"needed_for_next"`
}

// ProgressFor returns the viewer's level and how far along they are
// toward the next one.
func ProgressFor(points int64) LevelProgress {
	level := LevelFor(points)
	floor := xpForLevel(level)
	ceil := xpForLevel(level + 1)
	return LevelProgress{
		Level:         level,
		IntoLevel:     points - floor,
		NeededForNext: ceil - floor,
	}
}
