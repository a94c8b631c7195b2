package stats

import "sort"

type Standing struct {
	UserID         uint    `json:"-"`
	Username       string  `json:"username"`
	FullName       string  `json:"full_name"`
	ProfilePicture *string `json:"profile_picture"`
	Score          int     `json:"score"`
	IsMe           bool    `json:"is_me"`
}

// Score is the completion rate of a user's habits so far this month:
// logs / (habits * daysElapsed) as a whole percentage. A user without habits
// scores 0.
func Score(logCount, habitCount, daysElapsed int) int {
	if habitCount == 0 {
		return 0
	}
	return Percent(logCount, habitCount*daysElapsed)
}

// Rank orders standings by score, highest first. Equal scores keep their
// input order.
func Rank(standings []Standing) {
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
}
