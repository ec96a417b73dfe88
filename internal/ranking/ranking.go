// Package ranking serves the like-count product leaderboard.
package ranking

// Size is the fixed number of products on the ranking board.
const Size = 20
