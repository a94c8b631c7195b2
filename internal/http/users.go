package http

import (
	"github.com/gin-gonic/gin"

	"habit-tracker-go/internal/logger"
	"habit-tracker-go/internal/metrics"
	"habit-tracker-go/internal/models"
)

// GET /users/me
func (s *Server) getMe(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	c.JSON(200, user.Public())
}

// POST /friends/add/:friend_code
func (s *Server) addFriend(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	ctx, cancel := s.requestContext(c)
	defer cancel()

	res, err := s.tracker.AddFriend(ctx, userID, c.Param("friend_code"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	metrics.RecordFriendAdd(res.Status)
	logger.Info("friend add", "user_id", userID, "status", res.Status)
	c.JSON(200, res)
}

// GET /leaderboard
func (s *Server) leaderboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	ctx, cancel := s.requestContext(c)
	defer cancel()

	board, err := s.tracker.Leaderboard(ctx, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, board)
}
