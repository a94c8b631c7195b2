package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"habit-tracker-go/internal/logger"
	"habit-tracker-go/internal/metrics"
	"habit-tracker-go/internal/tracker"
)

type habitCreateRequest struct {
	Name          string  `json:"name"`
	Icon          *string `json:"icon"`
	TargetDays    *int    `json:"target_days"`
	ScheduledTime *string `json:"scheduled_time"`
}

type habitUpdateRequest struct {
	Name          *string `json:"name"`
	Icon          *string `json:"icon"`
	ScheduledTime *string `json:"scheduled_time"`
}

type toggleRequest struct {
	HabitID uint   `json:"habit_id"`
	Date    string `json:"date"`
}

// GET /habits
func (s *Server) listHabits(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	ctx, cancel := s.requestContext(c)
	defer cancel()

	habits, err := s.tracker.ListHabits(ctx, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, habits)
}

// POST /habits
func (s *Server) createHabit(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req habitCreateRequest
	if !s.bindValidated(c, schemaHabitCreate, &req) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	habit, err := s.tracker.CreateHabit(ctx, userID, tracker.NewHabit{
		Name:          req.Name,
		Icon:          req.Icon,
		TargetDays:    req.TargetDays,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(201, habit)
}

// PATCH /habits/:id
func (s *Server) updateHabit(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid id"})
		return
	}

	var req habitUpdateRequest
	if !s.bindValidated(c, schemaHabitUpdate, &req) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	habit, err := s.tracker.UpdateHabit(ctx, userID, uint(id), tracker.HabitPatch{
		Name:          req.Name,
		Icon:          req.Icon,
		ScheduledTime: req.ScheduledTime,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, habit)
}

// POST /toggle
func (s *Server) toggle(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req toggleRequest
	if !s.bindValidated(c, schemaToggle, &req) {
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	res, err := s.tracker.Toggle(ctx, userID, req.HabitID, req.Date)
	if err != nil {
		abortWithError(c, err)
		return
	}

	metrics.RecordToggle(res.Status)
	logger.Debug("toggle", "habit_id", req.HabitID, "date", req.Date, "status", res.Status, "streak", res.NewStreak)
	c.JSON(200, res)
}

// GET /dashboard/:year/:month
func (s *Server) dashboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil {
		c.JSON(400, gin.H{"error": "Invalid date"})
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	d, err := s.tracker.Dashboard(ctx, userID, year, month)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, d)
}

// GET /logs/:month where month is YYYY-MM
func (s *Server) monthLogs(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	ctx, cancel := s.requestContext(c)
	defer cancel()

	logs, err := s.tracker.MonthLogs(ctx, userID, c.Param("month"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, logs)
}
