package http

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habit-tracker-go/internal/models"
)

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

func toggleBody(id uint, date string) string {
	return `{"habit_id":` + itoa(id) + `,"date":"` + date + `"}`
}

func TestCreateAndListHabits(t *testing.T) {
	ts := newTestServer(t)

	h := ts.createHabit(t, `{"name":"Meditate","icon":"🧘","target_days":21,"scheduled_time":"06:30"}`)
	assert.Equal(t, "Meditate", h.Name)
	assert.Equal(t, "🧘", h.Icon)
	assert.Equal(t, 21, h.TargetDays)
	assert.Equal(t, "06:30", *h.ScheduledTime)
	assert.Equal(t, ts.me.ID, h.UserID)

	d := ts.createHabit(t, `{"name":"Journal"}`)
	assert.Equal(t, "📝", d.Icon)
	assert.Equal(t, 30, d.TargetDays)
	assert.Equal(t, "09:00", *d.ScheduledTime)

	w := ts.do(t, http.MethodGet, "/habits", "")
	require.Equal(t, http.StatusOK, w.Code)
	habits := decode[[]models.Habit](t, w)
	require.Len(t, habits, 2)
	assert.Equal(t, h.ID, habits[0].ID)
	assert.Equal(t, d.ID, habits[1].ID)
}

func TestListHabitsEmptyIsArray(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/habits", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateHabitValidation(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{
		`{}`,
		`{"name":""}`,
		`{"name":"Read","target_days":"thirty"}`,
		`{"name":"Read","scheduled_time":"9am"}`,
		`{"name":"Read","scheduled_time":"24:00"}`,
		`not json`,
	} {
		w := ts.do(t, http.MethodPost, "/habits", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w := ts.do(t, http.MethodPost, "/habits", `{"icon":"x"}`)
	resp := decode[map[string]any](t, w)
	assert.Equal(t, "schema_invalid", resp["error"])
	assert.NotEmpty(t, resp["details"])
}

func TestUpdateHabit(t *testing.T) {
	ts := newTestServer(t)
	h := ts.createHabit(t, `{"name":"Read","scheduled_time":"08:00"}`)

	w := ts.do(t, http.MethodPatch, "/habits/"+itoa(h.ID), `{"scheduled_time":"20:15","icon":null}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated := decode[models.Habit](t, w)
	assert.Equal(t, "Read", updated.Name)
	assert.Equal(t, "📝", updated.Icon, "null leaves the field unchanged")
	assert.Equal(t, "20:15", *updated.ScheduledTime)
}

func TestUpdateHabitErrors(t *testing.T) {
	ts := newTestServer(t)
	other := ts.addUser(t, "bob", "B0B0B0B0")
	foreign := models.Habit{Name: "Run", UserID: other.ID}
	require.NoError(t, ts.db.Create(&foreign).Error)

	w := ts.do(t, http.MethodPatch, "/habits/"+itoa(foreign.ID), `{"name":"Stolen"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Habit not found"}`, w.Body.String())

	w = ts.do(t, http.MethodPatch, "/habits/9999", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodPatch, "/habits/abc", `{"name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPatch, "/habits/"+itoa(foreign.ID), `{"scheduled_time":"late"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggle(t *testing.T) {
	ts := newTestServer(t)
	h := ts.createHabit(t, `{"name":"Read"}`)

	w := ts.do(t, http.MethodPost, "/toggle", toggleBody(h.ID, "2024-03-09"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"added","new_streak":1}`, w.Body.String())

	w = ts.do(t, http.MethodPost, "/toggle", toggleBody(h.ID, "2024-03-10"))
	assert.JSONEq(t, `{"status":"added","new_streak":2}`, w.Body.String())

	w = ts.do(t, http.MethodPost, "/toggle", toggleBody(h.ID, "2024-03-10"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"removed"}`, w.Body.String())

	var stored models.Habit
	require.NoError(t, ts.db.First(&stored, h.ID).Error)
	assert.Equal(t, 2, stored.CurrentStreak, "removal does not recompute the streak")
}

func TestToggleErrors(t *testing.T) {
	ts := newTestServer(t)
	other := ts.addUser(t, "bob", "B0B0B0B0")
	foreign := models.Habit{Name: "Run", UserID: other.ID}
	require.NoError(t, ts.db.Create(&foreign).Error)

	w := ts.do(t, http.MethodPost, "/toggle", toggleBody(foreign.ID, "2024-03-10"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	for _, body := range []string{
		`{"habit_id":1}`,
		`{"date":"2024-03-10"}`,
		`{"habit_id":1,"date":"10/03/2024"}`,
		`{"habit_id":"1","date":"2024-03-10"}`,
		``,
	} {
		w := ts.do(t, http.MethodPost, "/toggle", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

type dashboardBody struct {
	UserInfo struct {
		Name       string `json:"name"`
		FriendCode string `json:"friend_code"`
	} `json:"user_info"`
	Habits []models.Habit    `json:"habits"`
	Logs   []models.DailyLog `json:"logs"`
	Stats  struct {
		DailyAggregates []map[string]any `json:"daily_aggregates"`
		OverallProgress map[string]int   `json:"overall_progress"`
		TotalHabits     int              `json:"total_habits"`
	} `json:"stats"`
	Meta map[string]int `json:"meta"`
}

func TestDashboardEndpoint(t *testing.T) {
	ts := newTestServer(t)
	h := ts.createHabit(t, `{"name":"Read","scheduled_time":"22:00"}`)
	ts.createHabit(t, `{"name":"Walk","scheduled_time":"07:00"}`)
	for _, d := range []string{"2024-02-01", "2024-02-02"} {
		require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/toggle", toggleBody(h.ID, d)).Code)
	}

	w := ts.do(t, http.MethodGet, "/dashboard/2024/2", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[dashboardBody](t, w)

	assert.Equal(t, "Habit Tracker User", body.UserInfo.Name)
	assert.Equal(t, ts.me.FriendCode, body.UserInfo.FriendCode)
	require.Len(t, body.Habits, 2)
	assert.Equal(t, "Walk", body.Habits[0].Name)
	assert.Len(t, body.Logs, 2)
	assert.True(t, body.Logs[0].Completed)
	assert.Equal(t, map[string]int{"year": 2024, "month": 2, "days_in_month": 29}, body.Meta)
	assert.Equal(t, map[string]int{"completed": 2, "total": 58}, body.Stats.OverallProgress)
	assert.Equal(t, 2, body.Stats.TotalHabits)
	require.Len(t, body.Stats.DailyAggregates, 29)
	assert.Equal(t, map[string]any{
		"date": "2024-02-01", "day": 1.0, "completed_count": 1.0, "total_active": 2.0, "percent": 50.0,
	}, body.Stats.DailyAggregates[0])
}

func TestDashboardNonLeapFebruary(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/dashboard/2023/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, 28.0, body["meta"].(map[string]any)["days_in_month"])
}

func TestDashboardInvalidDate(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/dashboard/2024/13", "/dashboard/2024/0", "/dashboard/abc/2", "/dashboard/2024/x"} {
		w := ts.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"Invalid date"}`, w.Body.String(), path)
	}
}

func TestMonthLogsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	h := ts.createHabit(t, `{"name":"Read"}`)
	for _, d := range []string{"2024-03-02", "2024-02-27", "2024-03-01"} {
		require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/toggle", toggleBody(h.ID, d)).Code)
	}

	w := ts.do(t, http.MethodGet, "/logs/2024-03", "")
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]models.DailyLog](t, w)
	require.Len(t, logs, 2)
	assert.Equal(t, "2024-03-01", logs[0].Date)
	assert.Equal(t, "2024-03-02", logs[1].Date)

	w = ts.do(t, http.MethodGet, "/logs/2024-3", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
