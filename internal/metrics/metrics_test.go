package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/habits/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/habits/:id", "204"))
	for _, path := range []string{"/habits/1", "/habits/2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/habits/:id", "204"))
	assert.Equal(t, 2.0, after-before)
}

func TestRecordCounters(t *testing.T) {
	before := testutil.ToFloat64(toggles.WithLabelValues("added"))
	RecordToggle("added")
	assert.Equal(t, 1.0, testutil.ToFloat64(toggles.WithLabelValues("added"))-before)

	before = testutil.ToFloat64(friendAdds.WithLabelValues("already friends"))
	RecordFriendAdd("already friends")
	assert.Equal(t, 1.0, testutil.ToFloat64(friendAdds.WithLabelValues("already friends"))-before)
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordToggle("removed")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "habits_tracker_toggles_total")
}
