package middleware_test

import (
	"net/http"
	"testing"

	"photostudio-backend/internal/api/middleware"
	"photostudio-backend/internal/logger"
	"photostudio-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID())
	httpSuite.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	t.Run("Generated", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/ping", nil)

		id := recorder.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, recorder.Body.String())
	})

	t.Run("Propagated", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/ping", nil, map[string]string{
			middleware.RequestIDHeader: "req-42",
		})

		assert.Equal(t, "req-42", recorder.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-42", recorder.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	httpSuite.Router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	recorder := httpSuite.MakeRequest(http.MethodGet, "/boom", nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "Internal server error")
}

func TestCORS(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(middleware.CORS([]string{"http://localhost:3000", " "}))
	httpSuite.Router.GET("/events", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("AllowedOrigin", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/events", nil, map[string]string{
			"Origin": "http://localhost:3000",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodGet, "/events", nil, map[string]string{
			"Origin": "https://evil.example.com",
		})

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		recorder := httpSuite.MakeRequestWithHeaders(http.MethodOptions, "/events", nil, map[string]string{
			"Origin": "http://localhost:3000",
		})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}
