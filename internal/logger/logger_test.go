package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("caller present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), CallerKey, "studio:abc")
		l := WithContext(ctx)
		assert.Equal(t, "studio:abc", l.Data["caller"])
	})

	t.Run("caller missing", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["caller"])
	})
}

func TestFromGinContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(string(CallerKey), "team_member:xyz")
	c.Set(RequestIDKey, "req-1")

	l := FromGinContext(c)
	assert.Equal(t, "team_member:xyz", l.Data["caller"])
	assert.Equal(t, "req-1", l.Data["request_id"])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("nonsense")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
