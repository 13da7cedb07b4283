package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFormatter, prevLevel := Logger.Out, Logger.Formatter, Logger.Level
	Logger.SetOutput(&buf)
	Logger.SetFormatter(&logrus.JSONFormatter{})
	Logger.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		Logger.SetOutput(prevOut)
		Logger.SetFormatter(prevFormatter)
		Logger.SetLevel(prevLevel)
	})
	return &buf
}

func TestContextWithFieldsMerges(t *testing.T) {
	buf := captureJSON(t)

	ctx := ContextWithFields(context.Background(), map[string]interface{}{"request_id": "abc"})
	ctx = ContextWithFields(ctx, map[string]interface{}{"location": "/secrets"})
	FromContext(ctx).Info("rendered")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	if line["request_id"] != "abc" || line["location"] != "/secrets" {
		t.Fatalf("expected merged fields, got %v", line)
	}
}

func TestConfigureLevel(t *testing.T) {
	captureJSON(t)

	Configure("warn", "")
	if Logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", Logger.GetLevel())
	}

	Configure("loud", "")
	if Logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected unknown level to be ignored, got %s", Logger.GetLevel())
	}
}

func TestGinLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		status int
		level  string
	}{
		{name: "ok", status: http.StatusOK, level: "info"},
		{name: "not found", status: http.StatusNotFound, level: "warning"},
		{name: "server error", status: http.StatusInternalServerError, level: "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := captureJSON(t)

			router := gin.New()
			router.Use(GinLogger())
			router.GET("/status", func(c *gin.Context) { c.Status(tc.status) })

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status?x=1", nil))

			var line map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
				t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
			}
			if line["level"] != tc.level {
				t.Fatalf("expected level %s, got %v", tc.level, line["level"])
			}
			if line["path"] != "/status?x=1" {
				t.Fatalf("expected path with query, got %v", line["path"])
			}
		})
	}
}
