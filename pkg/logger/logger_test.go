package logger

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previousOut := Logger.Out
	previousFormatter := Logger.Formatter
	previousLevel := Logger.GetLevel()
	Logger.SetOutput(&buf)
	Logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	Logger.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		Logger.SetOutput(previousOut)
		Logger.SetFormatter(previousFormatter)
		Logger.SetLevel(previousLevel)
	})
	return &buf
}

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]interface{}{"request_id": "abc"})
	ctx = ContextWithFields(ctx, map[string]interface{}{"section_id": "s1"})

	entry := FromContext(ctx)
	if entry.Data["request_id"] != "abc" || entry.Data["section_id"] != "s1" {
		t.Fatalf("expected merged fields, got %v", entry.Data)
	}
}

func TestSetLevel(t *testing.T) {
	previous := Logger.GetLevel()
	t.Cleanup(func() { Logger.SetLevel(previous) })

	if !SetLevel("warn") {
		t.Fatal("expected warn to be accepted")
	}
	if Logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", Logger.GetLevel())
	}
	if SetLevel("loud") {
		t.Fatal("expected an unknown level to be rejected")
	}
	if Logger.GetLevel() != logrus.WarnLevel {
		t.Fatal("expected the level to stay unchanged")
	}
}

func TestGinLoggerIncludesRequestFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureOutput(t)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(ContextWithFields(c.Request.Context(), map[string]interface{}{"request_id": "r-1"}))
		c.Next()
	})
	router.Use(GinLogger())
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	out := buf.String()
	if !strings.Contains(out, "Client error") {
		t.Fatalf("expected a client error line, got %q", out)
	}
	if !strings.Contains(out, "request_id=r-1") || !strings.Contains(out, "path=\"/missing?x=1\"") {
		t.Fatalf("expected request fields in %q", out)
	}
}
