package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/allowdns/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&config.Config{Log: config.LogConfig{Level: "debug", Format: "json"}}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s, want debug", logger.GetLevel())
	}
	logger.WithField("domain", "example.com").Debug("hello")
	if !strings.Contains(buf.String(), `"domain":"example.com"`) {
		t.Fatalf("expected json output, got %q", buf.String())
	}
}

func TestNewLogger_Errors(t *testing.T) {
	cases := []config.LogConfig{
		{Level: "loud", Format: "text"},
		{Level: "info", Format: "xml"},
	}
	for _, c := range cases {
		if _, err := NewLogger(&config.Config{Log: c}); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}
