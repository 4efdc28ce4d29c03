package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://rag.internal:9000")
	t.Setenv(EnvChatTimeout, "90s")
	t.Setenv(EnvDemoLogin, "true")
	t.Setenv(EnvDemoUsername, "guest")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://rag.internal:9000", c.BaseURL)
	assert.Equal(t, 90*time.Second, c.ChatTimeout)
	assert.True(t, c.DemoLogin)
	assert.Equal(t, "guest", c.DemoUsername)

	// Untouched values keep their defaults.
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "ragctl.db", c.DatabasePath)
}

func TestParseEnv_MalformedValuesAreIgnored(t *testing.T) {
	t.Setenv(EnvRequestTimeout, "soon")
	t.Setenv(EnvDemoLogin, "maybe")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.False(t, c.DemoLogin)
}
