package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("QM_CONFIG_TEST", "a=b=c")

	c := New()
	assert.Equal(t, "a=b=c", c["QM_CONFIG_TEST"])
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"PORT":    "9090",
		"BAD_INT": "nine",
		"FLAG":    "true",
		"BADFLAG": "maybe",
		"ORIGINS": " http://a.test , ,http://b.test ",
		"EMPTY":   "",
		"TIMEOUT": "15",
	}

	assert.Equal(t, "9090", GetString(c, "PORT", "8080"))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))

	assert.Equal(t, 9090, GetInt(c, "PORT", 1))
	assert.Equal(t, 1, GetInt(c, "BAD_INT", 1))
	assert.Equal(t, 1, GetInt(c, "MISSING", 1))

	assert.True(t, GetBool(c, "FLAG", false))
	assert.True(t, GetBool(c, "BADFLAG", true))
	assert.False(t, GetBool(c, "MISSING", false))

	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetList(c, "ORIGINS", nil))
	assert.Equal(t, []string{"x"}, GetList(c, "EMPTY", []string{"x"}))

	assert.Equal(t, 15*time.Second, GetSeconds(c, "TIMEOUT", 30))
	assert.Equal(t, 30*time.Second, GetSeconds(c, "MISSING", 30))
}
