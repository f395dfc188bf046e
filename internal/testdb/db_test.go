package testdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTestDatabaseURL(t *testing.T) {
	t.Setenv(EnvTestDatabaseURL, "postgres://localhost:5432/courselib_test")

	assert.Equal(t, "postgres://localhost:5432/courselib_test", GetTestDatabaseURL())
	assert.False(t, ShouldSkipDatabaseTest())
}

func TestShouldSkipDatabaseTest(t *testing.T) {
	t.Setenv(EnvTestDatabaseURL, "")

	assert.True(t, ShouldSkipDatabaseTest())
}

func TestOpenSkipsWithoutDatabase(t *testing.T) {
	t.Setenv(EnvTestDatabaseURL, "")

	skipped := true
	t.Run("inner", func(t *testing.T) {
		Open(t)
		skipped = false
	})
	assert.True(t, skipped, "Open should skip the test")
}
