package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/phaer/pip/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("compiled install report with 3 entries")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "compiled install report with 3 entries")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(errors.New("boom"))

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")
}
