package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer, with NO_COLOR set for deterministic output.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Messages(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{name: "info", log: func(l *logger.Logger) { l.Info("some message") }, goldenName: "info_basic"},
		{name: "info multiline", log: func(l *logger.Logger) { l.Info("line1\nline2") }, goldenName: "info_multiline"},
		{name: "warn", log: func(l *logger.Logger) { l.Warn("some warning") }, goldenName: "warn_basic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Debug(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("compiling /app/src/main.ts")
	assert.Empty(t, buf.String(), "debug lines are dropped by default")

	lg.SetVerbose(true)
	lg.Debug("compiling /app/src/main.ts")
	g := goldie.New(t)
	g.Assert(t, "debug_verbose", buf.Bytes())

	buf.Reset()
	lg.SetVerbose(false)
	lg.Debug("dropped again")
	assert.Empty(t, buf.String())
}

func TestLogger_Debug_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetVerbose(true)

	lg.Debug("intercepting url file:///app/index.html")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "intercepting url file:///app/index.html", record["msg"])
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "three level zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("database connection failed"), "failed to load user data"),
				"failed to process request",
			),
			goldenName: "error_chain_zerr_three",
		},
		{
			name: "stdlib chain is not split",
			err: fmt.Errorf("failed to initialize service: %w",
				fmt.Errorf("failed to connect to database: %w", errors.New("connection refused"))),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "metadata on several links",
			err: func() error {
				inner := zerr.With(zerr.New("database timeout"), "timeout_ms", 5000)
				middle := zerr.Wrap(inner, "failed to fetch user")
				return zerr.With(middle, "user_id", "12345")
			}(),
			goldenName: "error_metadata_partial",
		},
		{
			name:       "metadata attached to a foreign error",
			err:        zerr.Wrap(zerr.With(os.ErrNotExist, "path", "/app/a.ts"), "failed to read source file"),
			goldenName: "error_metadata_carried",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON_WithErrorChain(t *testing.T) {
	innerErr := errors.New("database connection failed")
	middleErr := zerr.Wrap(innerErr, "failed to load user data")
	outerErr := zerr.With(middleErr, "user_id", "12345")

	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(outerErr)

	var record struct {
		Level string              `json:"level"`
		Error string              `json:"error"`
		Chain []logger.ErrorEntry `json:"chain"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "ERROR", record.Level)
	assert.Equal(t, "failed to load user data: database connection failed", record.Error)
	require.Len(t, record.Chain, 2)
	assert.Equal(t, "failed to load user data", record.Chain[0].Message)
	assert.Equal(t, "12345", record.Chain[0].Metadata["user_id"])
	assert.Equal(t, "database connection failed", record.Chain[1].Message)
	assert.NotContains(t, buf.String(), "✗", "JSON format should not have pretty markers")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("error in pretty mode"))
	prettyOutput := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("error in json mode"))
	jsonOutput := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("error back in pretty mode"))
	backToPrettyOutput := buf.String()

	assert.Contains(t, prettyOutput, "✗")
	assert.NotContains(t, prettyOutput, `"error"`)

	assert.Contains(t, jsonOutput, `"error"`)
	assert.NotContains(t, jsonOutput, "✗")

	assert.Contains(t, backToPrettyOutput, "✗")
	assert.NotContains(t, backToPrettyOutput, `"error"`)
}

func TestLogger_SetOutput_NilDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	wg.Go(func() { lg.Info("concurrent info") })
	wg.Go(func() { lg.Warn("concurrent warn") })
	wg.Go(func() { lg.Debug("concurrent debug") })
	wg.Go(func() { lg.Error(errors.New("concurrent error")) })
	wg.Go(func() { lg.SetJSON(true) })
	wg.Go(func() { lg.SetVerbose(true) })
	wg.Go(func() { lg.SetOutput(&strings.Builder{}) })
	wg.Wait()
}
