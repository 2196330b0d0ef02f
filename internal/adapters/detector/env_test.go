package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sourcehook/internal/adapters/detector"
)

func TestDetectLogFormat_CI(t *testing.T) {
	for _, ci := range []string{"true", "1"} {
		t.Run("CI="+ci, func(t *testing.T) {
			t.Setenv("CI", ci)
			assert.Equal(t, detector.FormatJSON, detector.DetectLogFormat())
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.LogFormat
	}{
		{name: "terminal outside CI is pretty", isTTY: true, ci: "", expected: detector.FormatPretty},
		{name: "CI=false does not force json", isTTY: true, ci: "false", expected: detector.FormatPretty},
		{name: "CI=true forces json", isTTY: true, ci: "true", expected: detector.FormatJSON},
		{name: "CI=1 forces json", isTTY: true, ci: "1", expected: detector.FormatJSON},
		{name: "redirected stderr is json", isTTY: false, ci: "", expected: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.FormatForExported(tt.isTTY, tt.ci))
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.LogFormat
		userFlag     string
		expected     detector.LogFormat
	}{
		{name: "auto respects auto-detection (pretty)", autoDetected: detector.FormatPretty, userFlag: "auto", expected: detector.FormatPretty},
		{name: "auto respects auto-detection (json)", autoDetected: detector.FormatJSON, userFlag: "auto", expected: detector.FormatJSON},
		{name: "empty flag respects auto-detection", autoDetected: detector.FormatPretty, userFlag: "", expected: detector.FormatPretty},
		{name: "pretty overrides auto-detection", autoDetected: detector.FormatJSON, userFlag: "pretty", expected: detector.FormatPretty},
		{name: "text is an alias for pretty", autoDetected: detector.FormatJSON, userFlag: "text", expected: detector.FormatPretty},
		{name: "json overrides auto-detection", autoDetected: detector.FormatPretty, userFlag: "json", expected: detector.FormatJSON},
		{name: "invalid flag falls back to auto-detection", autoDetected: detector.FormatJSON, userFlag: "invalid", expected: detector.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveFormat(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestLogFormat_String(t *testing.T) {
	assert.Equal(t, "auto", detector.FormatAuto.String())
	assert.Equal(t, "pretty", detector.FormatPretty.String())
	assert.Equal(t, "json", detector.FormatJSON.String())
}
