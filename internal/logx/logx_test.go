package logx

import (
	"bytes"
	"strings"
	"testing"
)

func TestDefaultLevelInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message leaked at default level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message missing at default level")
	}
}

func TestQuietDropsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)
	log.Info().Msg("hidden")
	log.Error().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message leaked under quiet")
	}
	if !strings.Contains(out, "shown") {
		t.Error("error message missing under quiet")
	}
}

func TestVerboseAllowsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, true)
	log.Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug message missing under verbose")
	}
}

func TestQuietWinsOverVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, true)
	log.Info().Msg("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("quiet did not win over verbose")
	}
}
