package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestLogger(verbose, debug bool) (Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Logger{Verbose: verbose, Debug: debug, Out: &out, Err: &errOut}, &out, &errOut
}

func TestLevels(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name      string
		verbose   bool
		debug     bool
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", false, false, false, false},
		{"verbose", true, false, true, false},
		{"debug", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, out, _ := newTestLogger(tt.verbose, tt.debug)
			l.Infof("loaded %d projects", 2)
			l.Debugf("token %s", "x")

			if got := strings.Contains(out.String(), "[info] loaded 2 projects"); got != tt.wantInfo {
				t.Errorf("info shown = %v, want %v (output %q)", got, tt.wantInfo, out.String())
			}
			if got := strings.Contains(out.String(), "[debug] token x"); got != tt.wantDebug {
				t.Errorf("debug shown = %v, want %v (output %q)", got, tt.wantDebug, out.String())
			}
		})
	}
}

func TestWarningsAndErrorsGoToStderr(t *testing.T) {
	color.NoColor = true
	l, out, errOut := newTestLogger(false, false)

	l.Warnf("careful")
	l.Errorf("broken")

	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[warn] careful") || !strings.Contains(errOut.String(), "[error] broken") {
		t.Errorf("Unexpected stderr: %q", errOut.String())
	}
}

func TestQuietSuppressesOnlyWarnf(t *testing.T) {
	color.NoColor = true
	l, _, errOut := newTestLogger(false, false)
	l.Quiet = true

	l.Warnf("hidden")
	l.WarnfAlways("shown")

	if strings.Contains(errOut.String(), "hidden") {
		t.Errorf("Warnf should be suppressed while quiet: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "[warn] shown") {
		t.Errorf("WarnfAlways should still print: %q", errOut.String())
	}
}

func TestErrorfAndReturn(t *testing.T) {
	color.NoColor = true

	l, _, errOut := newTestLogger(false, false)
	err := l.ErrorfAndReturn("failed to load %s", "config.toml")
	if err == nil || err.Error() != "failed to load config.toml" {
		t.Fatalf("Unexpected error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected no output without --debug, got %q", errOut.String())
	}

	l, _, errOut = newTestLogger(false, true)
	_ = l.ErrorfAndReturn("boom")
	if !strings.Contains(errOut.String(), "[error] boom") {
		t.Errorf("Expected error echoed in debug mode, got %q", errOut.String())
	}
}
