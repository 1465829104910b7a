package tinylog_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"pkt.systems/tinylog"
)

func useDefault(t *testing.T, logger *tinylog.Logger) {
	t.Helper()
	previous := tinylog.Default()
	tinylog.SetDefault(logger)
	t.Cleanup(func() {
		tinylog.SetDefault(previous)
	})
}

func TestDefaultIsInitialisedOnce(t *testing.T) {
	tinylog.Init()
	first := tinylog.Default()
	tinylog.Init()
	if tinylog.Default() != first {
		t.Fatalf("Init should only configure the default logger once")
	}
	tinylog.SetDefault(nil)
	if tinylog.Default() != first {
		t.Fatalf("SetDefault(nil) should be ignored")
	}
}

func TestPackageLevelRegistry(t *testing.T) {
	useDefault(t, tinylog.NewWithOptions(&bytes.Buffer{}, tinylog.Options{Levels: tinylog.InfoLevel}))

	tinylog.SetLevel(tinylog.TraceLevel)
	if !tinylog.IsLevel(tinylog.InfoLevel | tinylog.TraceLevel) {
		t.Fatalf("TRC should be enabled after SetLevel")
	}
	tinylog.UnsetLevel(tinylog.TraceLevel | tinylog.DebugLevel)
	if !tinylog.IsLevel(tinylog.TraceLevel) {
		t.Fatalf("partial unset should be a no-op")
	}
	tinylog.UnsetLevel(tinylog.TraceLevel)
	if tinylog.IsLevel(tinylog.TraceLevel) {
		t.Fatalf("TRC should be disabled after UnsetLevel")
	}
}

func TestPackageLevelFunctionsCaptureCaller(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, tinylog.NewWithOptions(&buf, tinylog.Options{
		Levels: tinylog.AllLevels,
		Now:    func() time.Time { return fixedTime },
	}))

	tinylog.Infof("one %d", 1)
	tinylog.Errorf("two")
	tinylog.Warnf("three")
	tinylog.Tracef("four")
	tinylog.Debugf("five")
	tinylog.Logf(tinylog.InfoLevel, "six")
	tinylog.Log(tinylog.InfoLevel, "seven", "explicit.c", 3, "fn")
	tinylog.Dump(tinylog.InfoLevel, []byte("hi"))

	out := buf.String()
	if got := strings.Count(out, " - default_test.go:TestPackageLevelFunctionsCaptureCaller("); got != 7 {
		t.Fatalf("expected 7 records attributed to this test, got %d in %q", got, out)
	}
	if !strings.Contains(out, " - explicit.c:fn(3)\nseven\n\n") {
		t.Fatalf("explicit metadata not used: %q", out)
	}
	if !strings.HasSuffix(out, "68 69 "+strings.Repeat(" ", 45)+"hi\n\n") {
		t.Fatalf("dump body missing: %q", out)
	}
}

func TestPackageLevelDumpAnnouncesCaller(t *testing.T) {
	var buf bytes.Buffer
	useDefault(t, tinylog.NewWithOptions(&buf, tinylog.Options{
		Levels: tinylog.DebugLevel,
		Now:    func() time.Time { return fixedTime },
	}))

	tinylog.Dump(tinylog.DebugLevel, []byte("AB"))

	header, _, ok := strings.Cut(buf.String(), "\n")
	if !ok {
		t.Fatalf("no announce record in %q", buf.String())
	}
	prefix := "[DBG] " + fixedStamp + " - default_test.go:TestPackageLevelDumpAnnouncesCaller("
	if !strings.HasPrefix(header, prefix) {
		t.Fatalf("announce record names the wrong frame: %q", header)
	}
	if !strings.HasPrefix(buf.String()[len(header)+1:], "Pretty print buffer data\n\n41 42 ") {
		t.Fatalf("unexpected dump output: %q", buf.String())
	}
}
