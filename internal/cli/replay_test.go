package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func replayJSON(t *testing.T, args ...string) replayState {
	t.Helper()
	out, errOut, code := runCLI(t, append(append([]string{"replay"}, args...), "--json")...)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	var st replayState
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("bad json %q: %v", out, err)
	}
	return st
}

func stateIDs(st replayState) string {
	ids := make([]string, len(st.Items))
	for i, it := range st.Items {
		ids[i] = it.ID
	}
	return strings.Join(ids, ",")
}

func TestParseOps(t *testing.T) {
	ops, err := parseOps([]string{"add", "swipe", "1", "right", "delete", "2", "wait", "3s", "undo"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 5 {
		t.Fatalf("ops = %d, want 5", len(ops))
	}
	if ops[1].kind != opSwipe || ops[1].id != "1" {
		t.Fatalf("swipe op = %+v", ops[1])
	}
	if ops[3].kind != opWait || ops[3].wait != 3*time.Second {
		t.Fatalf("wait op = %+v", ops[3])
	}
}

func TestParseOpsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"jump"},
		{"delete"},
		{"swipe", "1"},
		{"swipe", "1", "up"},
		{"wait", "soon"},
		{"wait", "-1s"},
	} {
		if _, err := parseOps(args); !errors.Is(err, ErrUnknownOp) {
			t.Fatalf("parseOps(%v) err = %v, want ErrUnknownOp", args, err)
		}
	}
}

func TestReplayAddDeleteUndo(t *testing.T) {
	st := replayJSON(t, "add", "delete", "1", "undo")
	if got := stateIDs(st); got != "1,0,2,3" {
		t.Fatalf("items = %s, want 1,0,2,3", got)
	}
	if st.NextID != 4 {
		t.Fatalf("next_id = %d, want 4", st.NextID)
	}
	if st.Pending != nil {
		t.Fatalf("pending = %+v, want none", st.Pending)
	}
}

func TestReplayOnlyLatestDeletionUndoable(t *testing.T) {
	st := replayJSON(t, "delete", "0", "delete", "2")
	if st.Pending == nil || st.Pending.Item.Label != "Item 3" {
		t.Fatalf("pending = %+v, want Item 3", st.Pending)
	}
	st = replayJSON(t, "delete", "0", "delete", "2", "undo", "undo")
	if got := stateIDs(st); got != "2,1" {
		t.Fatalf("items = %s, want 2,1", got)
	}
}

func TestReplayExpiry(t *testing.T) {
	st := replayJSON(t, "delete", "1", "wait", "4s")
	if st.Pending == nil || st.Pending.Remaining != "5s" {
		t.Fatalf("pending = %+v, want 5s left", st.Pending)
	}
	st = replayJSON(t, "delete", "1", "wait", "9s", "undo")
	if got := stateIDs(st); got != "0,2" {
		t.Fatalf("items = %s, want 0,2", got)
	}
	if st.Pending != nil {
		t.Fatalf("pending survived expiry")
	}
}

func TestReplaySwipe(t *testing.T) {
	st := replayJSON(t, "swipe", "0", "left", "swipe", "2", "right")
	if got := stateIDs(st); got != "0,1" {
		t.Fatalf("items = %s, want 0,1", got)
	}
}

func TestReplayFlagsOverrideConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(cfg, []byte("[list]\nseed_items = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	st := replayJSON(t, "add", "--config", cfg)
	if st.NextID != 6 {
		t.Fatalf("next_id = %d, want 6 from config", st.NextID)
	}
	st = replayJSON(t, "add", "--config", cfg, "--seed", "1")
	if st.NextID != 2 {
		t.Fatalf("next_id = %d, want 2 from --seed", st.NextID)
	}
	st = replayJSON(t, "swipe", "0", "left", "--delete-direction", "left", "--undo-window", "7s")
	if st.Pending == nil || st.Pending.Remaining != "7s" {
		t.Fatalf("pending = %+v, want 7s window after left swipe", st.Pending)
	}
}

func TestReplayTextOutput(t *testing.T) {
	out, _, code := runCLI(t, "replay", "delete", "1", "--theme", "mono")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"Item 1", "Item 3", "Undo Item 2", "9s left"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	out, _, _ = runCLI(t, "replay", "undo")
	if !strings.Contains(out, "nothing to undo") {
		t.Fatalf("output missing empty banner:\n%s", out)
	}
}

func TestReplayErrors(t *testing.T) {
	_, errOut, code := runCLI(t, "replay", "jump")
	if code != 1 || !strings.Contains(errOut, "unknown replay op") {
		t.Fatalf("code = %d stderr = %q", code, errOut)
	}
	_, errOut, code = runCLI(t, "replay", "add", "--theme", "pink")
	if code != 1 || !strings.Contains(errOut, "ui.theme") {
		t.Fatalf("code = %d stderr = %q", code, errOut)
	}
}

func TestReplayWritesDebugLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "swipelist.log")
	_, _, code := runCLI(t, "replay", "delete", "0", "--log-file", logPath, "--debug")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "item deleted") {
		t.Fatalf("log missing deletion:\n%s", b)
	}
}

func TestVersion(t *testing.T) {
	out, _, code := runCLI(t, "version")
	if code != 0 || !strings.Contains(out, "swipelist dev") {
		t.Fatalf("version output %q, code %d", out, code)
	}
}
