package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"off", LevelOff},
		{"ERROR", LevelError},
		{"phase", LevelPhase},
		{"Detail", LevelDetail},
		{"debug", LevelDebug},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("ParseLevel(loud) should fail")
	}
}

func TestLevelGatesScopes(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeCommand, false},
		{LevelError, ScopeCommand, false},
		{LevelPhase, ScopeCommand, true},
		{LevelPhase, ScopeBatch, false},
		{LevelDetail, ScopeBatch, true},
		{LevelDetail, ScopeOp, false},
		{LevelDebug, ScopeOp, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Fatalf("%v.ShouldEmit(%v) = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestRingTracerWrapsInOrder(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for i := range 5 {
		Point(ring, ScopeOp, "p", string(rune('a'+i)))
	}
	events := ring.Snapshot()
	if len(events) != 3 {
		t.Fatalf("len(Snapshot()) = %d, want 3", len(events))
	}
	var got []string
	for _, ev := range events {
		got = append(got, ev.Detail)
	}
	if strings.Join(got, "") != "cde" {
		t.Fatalf("Snapshot details = %v, want [c d e]", got)
	}
}

func TestSpanFailPassesErrorLevel(t *testing.T) {
	ring := NewRingTracer(16, LevelError)
	ok := Begin(ring, ScopeOp, "add", 0)
	ok.End("")
	bad := Begin(ring, ScopeOp, "quorem", 0)
	bad.Fail(errors.New("division by zero"))

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("got %d events at LevelError, want 1", len(events))
	}
	if !events[0].Failed || events[0].Name != "quorem" || events[0].Detail != "division by zero" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	span := Begin(tr, ScopeBatch, "batch", 0)
	span.WithExtra("lines", "3").End("ok")
	Begin(tr, ScopeOp, "mul", span.ID()).End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	var end map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatalf("json: %v", err)
	}
	if end["kind"] != "end" || end["scope"] != "batch" || end["detail"] != "ok" {
		t.Fatalf("unexpected end event: %v", end)
	}
	extra, _ := end["extra"].(map[string]any)
	if extra["lines"] != "3" {
		t.Fatalf("extra = %v", end["extra"])
	}
}

func TestFormatTextSortsExtra(t *testing.T) {
	ev := &Event{
		Time:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Seq:   9,
		Kind:  KindSpanEnd,
		Scope: ScopeOp,
		Name:  "add",
		Extra: map[string]string{"b": "2", "a": "1"},
	}
	got := string(FormatEvent(ev, FormatText))
	if !strings.Contains(got, "add {a=1, b=2}") {
		t.Fatalf("text = %q", got)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should yield Nop")
	}
	ring := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Fatal("tracer not propagated")
	}
	span := Begin(ring, ScopeCommand, "demo", 0)
	ctx = WithSpan(ctx, span)
	if CurrentSpan(ctx) != span.ID() {
		t.Fatalf("CurrentSpan = %d, want %d", CurrentSpan(ctx), span.ID())
	}
}

func TestNewHonorsModes(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("LevelOff tracer = %v, %v", tr, err)
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	multi, ok := tr.(*MultiTracer)
	if !ok || multi.Ring() == nil {
		t.Fatalf("ModeBoth tracer = %T", tr)
	}
	Begin(tr, ScopeCommand, "eval", 0).End("")
	if !strings.Contains(buf.String(), "eval") || len(multi.Ring().Snapshot()) != 2 {
		t.Fatalf("events not fanned out: %q", buf.String())
	}
}

func TestHeartbeatStop(t *testing.T) {
	ring := NewRingTracer(64, LevelPhase)
	hb := StartHeartbeat(ring, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	hb.Stop()
	hb.Stop()
	if len(ring.Snapshot()) == 0 {
		t.Fatal("expected at least one heartbeat")
	}
	var nilHB *Heartbeat
	nilHB.Stop()
}
