package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"bigint/internal/bignum"
	"bigint/internal/expr"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func (s *recordingSink) count(status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, evt := range s.events {
		if evt.Status == status {
			n++
		}
	}
	return n
}

func TestTasksSkipsBlankAndComments(t *testing.T) {
	tasks := Tasks([]string{"", "# header", "1 + 2", "   ", "  # indented", "3 * 4"})
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].Line != 3 || tasks[1].Line != 6 || tasks[1].Text != "3 * 4" {
		t.Fatalf("tasks = %+v", tasks)
	}
}

func TestRunKeepsOrder(t *testing.T) {
	var lines []string
	for i := range 200 {
		lines = append(lines, strings.Repeat("9", i+1)+" + 1")
	}
	outcomes, err := Run(context.Background(), lines, Options{Jobs: 8})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(outcomes) != len(lines) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(lines))
	}
	for i, o := range outcomes {
		want := "1" + strings.Repeat("0", i+1)
		if o.Err != nil || o.Result.String() != want || o.Line != i+1 {
			t.Fatalf("outcome %d = %+v, want %s", i, o, want)
		}
	}
}

func TestRunRecordsErrors(t *testing.T) {
	sink := &recordingSink{}
	lines := []string{"10 / 3", "1 / 0", "abc + 1", "2 < 3"}
	outcomes, err := Run(context.Background(), lines, Options{Jobs: 2, Sink: sink})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if Failed(outcomes) != 2 {
		t.Fatalf("Failed = %d, want 2", Failed(outcomes))
	}
	if !errors.Is(outcomes[1].Err, bignum.ErrDivByZero) {
		t.Fatalf("line 2 error = %v", outcomes[1].Err)
	}
	if !errors.Is(outcomes[2].Err, bignum.ErrFormat) {
		t.Fatalf("line 3 error = %v", outcomes[2].Err)
	}
	if outcomes[0].Result.String() != "3" || outcomes[3].Result.String() != "true" {
		t.Fatalf("outcomes = %+v", outcomes)
	}
	if sink.count(StatusQueued) != 4 || sink.count(StatusWorking) != 4 ||
		sink.count(StatusDone) != 2 || sink.count(StatusError) != 2 {
		t.Fatalf("events = %+v", sink.events)
	}
}

func TestRunFailFast(t *testing.T) {
	lines := []string{"1 + 1", "1 / 0", "2 + 2"}
	_, err := Run(context.Background(), lines, Options{Jobs: 1, FailFast: true})
	if !errors.Is(err, bignum.ErrDivByZero) {
		t.Fatalf("Run error = %v, want ErrDivByZero", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error lacks line number: %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, []string{"1 + 1"}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestRunEmpty(t *testing.T) {
	outcomes, err := Run(context.Background(), []string{"", "# only"}, Options{})
	if err != nil || len(outcomes) != 0 {
		t.Fatalf("Run = %v, %v", outcomes, err)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{Line: 7, Status: StatusDone})
	if evt := <-ch; evt.Line != 7 || evt.Status != StatusDone {
		t.Fatalf("event = %+v", evt)
	}
	ChannelSink{}.OnEvent(Event{})
}

func TestWriteFormats(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	outcomes, err := Run(context.Background(), []string{"348975 % 123", "1 % 0"}, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var text bytes.Buffer
	if err := Write(&text, outcomes, FormatText); err != nil {
		t.Fatalf("Write text: %v", err)
	}
	want := "348975 % 123 = 24\nline 2: 1 % 0: division by zero\n"
	if text.String() != want {
		t.Fatalf("text = %q, want %q", text.String(), want)
	}

	var js bytes.Buffer
	if err := Write(&js, outcomes, FormatJSON); err != nil {
		t.Fatalf("Write json: %v", err)
	}
	first := strings.SplitN(js.String(), "\n", 2)[0]
	if first != `{"line":1,"expr":"348975 % 123","result":24}` {
		t.Fatalf("json = %s", first)
	}

	var packed bytes.Buffer
	if err := Write(&packed, outcomes, FormatMsgpack); err != nil {
		t.Fatalf("Write msgpack: %v", err)
	}
	var raw []map[string]any
	if err := msgpack.Unmarshal(packed.Bytes(), &raw); err != nil {
		t.Fatalf("msgpack.Unmarshal: %v", err)
	}
	if len(raw) != 2 || raw[0]["result"] != "24" || raw[1]["error"] == nil {
		t.Fatalf("msgpack = %#v", raw)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "JSON": FormatJSON, "msgpack": FormatMsgpack} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("ParseFormat(xml) should fail")
	}
}

func TestWriteJSONKeepsOperators(t *testing.T) {
	outcomes := []Outcome{
		{Line: 1, Expr: expr.Expr{Op: expr.OpLt}, Result: expr.BoolResult(true)},
		{Line: 2, Expr: expr.Expr{Op: expr.OpGe}, Result: expr.BoolResult(false)},
		{Line: 3, Text: "1 <= x", Err: bignum.ErrFormat},
	}
	var buf bytes.Buffer
	if err := Write(&buf, outcomes, FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"line":1,"expr":"0 < 0","result":true}` + "\n" +
		`{"line":2,"expr":"0 >= 0","result":false}` + "\n" +
		`{"line":3,"expr":"1 <= x","error":"invalid decimal integer"}` + "\n"
	if buf.String() != want {
		t.Fatalf("json = %q, want %q", buf.String(), want)
	}
}
