package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"daykeeper/internal/assistant"
	assistantmocks "daykeeper/internal/assistant/mocks"
	"daykeeper/internal/holiday"
	"daykeeper/internal/state"
	storemocks "daykeeper/internal/store/mocks"
	"daykeeper/internal/testutil"
)

func newTestModel(t *testing.T, snapshot state.Snapshot) Model {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := storemocks.NewMockStore(ctrl)
	st.EXPECT().Save(gomock.Any()).Return(nil).AnyTimes()

	m := NewModel(st, snapshot, holiday.NewBuilder(nil), nil)
	m.now = func() time.Time {
		return time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)
	}
	n := 0
	m.newID = func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
	m.focused = m.now()
	m.calendar = holiday.Result{Year: 2024}
	return m
}

func TestInterpretCmdDeliversResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := assistantmocks.NewMockClient(ctrl)
	client.EXPECT().
		Interpret(gomock.Any(), "start the stopwatch").
		Return(assistant.Result{Calls: []assistant.Call{assistant.ControlStopwatchCall{Action: "start"}}}, nil)

	msg := interpretCmd(client, "start the stopwatch")()
	am, ok := msg.(AssistantMsg)
	if !ok {
		t.Fatalf("got %T, want AssistantMsg", msg)
	}
	if am.Err != nil || len(am.Result.Calls) != 1 {
		t.Fatalf("msg = %+v", am)
	}
}

func TestUpdateAssistantAppliesCalls(t *testing.T) {
	m := newTestModel(t, state.NewSnapshot())

	updated, _ := m.Update(AssistantMsg{Result: assistant.Result{Calls: []assistant.Call{
		assistant.AddTimerCall{Minutes: 10, Label: "laundry"},
	}}})
	got := updated.(Model)

	if len(got.snapshot.Timers) != 1 || got.snapshot.Timers[0].Initial != 600 {
		t.Fatalf("timer not applied: %+v", got.snapshot.Timers)
	}
	if got.view != ViewTimers {
		t.Errorf("view = %v, want timers", got.view)
	}
	if got.status != "done" {
		t.Errorf("status = %q", got.status)
	}
}

func TestUpdateAssistantError(t *testing.T) {
	m := newTestModel(t, state.NewSnapshot())

	updated, _ := m.Update(AssistantMsg{Err: fmt.Errorf("rate limited")})
	got := updated.(Model)
	if !strings.Contains(got.status, "rate limited") {
		t.Errorf("status = %q", got.status)
	}
	if len(got.snapshot.Timers) != 0 {
		t.Errorf("failed interpretation mutated state")
	}
}

func TestUpdateAssistantTextReply(t *testing.T) {
	m := newTestModel(t, state.NewSnapshot())

	updated, _ := m.Update(AssistantMsg{Result: assistant.Result{Text: "nothing to do"}})
	got := updated.(Model)
	if got.status != "nothing to do" {
		t.Errorf("status = %q", got.status)
	}
}

func TestUpdateTimerTick(t *testing.T) {
	s := state.NewSnapshot()
	s, _ = s.AddTimer(testutil.NewTimer("t1").WithInitial(2).Build())
	m := newTestModel(t, s)

	updated, cmd := m.Update(TimerTickMsg(m.now()))
	got := updated.(Model)
	if got.snapshot.Timers[0].Remaining != 1 {
		t.Fatalf("remaining = %d, want 1", got.snapshot.Timers[0].Remaining)
	}
	if cmd == nil {
		t.Fatalf("tick did not reschedule itself")
	}

	updated, _ = got.Update(TimerTickMsg(m.now()))
	got = updated.(Model)
	if !got.ringing.Any() {
		t.Fatalf("finished timer did not start ringing")
	}
}

func TestUpdatePollTickDisablesOneTimeAlarm(t *testing.T) {
	s := state.NewSnapshot()
	s, _ = s.AddAlarm(testutil.NewAlarm("once").WithTime("12:00").OneTime("2024-01-10").Build())
	m := newTestModel(t, s)

	updated, _ := m.Update(PollTickMsg(m.now()))
	got := updated.(Model)
	if !got.ringing.Has("once") {
		t.Fatalf("due alarm did not ring")
	}
	if got.snapshot.Alarms[0].Enabled {
		t.Fatalf("one-time alarm still enabled after firing")
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := newTestModel(t, state.NewSnapshot())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := updated.(Model)
	if got.width != 80 || got.height != 24 {
		t.Errorf("size = %dx%d", got.width, got.height)
	}
}
