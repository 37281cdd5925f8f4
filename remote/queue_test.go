package remote

import (
	"slices"
	"testing"
	"time"

	"github.com/jim-ec/hello-orbit/orbit"
	"github.com/jim-ec/hello-orbit/schema"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestQueue() (*Queue, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	queue := NewQueue()
	queue.now = clock.Now
	return queue, clock
}

func TestQueuePush(t *testing.T) {
	queue, _ := newTestQueue()

	messages := []string{
		`{"name":"phone","kind":"hello"}`,
		`{"kind":"drag","x":12,"y":-4}`,
		`{"kind":"pinch","delta":0.25}`,
		`{"kind":"keys","keys":["forward","left"]}`,
	}
	for _, message := range messages {
		if err := queue.Push("peer-1", []byte(message)); err != nil {
			t.Fatalf("Push(%s) error = %v", message, err)
		}
	}

	events := queue.Drain()
	if len(events.Wheel) != 1 {
		t.Fatalf("len(Wheel) = %d, want 1", len(events.Wheel))
	}
	wantWheel := orbit.WheelEvent{Unit: orbit.ScrollUnitPixel, X: 12, Y: -4}
	if events.Wheel[0] != wantWheel {
		t.Errorf("Wheel[0] = %+v, want %+v", events.Wheel[0], wantWheel)
	}
	if len(events.Pinch) != 1 || events.Pinch[0].Delta != 0.25 {
		t.Errorf("Pinch = %+v, want a single 0.25 delta", events.Pinch)
	}
	if events.Keys != orbit.NewKeySet(orbit.KeyForward, orbit.KeyLeft) {
		t.Errorf("Keys = %08b, want forward and left", events.Keys)
	}

	if got := queue.Peers(); !slices.Equal(got, []string{"phone"}) {
		t.Errorf("Peers() = %v, want [phone]", got)
	}
}

func TestQueueDrainResetsEvents(t *testing.T) {
	queue, _ := newTestQueue()
	if err := queue.Apply(schema.Input{ID: "a", Kind: schema.KindPinch, Delta: 0.1}); err != nil {
		t.Fatal(err)
	}
	if err := queue.Apply(schema.Input{ID: "a", Kind: schema.KindKeys, Keys: []string{schema.KeyRight}}); err != nil {
		t.Fatal(err)
	}

	first := queue.Drain()
	if len(first.Pinch) != 1 {
		t.Fatalf("first Drain() returned %d pinch events, want 1", len(first.Pinch))
	}

	second := queue.Drain()
	if len(second.Pinch) != 0 || len(second.Wheel) != 0 {
		t.Errorf("second Drain() repeated events: %+v", second)
	}
	if !second.Keys.Contains(orbit.KeyRight) {
		t.Errorf("held keys were not kept across frames")
	}
}

func TestQueueKeysRelease(t *testing.T) {
	queue, clock := newTestQueue()
	apply := func(input schema.Input) {
		t.Helper()
		if err := queue.Apply(input); err != nil {
			t.Fatal(err)
		}
	}

	apply(schema.Input{ID: "a", Kind: schema.KindKeys, Keys: []string{schema.KeyBack}})
	apply(schema.Input{ID: "b", Kind: schema.KindKeys, Keys: []string{schema.KeyLeft}})
	if keys := queue.Drain().Keys; keys != orbit.NewKeySet(orbit.KeyBack, orbit.KeyLeft) {
		t.Fatalf("Keys = %08b, want back and left from both peers", keys)
	}

	apply(schema.Input{ID: "a", Kind: schema.KindKeys})
	if keys := queue.Drain().Keys; keys != orbit.NewKeySet(orbit.KeyLeft) {
		t.Errorf("Keys = %08b, want left after peer a released", keys)
	}

	queue.Release("b")
	if keys := queue.Drain().Keys; keys != 0 {
		t.Errorf("Keys = %08b, want none after peer b left", keys)
	}

	apply(schema.Input{ID: "c", Kind: schema.KindKeys, Keys: []string{schema.KeyForward}})
	clock.now = clock.now.Add(DefaultPeerTimeout + time.Second)
	if keys := queue.Drain().Keys; keys != 0 {
		t.Errorf("Keys = %08b, want stale keys to expire", keys)
	}
	if peers := queue.Peers(); len(peers) != 0 {
		t.Errorf("Peers() = %v, want no active peers", peers)
	}
}

func TestQueueDrainForgetsSilentPeers(t *testing.T) {
	queue, clock := newTestQueue()

	if err := queue.Push("peer-1", []byte(`{"name":"phone","kind":"keys","keys":["right"]}`)); err != nil {
		t.Fatal(err)
	}
	if err := queue.Push("peer-2", []byte(`{"name":"tablet","kind":"hello"}`)); err != nil {
		t.Fatal(err)
	}

	clock.now = clock.now.Add(DefaultPeerTimeout / 2)
	if err := queue.Push("peer-2", []byte(`{"kind":"hello"}`)); err != nil {
		t.Fatal(err)
	}

	clock.now = clock.now.Add(DefaultPeerTimeout/2 + time.Second)
	if keys := queue.Drain().Keys; keys != 0 {
		t.Errorf("Keys = %08b, want none from the silent peer", keys)
	}
	if _, ok := queue.peers["peer-1"]; ok {
		t.Errorf("silent peer was kept after Drain")
	}
	if _, ok := queue.peers["peer-2"]; !ok {
		t.Errorf("recently seen peer was dropped")
	}

	// A forgotten peer that speaks again is registered anew.
	if err := queue.Push("peer-1", []byte(`{"kind":"keys","keys":["left"]}`)); err != nil {
		t.Fatal(err)
	}
	if keys := queue.Drain().Keys; keys != orbit.NewKeySet(orbit.KeyLeft) {
		t.Errorf("Keys = %08b, want left from the returning peer", keys)
	}
	if got := queue.Peers(); !slices.Equal(got, []string{"peer-1", "tablet"}) {
		t.Errorf("Peers() = %v, want [peer-1 tablet]", got)
	}
}

func TestQueueErrors(t *testing.T) {
	tests := []struct {
		name    string
		peerID  string
		message string
	}{
		{"invalid json", "a", `{"kind":`},
		{"unknown kind", "a", `{"kind":"teleport"}`},
		{"unknown key", "a", `{"kind":"keys","keys":["jump"]}`},
		{"missing id", "", `{"kind":"hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue, _ := newTestQueue()
			if err := queue.Push(tt.peerID, []byte(tt.message)); err == nil {
				t.Errorf("Push(%s) error = nil, want error", tt.message)
			}
			if events := queue.Drain(); len(events.Wheel) != 0 || len(events.Pinch) != 0 || events.Keys != 0 {
				t.Errorf("rejected input produced events: %+v", events)
			}
		})
	}
}

func TestQueueMessageIDOverridesPeer(t *testing.T) {
	queue, _ := newTestQueue()
	if err := queue.Push("connection", []byte(`{"id":"pad","name":"tablet","kind":"hello"}`)); err != nil {
		t.Fatal(err)
	}
	queue.Release("pad")
	if peers := queue.Peers(); len(peers) != 0 {
		t.Errorf("Peers() = %v, want the pad to be released by its message id", peers)
	}
}
