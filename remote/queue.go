package remote

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jim-ec/hello-orbit/orbit"
	"github.com/jim-ec/hello-orbit/schema"
)

// DefaultPeerTimeout is how long a silent peer keeps its keys held and
// stays listed as active.
const DefaultPeerTimeout = 5 * time.Second

// Queue collects remote input between frames. Messages may be pushed from
// any goroutine; Drain is called once per frame from the frame loop.
type Queue struct {
	timeout time.Duration
	now     func() time.Time

	mu      sync.Mutex
	pending orbit.Events
	peers   map[string]*peerState
}

type peerState struct {
	name string
	keys orbit.KeySet
	seen time.Time
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		timeout: DefaultPeerTimeout,
		now:     time.Now,
		peers:   make(map[string]*peerState),
	}
}

// Push decodes a JSON encoded schema.Input and queues it.
func (q *Queue) Push(peerID string, data []byte) error {
	var input schema.Input
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	if input.ID == "" {
		input.ID = peerID
	}
	return q.Apply(input)
}

// Apply queues a decoded message.
func (q *Queue) Apply(input schema.Input) error {
	if input.ID == "" {
		return fmt.Errorf("input of kind %q has no peer id", input.Kind)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	peer, ok := q.peers[input.ID]
	if !ok {
		peer = &peerState{}
		q.peers[input.ID] = peer
		orbit.Logger().Info("Remote peer joined",
			"id", input.ID,
			"name", input.Name,
		)
	}
	if input.Name != "" {
		peer.name = input.Name
	}
	peer.seen = q.now()

	switch input.Kind {
	case schema.KindHello:
	case schema.KindDrag:
		q.pending.Wheel = append(q.pending.Wheel, orbit.WheelEvent{
			Unit: orbit.ScrollUnitPixel,
			X:    input.X,
			Y:    input.Y,
		})
	case schema.KindPinch:
		q.pending.Pinch = append(q.pending.Pinch, orbit.PinchEvent{
			Delta: input.Delta,
		})
	case schema.KindKeys:
		keys, err := parseKeys(input.Keys)
		if err != nil {
			return err
		}
		peer.keys = keys
	default:
		return fmt.Errorf("unknown input kind %q", input.Kind)
	}
	return nil
}

// Release forgets a peer, releasing any keys it held.
func (q *Queue) Release(peerID string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if peer, ok := q.peers[peerID]; ok {
		delete(q.peers, peerID)
		orbit.Logger().Info("Remote peer left",
			"id", peerID,
			"name", peer.name,
		)
	}
}

// Drain returns the events queued since the previous call together with
// the keys held by active peers. Peers that stayed silent longer than the
// timeout are forgotten.
func (q *Queue) Drain() orbit.Events {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.pending
	q.pending = orbit.Events{}

	now := q.now()
	for id, peer := range q.peers {
		if now.Sub(peer.seen) > q.timeout {
			delete(q.peers, id)
			orbit.Logger().Info("Remote peer timed out",
				"id", id,
				"name", peer.name,
			)
			continue
		}
		events.Keys |= peer.keys
	}
	return events
}

// Peers returns the sorted names of the peers that sent input recently.
func (q *Queue) Peers() []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	names := make([]string, 0, len(q.peers))
	for id, peer := range q.peers {
		if now.Sub(peer.seen) > q.timeout {
			continue
		}
		name := peer.name
		if name == "" {
			name = id
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func parseKeys(names []string) (orbit.KeySet, error) {
	var keys orbit.KeySet
	for _, name := range names {
		switch name {
		case schema.KeyForward:
			keys = keys.With(orbit.KeyForward)
		case schema.KeyBack:
			keys = keys.With(orbit.KeyBack)
		case schema.KeyLeft:
			keys = keys.With(orbit.KeyLeft)
		case schema.KeyRight:
			keys = keys.With(orbit.KeyRight)
		default:
			return 0, fmt.Errorf("unknown key %q", name)
		}
	}
	return keys, nil
}
