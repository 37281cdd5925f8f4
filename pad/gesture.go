// Package pad turns touch screen gestures into remote orbit input.
package pad

import (
	"slices"

	"github.com/jim-ec/hello-orbit/schema"
)

// Tracker follows active touch points and converts their movement into
// schema.Input messages: one finger drags, two fingers pinch.
type Tracker struct {
	touches map[int]schema.Point
}

// NewTracker creates a Tracker with no active touches.
func NewTracker() *Tracker {
	return &Tracker{
		touches: make(map[int]schema.Point),
	}
}

// Start registers a new touch point.
func (t *Tracker) Start(id int, position schema.Point) {
	t.touches[id] = position
}

// End forgets a touch point.
func (t *Tracker) End(id int) {
	delete(t.touches, id)
}

// Count returns the number of active touches.
func (t *Tracker) Count() int {
	return len(t.touches)
}

// Move updates the positions of the specified touches and returns the
// resulting messages. Unknown touch ids are ignored.
func (t *Tracker) Move(positions map[int]schema.Point) []schema.Input {
	previous := make(map[int]schema.Point, len(t.touches))
	for id, position := range t.touches {
		previous[id] = position
	}
	for id, position := range positions {
		if _, ok := t.touches[id]; ok {
			t.touches[id] = position
		}
	}

	switch len(t.touches) {
	case 1:
		for id, position := range t.touches {
			delta := position.Sub(previous[id])
			if delta.X == 0 && delta.Y == 0 {
				return nil
			}
			return []schema.Input{{
				Kind: schema.KindDrag,
				X:    delta.X,
				Y:    delta.Y,
			}}
		}
	case 2:
		ids := make([]int, 0, 2)
		for id := range t.touches {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		before := previous[ids[1]].Sub(previous[ids[0]]).Length()
		after := t.touches[ids[1]].Sub(t.touches[ids[0]]).Length()
		if before == 0 || before == after {
			return nil
		}
		return []schema.Input{{
			Kind:  schema.KindPinch,
			Delta: after/before - 1,
		}}
	}
	return nil
}

// Keys tracks the on-screen direction buttons.
type Keys struct {
	held []string
}

// Press marks a key as held. It reports whether the set changed.
func (k *Keys) Press(key string) bool {
	if slices.Contains(k.held, key) {
		return false
	}
	k.held = append(k.held, key)
	slices.Sort(k.held)
	return true
}

// Release marks a key as no longer held. It reports whether the set
// changed.
func (k *Keys) Release(key string) bool {
	index := slices.Index(k.held, key)
	if index < 0 {
		return false
	}
	k.held = slices.Delete(k.held, index, index+1)
	return true
}

// Input returns the message that reports the currently held keys.
func (k *Keys) Input() schema.Input {
	return schema.Input{
		Kind: schema.KindKeys,
		Keys: slices.Clone(k.held),
	}
}

// Held reports whether any key is held.
func (k *Keys) Held() bool {
	return len(k.held) > 0
}
