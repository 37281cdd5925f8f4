package remote

import (
	"context"

	"github.com/nobonobo/rtcconnect/node"
	"github.com/pion/webrtc/v4"

	"github.com/jim-ec/hello-orbit/orbit"
)

// Host accepts touch pad connections and feeds their messages into a
// Queue.
type Host struct {
	*Queue

	node *node.Node
}

// NewHost creates a Host that is reachable under the specified id.
func NewHost(id string) *Host {
	h := &Host{
		Queue: NewQueue(),
		node:  node.NewHost(id),
	}
	h.node.OnConnected = h.onConnected
	return h
}

// ID returns the id pads use to connect to the host.
func (h *Host) ID() string {
	return h.node.ID()
}

// Listen accepts connections until ctx is cancelled.
func (h *Host) Listen(ctx context.Context) error {
	logger := orbit.Logger()
	logger.Info("Listen start", "id", h.ID())
	defer logger.Info("Listen stop", "id", h.ID())
	return h.node.Listen(ctx)
}

func (h *Host) onConnected(peer *node.Node) {
	id := peer.ID()
	peer.PeerConnection().OnDataChannel(func(dc *webrtc.DataChannel) {
		logger := orbit.Logger()
		logger.Debug("Data channel opened", "peer", id)
		dc.OnClose(func() {
			logger.Debug("Data channel closed", "peer", id)
			h.Release(id)
		})
		dc.OnMessage(func(msg webrtc.DataChannelMessage) {
			if err := h.Push(id, msg.Data); err != nil {
				logger.Warn("Dropped remote input",
					"peer", id,
					"error", err.Error(),
				)
			}
		})
	})
}
