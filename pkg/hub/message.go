// Package hub provides a thread-safe websocket broadcast hub using the
// channel-based fan-out pattern. The animation ticker publishes one frame
// batch per tick; every connected renderer receives the same bytes.
package hub

// Message is a payload to broadcast to clients. Frame batches are
// pre-encoded JSON so the encoding cost is paid once, not per client.
type Message struct {
	Data []byte
}

// NewMessage wraps pre-encoded bytes for broadcast.
func NewMessage(data []byte) Message {
	return Message{Data: data}
}
