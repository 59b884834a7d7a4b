package ws

import (
	"encoding/json"
	"fmt"

	"chat-hub/domain/event"
)

// Frame is the wire envelope of every event, inbound and outbound:
// {"event": "...", "data": ...}.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func encodeOutbound(e event.Outbound) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("payload marshal failed: %w", err)
	}
	frame, err := json.Marshal(Frame{Event: e.Event(), Data: data})
	if err != nil {
		return nil, fmt.Errorf("frame marshal failed: %w", err)
	}
	return frame, nil
}

func decodeFrame(raw []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return Frame{}, fmt.Errorf("malformed frame: %w", err)
	}
	return frame, nil
}
