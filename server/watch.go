package server

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wspb"
)

const DefaultWatchURL = "ws://localhost:4243"

// Watch dials a telemetry feed and writes each snapshot to w as one JSON
// line until ctx is done or the feed closes.
func Watch(ctx context.Context, url string, w io.Writer) error {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer c.Close(websocket.StatusInternalError, "")

	for {
		var msg structpb.Struct
		if err := wspb.Read(ctx, c, &msg); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return err
		}
		if _, err := SnapshotFromProto(&msg); err != nil {
			return err
		}
		line, err := protojson.Marshal(&msg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
}
