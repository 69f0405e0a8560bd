package server

import (
	"fmt"
	"starfield/world"

	"google.golang.org/protobuf/types/known/structpb"
)

// SnapshotToProto encodes s as a protobuf Struct so it can travel over wspb
// without generated message types.
func SnapshotToProto(s world.Snapshot) *structpb.Struct {
	entities := make([]*structpb.Value, 0, len(s.Entities))
	for _, e := range s.Entities {
		entities = append(entities, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"id":   structpb.NewStringValue(e.ID),
				"kind": structpb.NewStringValue(e.Kind.String()),
				"x":    structpb.NewNumberValue(e.X),
				"y":    structpb.NewNumberValue(e.Y),
				"w":    structpb.NewNumberValue(e.W),
				"h":    structpb.NewNumberValue(e.H),
			},
		}))
	}
	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"tick":     structpb.NewNumberValue(float64(s.Tick)),
			"state":    structpb.NewStringValue(s.State.String()),
			"entities": structpb.NewListValue(&structpb.ListValue{Values: entities}),
		},
	}
}

func SnapshotFromProto(p *structpb.Struct) (world.Snapshot, error) {
	var s world.Snapshot
	fields := p.GetFields()
	tick, ok := fields["tick"]
	if !ok {
		return s, fmt.Errorf("snapshot without tick")
	}
	s.Tick = int64(tick.GetNumberValue())
	s.State = world.ParseState(fields["state"].GetStringValue())

	for i, v := range fields["entities"].GetListValue().GetValues() {
		e := v.GetStructValue().GetFields()
		if e == nil {
			return s, fmt.Errorf("entity %d is not an object", i)
		}
		s.Entities = append(s.Entities, world.EntityState{
			ID:   e["id"].GetStringValue(),
			Kind: world.ParseKind(e["kind"].GetStringValue()),
			X:    e["x"].GetNumberValue(),
			Y:    e["y"].GetNumberValue(),
			W:    e["w"].GetNumberValue(),
			H:    e["h"].GetNumberValue(),
		})
	}
	return s, nil
}
