// Package schema defines the wire DTOs shared by the export adapters:
// JSON descriptions of committed node outputs. Frame pixel bytes never
// travel in these types; only the raw octet-stream endpoint carries them,
// described by a FrameMeta here.
package schema

import (
	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// FrameMeta describes an image payload without carrying its bytes.
type FrameMeta struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Channels int `json:"channels"`
	Size     int `json:"size"`
}

// Output is the wire representation of one node's committed output at
// one tick. Value is set for value signals, Frame for image signals,
// neither for void.
type Output struct {
	Tick   uint64     `json:"tick"`
	NodeID int        `json:"node_id"`
	Name   string     `json:"name"`
	Kind   string     `json:"kind"`
	Value  *float64   `json:"value,omitempty"`
	Frame  *FrameMeta `json:"frame,omitempty"`
}

// FromSignal converts one committed signal into its wire form.
func FromSignal(tick uint64, id domain.NodeID, name string, sig domain.Signal) Output {
	out := Output{
		Tick:   tick,
		NodeID: int(id),
		Name:   name,
		Kind:   sig.Kind().String(),
	}
	switch sig.Kind() {
	case domain.KindValue:
		v := sig.Scalar()
		out.Value = &v
	case domain.KindImage:
		if frame, ok := sig.Frame(); ok {
			out.Frame = &FrameMeta{
				Width:    frame.Width(),
				Height:   frame.Height(),
				Channels: frame.Channels(),
				Size:     frame.Size(),
			}
		}
	}
	return out
}

// Snapshot converts a whole committed tick: infos and outputs must be
// indexed by node identifier, as returned by the engine.
func Snapshot(tick uint64, infos []domain.NodeInfo, outputs []domain.Signal) []Output {
	set := make([]Output, 0, len(outputs))
	for i, sig := range outputs {
		name := ""
		if i < len(infos) {
			name = infos[i].Name
		}
		set = append(set, FromSignal(tick, domain.NodeID(i), name, sig))
	}
	return set
}
