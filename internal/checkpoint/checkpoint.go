// Package checkpoint persists and restores a model's search progress, so
// a long-running render can be interrupted and resumed: the same
// Checkpoint/CheckpointInfo shape, Store interface, filesystem layout and
// atomic-write strategy apply to a primitive history instead of a fixed
// parameter vector.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cwbudde/primsketch/internal/engine"
	"github.com/cwbudde/primsketch/internal/geom"
	"github.com/cwbudde/primsketch/internal/shapes"
)

// Config records the render invocation a checkpoint belongs to, so a
// resume can reload the same input and continue with the same shape kind,
// alpha, quality, seed and output size.
type Config struct {
	InFile     string `json:"inFile"`
	Shape      string `json:"shape"`
	NumShapes  int    `json:"numShapes"`
	OutputSize int    `json:"outputSize"`
	Alpha      uint8  `json:"alpha"`
	Quality    int    `json:"quality"`
	Seed       int64  `json:"seed"`
}

// ShapeRecord is one committed (shape, colour) pair in a
// serialisation-friendly form: Data holds the concrete shape struct's
// own JSON encoding, keyed by Kind so it can be decoded back into the
// correct Go type.
type ShapeRecord struct {
	Kind  string          `json:"kind"`
	Alpha uint8           `json:"alpha"`
	Color uint32          `json:"color"`
	Data  json.RawMessage `json:"data"`
}

// Checkpoint is the full persisted state of an in-progress render.
type Checkpoint struct {
	ID        string        `json:"id"`
	Config    Config        `json:"config"`
	Score     float32       `json:"score"`
	Records   []ShapeRecord `json:"history"`
	Timestamp time.Time     `json:"timestamp"`
}

// CheckpointInfo is the metadata subset used for listing.
type CheckpointInfo struct {
	ID        string    `json:"id"`
	InFile    string    `json:"inFile"`
	Shape     string    `json:"shape"`
	NumShapes int       `json:"numShapes"`
	Progress  int       `json:"progress"`
	Score     float32   `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// New builds a Checkpoint from a model's current state.
func New(id string, cfg Config, score float32, history []engine.State) (*Checkpoint, error) {
	records := make([]ShapeRecord, len(history))
	for i, st := range history {
		data, err := json.Marshal(st.Shape)
		if err != nil {
			return nil, fmt.Errorf("checkpoint: encode shape %d: %w", i, err)
		}
		records[i] = ShapeRecord{
			Kind:  st.Shape.Kind().String(),
			Alpha: st.Alpha,
			Color: uint32(st.Color),
			Data:  data,
		}
	}
	return &Checkpoint{
		ID:        id,
		Config:    cfg,
		Score:     score,
		Records:   records,
		Timestamp: time.Now(),
	}, nil
}

// History decodes the checkpoint's records back into engine.State
// values, ready to be replayed or resumed from.
func (c *Checkpoint) History() ([]engine.State, error) {
	out := make([]engine.State, len(c.Records))
	return out, decodeHistory(c.Records, out)
}

func decodeHistory(records []ShapeRecord, out []engine.State) error {
	for i, rec := range records {
		kind, err := shapes.ParseKind(rec.Kind)
		if err != nil {
			return fmt.Errorf("checkpoint: record %d: %w", i, err)
		}
		shape := newEmptyShape(kind)
		if err := json.Unmarshal(rec.Data, shape); err != nil {
			return fmt.Errorf("checkpoint: decode shape %d: %w", i, err)
		}
		out[i] = engine.State{
			Shape: shape,
			Alpha: rec.Alpha,
			Color: geom.Color(rec.Color),
		}
	}
	return nil
}

func newEmptyShape(kind shapes.Kind) shapes.Shape {
	switch kind {
	case shapes.KindTriangle:
		return &shapes.Triangle{}
	case shapes.KindEllipse:
		return &shapes.Ellipse{}
	case shapes.KindRectangle:
		return &shapes.Rectangle{}
	case shapes.KindRotatedRectangle:
		return &shapes.RotatedRectangle{}
	default:
		panic(fmt.Sprintf("checkpoint: unknown kind %v", kind))
	}
}

// ToInfo reduces a Checkpoint to its listing metadata.
func (c *Checkpoint) ToInfo() CheckpointInfo {
	return CheckpointInfo{
		ID:        c.ID,
		InFile:    c.Config.InFile,
		Shape:     c.Config.Shape,
		NumShapes: c.Config.NumShapes,
		Progress:  len(c.Records),
		Score:     c.Score,
		Timestamp: c.Timestamp,
	}
}

// Validate reports whether a checkpoint has enough information to be
// resumed.
func (c *Checkpoint) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("checkpoint: ID cannot be empty")
	}
	if c.Config.InFile == "" {
		return fmt.Errorf("checkpoint: Config.InFile cannot be empty")
	}
	if c.Config.NumShapes <= 0 {
		return fmt.Errorf("checkpoint: Config.NumShapes must be positive")
	}
	if c.Timestamp.IsZero() {
		return fmt.Errorf("checkpoint: Timestamp cannot be zero")
	}
	return nil
}
