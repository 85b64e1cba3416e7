// Package recording stores simulation runs as zstd-compressed JSON lines, one
// frame per tick, and replays their inputs. A recording may start with a
// header line naming the level and the movement config it was made with.
package recording

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/ecs/system"
	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/sim"
)

// Ext is the file extension used for recordings.
const Ext = ".jsonl.zst"

// Header describes the run that produced a recording.
type Header struct {
	Level         string  `json:"level"`
	PlayerSpeed   float64 `json:"player_speed"`
	JumpAllowance float64 `json:"jump_allowance"`
	TurnAllowance float64 `json:"turn_allowance"`
	TickRate      int     `json:"tick_rate"`
}

func NewHeader(level string, cfg movement.Config) Header {
	return Header{
		Level:         level,
		PlayerSpeed:   cfg.PlayerSpeed,
		JumpAllowance: cfg.JumpAllowance,
		TurnAllowance: cfg.TurnAllowance,
		TickRate:      cfg.TickRate,
	}
}

func (h Header) Config() movement.Config {
	return movement.Config{
		PlayerSpeed:   h.PlayerSpeed,
		JumpAllowance: h.JumpAllowance,
		TurnAllowance: h.TurnAllowance,
		TickRate:      h.TickRate,
	}
}

type headerLine struct {
	Header *Header `json:"header"`
}

type Input struct {
	MoveX  float64 `json:"move_x,omitempty"`
	MoveY  float64 `json:"move_y,omitempty"`
	Jump   bool    `json:"jump,omitempty"`
	Tool   bool    `json:"tool,omitempty"`
	Rewind bool    `json:"rewind,omitempty"`
}

// Frame is one tick of a run.
type Frame struct {
	Tick        int      `json:"tick"`
	Input       Input    `json:"input"`
	Pos         grid.Pos `json:"pos"`
	Destination grid.Pos `json:"destination"`
	Mode        string   `json:"mode"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Sounds      []string `json:"sounds,omitempty"`
}

func FromSnapshot(s sim.Snapshot) Frame {
	f := Frame{
		Tick: s.Tick,
		Input: Input{
			MoveX:  s.Input.MoveX,
			MoveY:  s.Input.MoveY,
			Jump:   s.Input.Jump,
			Tool:   s.Input.Tool,
			Rewind: s.Input.Rewind,
		},
		Pos:         s.Pos,
		Destination: s.Destination,
		Mode:        s.Mode.Kind.String(),
		X:           s.Position.X,
		Y:           s.Position.Y,
	}
	for _, sound := range s.Sounds {
		f.Sounds = append(f.Sounds, sound.String())
	}
	return f
}

func FromSnapshots(snaps []sim.Snapshot) []Frame {
	out := make([]Frame, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, FromSnapshot(s))
	}
	return out
}

// ComponentInput converts a recorded input back to the simulation's form.
func (in Input) ComponentInput() component.Input {
	return component.Input{
		MoveX:  in.MoveX,
		MoveY:  in.MoveY,
		Jump:   in.Jump,
		Tool:   in.Tool,
		Rewind: in.Rewind,
	}
}

// SoundCues parses the recorded sound names, skipping unknown ones.
func (f Frame) SoundCues() []movement.Sound {
	var out []movement.Sound
	for _, name := range f.Sounds {
		if s, ok := movement.ParseSound(name); ok {
			out = append(out, s)
		}
	}
	return out
}

type Writer struct {
	enc *zstd.Encoder
	w   *bufio.Writer
	c   io.Closer
}

// NewWriter compresses frames into w. Close flushes the stream but does not
// close w.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Writer{enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Create opens path for writing. Close also closes the file.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.c = f
	return w, nil
}

// WriteHeader writes h as a header line. It must come before any frame.
func (w *Writer) WriteHeader(h Header) error {
	return w.writeLine(headerLine{Header: &h})
}

func (w *Writer) Write(f Frame) error {
	return w.writeLine(f)
}

func (w *Writer) writeLine(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

func (w *Writer) Close() error {
	var errs []error
	if w.w != nil {
		errs = append(errs, w.w.Flush())
		w.w = nil
	}
	if w.enc != nil {
		errs = append(errs, w.enc.Close())
		w.enc = nil
	}
	if w.c != nil {
		errs = append(errs, w.c.Close())
		w.c = nil
	}
	return errors.Join(errs...)
}

// ReadAll decodes every frame in r, skipping the header.
func ReadAll(r io.Reader) ([]Frame, error) {
	_, frames, err := Read(r)
	return frames, err
}

// Read decodes the header, if any, and every frame in r.
func Read(r io.Reader) (*Header, []Frame, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var (
		header *Header
		frames []Frame
		line   int
	)
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		if line == 1 {
			var hl headerLine
			if err := json.Unmarshal(b, &hl); err == nil && hl.Header != nil {
				header = hl.Header
				continue
			}
		}
		var f Frame
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, nil, fmt.Errorf("recording: line %d: %w", line, err)
		}
		if n := len(frames); n > 0 && f.Tick <= frames[n-1].Tick {
			return nil, nil, fmt.Errorf("recording: line %d: tick %d after tick %d", line, f.Tick, frames[n-1].Tick)
		}
		frames = append(frames, f)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return header, frames, nil
}

// Open reads the recording at path.
func Open(path string) (*Header, []Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f)
}

// RotatePath returns the path of the n-th follow-up recording of path:
// run.jsonl.zst becomes run-1.jsonl.zst. n <= 0 returns path.
func RotatePath(path string, n int) string {
	if n <= 0 {
		return path
	}
	base := strings.TrimSuffix(path, Ext)
	return fmt.Sprintf("%s-%d%s", base, n, Ext)
}

// Compare reports the first tick at which got departs from want. Frames are
// compared on everything but their input.
func Compare(want, got []Frame) (int, bool) {
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if !sameState(want[i], got[i]) {
			return want[i].Tick, false
		}
	}
	if len(want) != len(got) {
		return n, false
	}
	return 0, true
}

func sameState(a, b Frame) bool {
	if a.Tick != b.Tick || a.Pos != b.Pos || a.Destination != b.Destination || a.Mode != b.Mode {
		return false
	}
	if a.X != b.X || a.Y != b.Y || len(a.Sounds) != len(b.Sounds) {
		return false
	}
	for i := range a.Sounds {
		if a.Sounds[i] != b.Sounds[i] {
			return false
		}
	}
	return true
}

// Inputs replays the recorded inputs by tick. Ticks past the end yield no
// input.
func Inputs(frames []Frame) system.InputSource {
	byTick := make(map[int]component.Input, len(frames))
	for _, f := range frames {
		byTick[f.Tick] = f.Input.ComponentInput()
	}
	return system.InputFunc(func(tick int) component.Input {
		return byTick[tick]
	})
}
