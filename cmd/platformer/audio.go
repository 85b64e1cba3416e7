package main

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ladderfall/movement"
)

const sampleRate = 44100

type tone struct {
	freq     float64
	duration float64
	volume   float64
}

var tones = map[movement.Sound]tone{
	movement.SoundJump:                {freq: 660, duration: 0.08, volume: 0.5},
	movement.SoundStep:                {freq: 180, duration: 0.03, volume: 0.3},
	movement.SoundLadderStep:          {freq: 320, duration: 0.04, volume: 0.3},
	movement.SoundCannotPerformAction: {freq: 110, duration: 0.15, volume: 0.4},
}

// SoundBank holds one synthesized clip per sound cue. A nil bank is silent.
// Only one bank may exist per process.
type SoundBank struct {
	ctx   *audio.Context
	clips map[movement.Sound][]byte
}

func NewSoundBank() *SoundBank {
	ctx := audio.NewContext(sampleRate)
	b := &SoundBank{ctx: ctx, clips: make(map[movement.Sound][]byte, len(tones))}
	for s, t := range tones {
		b.clips[s] = synthTone(ctx.SampleRate(), t)
	}
	return b
}

func (b *SoundBank) Play(sounds []movement.Sound) {
	if b == nil {
		return
	}
	for _, s := range sounds {
		clip, ok := b.clips[s]
		if !ok {
			continue
		}
		p := b.ctx.NewPlayerFromBytes(clip)
		p.Play()
	}
}

// synthTone renders a square wave with a linear fade out as 16-bit stereo PCM.
func synthTone(rate int, t tone) []byte {
	n := int(float64(rate) * t.duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		phase := math.Mod(float64(i)*t.freq/float64(rate), 1)
		v := t.volume
		if phase >= 0.5 {
			v = -v
		}
		v *= 1 - float64(i)/float64(n)
		sample := uint16(int16(v * math.MaxInt16 * 0.5))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
