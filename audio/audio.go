// Package audio emits a square-wave tone while a CHIP-8 VM's sound
// timer is non-zero. It is the host audio device kept outside the
// interpreter core; the core only exposes ST via vm.VM.SoundActive.
package audio

import (
	"math"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// SampleRate and Frequency fix the tone's pitch; DefaultAmplitude is the
// default volume, overridable via config.Config.
const (
	SampleRate       = 44100
	Frequency        = 440 // A4 note
	DefaultAmplitude = 0.3 // 0.0-1.0
)

// Beeper drives an SDL2 audio device with a square wave, gated on or
// off by Update(soundActive).
type Beeper struct {
	deviceID  sdl.AudioDeviceID
	isPlaying bool
	phase     float64
	amplitude float64
	mu        sync.Mutex
}

func (b *Beeper) audioCallback(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isPlaying {
		for i := range data {
			data[i] = 0
		}
		return
	}

	phaseIncrement := 2 * math.Pi * Frequency / SampleRate

	for i := 0; i < len(data); i += 2 {
		var sample int16
		if math.Sin(b.phase) >= 0 {
			sample = int16(b.amplitude * 32767)
		} else {
			sample = int16(-b.amplitude * 32767)
		}

		data[i] = byte(sample)
		data[i+1] = byte(sample >> 8)

		b.phase += phaseIncrement
		if b.phase >= 2*math.Pi {
			b.phase -= 2 * math.Pi
		}
	}
}

// New opens an SDL2 audio device at the given amplitude (0.0-1.0) and
// starts it at once; it outputs silence until the first
// Update(true) call.
func New(amplitude float64) (*Beeper, error) {
	b := &Beeper{amplitude: amplitude}

	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
		Callback: sdl.AudioCallback(b.audioCallbackWrapper),
	}

	var obtained sdl.AudioSpec
	deviceID, err := sdl.OpenAudioDevice("", false, spec, &obtained, 0)
	if err != nil {
		return nil, err
	}

	b.deviceID = deviceID
	sdl.PauseAudioDevice(b.deviceID, false)

	return b, nil
}

func (b *Beeper) audioCallbackWrapper(userdata interface{}, stream []byte) {
	b.audioCallback(stream)
}

// Play starts the tone.
func (b *Beeper) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.isPlaying = true
}

// Stop silences the tone.
func (b *Beeper) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.isPlaying = false
}

// IsPlaying reports whether the tone is currently sounding.
func (b *Beeper) IsPlaying() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isPlaying
}

// Close releases the SDL2 audio device.
func (b *Beeper) Close() {
	b.Stop()
	if b.deviceID != 0 {
		sdl.CloseAudioDevice(b.deviceID)
	}
}

// Update starts or stops the tone based on soundActive: the sound timer
// falling to zero silences it, any non-zero value keeps it sounding.
// Callers pass vm.VM.SoundActive().
func (b *Beeper) Update(soundActive bool) {
	if soundActive {
		if !b.IsPlaying() {
			b.Play()
		}
	} else {
		if b.IsPlaying() {
			b.Stop()
		}
	}
}
