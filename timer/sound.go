package timer

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pterm/pterm"

	"github.com/haruapp/haru/internal/config"
)

// soundOff disables all session sounds when used as the sound name.
const soundOff = "off"

// endSound plays once when a session completes.
const endSound = "bell"

// resolveSoundPath locates a sound file. Bare names without an extension are
// treated as OGG files in the application's data directory.
func resolveSoundPath(sound string) (string, error) {
	if filepath.Ext(sound) != "" {
		return sound, nil
	}

	p, err := xdg.SearchDataFile(
		filepath.Join(config.Dir(), "sounds", sound+".ogg"),
	)
	if err != nil {
		return "", errSoundNotFound
	}

	return p, nil
}

// prepSoundStream returns an audio stream for the specified sound.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	pathToSound, err := resolveSoundPath(sound)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(pathToSound)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch filepath.Ext(pathToSound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return nil, err
	}

	err = stream.Seek(0)
	if err != nil {
		return nil, err
	}

	return stream, nil
}

// setAmbientSound prepares the looping session sound if one is configured.
func (t *Timer) setAmbientSound() error {
	sound := t.Opts.Focus.Sound
	if sound == "" || sound == soundOff {
		t.SoundStream = nil
		return nil
	}

	stream, err := prepSoundStream(sound)
	if err != nil {
		return err
	}

	t.SoundStream = beep.Loop(-1, stream)

	speaker.Play(t.SoundStream)

	return nil
}

func (t *Timer) stopAmbientSound() {
	if t.SoundStream == nil {
		return
	}

	speaker.Clear()

	t.SoundStream = nil
}

// playEndSound plays the completion sound once and blocks until it is done.
func (t *Timer) playEndSound(sound string) {
	if sound == soundOff {
		return
	}

	stream, err := prepSoundStream(sound)
	if err != nil {
		// a missing bundled sound is not worth reporting
		if !errors.Is(err, errSoundNotFound) {
			pterm.Error.Printfln("unable to play sound: %v", err)
		}

		return
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	_ = stream.Close()

	speaker.Clear()
}
