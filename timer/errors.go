package timer

import "errors"

var (
	errInvalidSoundFormat = errors.New(
		"sound file must be in mp3, ogg, flac, or wav format",
	)

	errSoundNotFound = errors.New(
		"sound file not found in the data directory",
	)
)
