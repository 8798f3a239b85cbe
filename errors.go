package ytt

import "errors"

var (
	// ErrNotFound is returned when no video ID can be resolved from the input, or when no transcript can be acquired
	// for a video.
	ErrNotFound = errors.New("not found")
	// ErrEmptyVideoID is returned by NewVideoID for an empty string.
	ErrEmptyVideoID = errors.New("video ID cannot be empty")
	// ErrTranscriptsDisabled is returned by a TranscriptProvider when the video has no captions at all.
	ErrTranscriptsDisabled = errors.New("transcripts are disabled")
	// ErrNoTranscript is returned when tracks exist but none could be selected or materialised.
	ErrNoTranscript = errors.New("no transcript found")

	ErrDuplicateRule = errors.New("duplicate rule name")
	ErrInvalidRule   = errors.New("invalid rule")
	ErrUnknownRule   = errors.New("unknown rule")
)
