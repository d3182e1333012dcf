package speech

import "context"

// Transcriber converts a recorded audio clip (16 kHz mono) into text.
// A failed transcription is reported as an error value; the caller
// treats it as zero recognized items and leaves the order untouched.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}
