// ABOUTME: Audio export package writing finalized buffers to disk
// ABOUTME: WAV and FLAC containers behind an atomic temp-file writer
// Package export writes finalized sample buffers to audio files.
//
// Supports: WAV (16/24-bit PCM, via go-audio/wav) and FLAC (16/24-bit,
// via mewkiz/flac). The container is chosen from the file extension.
//
// Every write goes to a temporary file in the destination directory, is
// synced, and is then renamed into place. On failure the temporary file is
// removed, so a partial or corrupt file is never left at the target path.
// Failures are reported as *OutputWriteError.
//
// Example:
//
//	err := export.WriteFile("cq.wav", buf, 16)
package export
