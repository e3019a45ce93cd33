package pipeline

import "github.com/Taichi-iskw/yt-brief/internal/errors"

// UserMessage converts any pipeline error into a one-line user-facing
// message. Every failure kind is handled here, at the orchestration
// boundary; nothing is retried and nothing is fatal, so the user may
// fix the input and run the action again.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch errors.CodeOf(err) {
	case errors.CodeInvalidURL:
		return "That doesn't look like a YouTube URL. Check it and try again."
	case errors.CodeNoCaptions:
		return "This video has no captions available, so a transcript cannot be fetched."
	case errors.CodeFetch:
		return "Could not reach the captions provider. Check your connection and try again."
	case errors.CodeTooLarge:
		return "The transcript is too large for the model. Re-run with --truncate to summarize the beginning."
	case errors.CodeAuth:
		return "The generation API key is missing or was rejected. Run 'yt-brief config init' or set the key in the environment."
	case errors.CodeGeneration:
		return "The summary service failed to respond. Try again in a moment."
	case errors.CodeExport:
		return "The summary was generated but the export failed."
	case errors.CodeInvalidArg:
		return "Invalid input: " + err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
