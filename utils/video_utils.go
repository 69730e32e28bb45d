package utils

import "regexp"

// The admin pastes whole YouTube URLs into the CMS; only the video id is
// stored. Patterns are tried in order; an unrecognized value is kept
// verbatim.
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#\s]*&)?v=([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`youtube(?:-nocookie)?\.com/embed/([A-Za-z0-9_-]{6,})`),
}

// ExtractYouTubeID reduces a pasted YouTube URL to its video id. Returns the
// input unmodified when no pattern matches.
func ExtractYouTubeID(raw string) string {
	for _, pattern := range youtubeIDPatterns {
		if match := pattern.FindStringSubmatch(raw); match != nil {
			return match[1]
		}
	}
	return raw
}
