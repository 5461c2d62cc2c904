package validator

import (
	"regexp"
	"strings"
)

// fencedBlockRE matches the first triple-backtick fence, optionally tagged
// "java", non-greedy across lines. Only the first fence is considered;
// anything after its closing marker is ignored.
var fencedBlockRE = regexp.MustCompile("(?is)```(?:java)?\\s*\n?(.*?)\n?```")

// ExtractCode locates the most plausible Java fragment in free-form model
// text. It prefers the interior of the first fenced block; failing that,
// text whose first line opens a public class or an import is taken whole.
// An empty result means no code was found, which is a valid negative
// outcome, not an error.
func ExtractCode(text string) string {
	if m := fencedBlockRE.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	trimmed := strings.TrimSpace(text)
	line := trimmed
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		line = trimmed[:i]
	}
	if strings.HasPrefix(line, "public class") || strings.HasPrefix(line, "import") {
		return trimmed
	}

	return ""
}
