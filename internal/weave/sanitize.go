package weave

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	scriptPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>|<style[^>]*>.*?</style>`)
	tagPattern    = regexp.MustCompile(`(?s)<[^>]*>`)
	octetPattern  = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// Sanitize cleans a submitted text value. Script and style elements are
// dropped with their content, other tags and percent-encoded octets are
// removed, whitespace runs collapse to single spaces and the result is NFC
// normalized.
func Sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	s = scriptPattern.ReplaceAllString(s, "")
	s = tagPattern.ReplaceAllString(s, "")
	s = octetPattern.ReplaceAllString(s, "")
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}
