package placement

import (
	"regexp"
	"sync"

	"github.com/specialistvlad/checkoutfields/internal/model"
)

// maxCachedPatterns bounds the compiled pattern cache.
const maxCachedPatterns = 512

var (
	patternMu    sync.Mutex
	patternCache = make(map[string]*regexp.Regexp)
)

// compile returns the case-insensitive regexp for pattern, or nil when the
// pattern is invalid. Invalid patterns never match.
func compile(pattern string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := patternCache[pattern]; ok {
		return re
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = nil
	}
	if len(patternCache) >= maxCachedPatterns {
		clear(patternCache)
	}
	patternCache[pattern] = re
	return re
}

// Matcher reports whether a key matches any of a set of patterns.
type Matcher struct {
	res []*regexp.Regexp
}

// NewMatcher compiles patterns. Invalid patterns are skipped.
func NewMatcher(patterns ...string) Matcher {
	res := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if re := compile(p); re != nil {
			res = append(res, re)
		}
	}
	return Matcher{res: res}
}

// Match reports whether key matches any pattern.
func (m Matcher) Match(key string) bool {
	for _, re := range m.res {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// LiteralKey escapes s so it matches itself as a pattern.
func LiteralKey(s string) string {
	return regexp.QuoteMeta(s)
}

// LiteralKeys escapes each key.
func LiteralKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, LiteralKey(k))
	}
	return out
}

// TargetKeys builds "<target>_<key>" patterns with each key escaped.
func TargetKeys(target model.Target, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, LiteralKey(target.Slug(k)))
	}
	return out
}

// TargetGroup builds a pattern matching every key of the target's group.
func TargetGroup(target model.Target) string {
	return LiteralKey(string(target)) + "_(.*)"
}
