package validation

import (
	"regexp"
	"strings"
	"sync"
)

// emailPattern is the body of the address check; the no-leading-dot and
// no-consecutive-dots rules are tested separately since RE2 has no lookahead.
var emailPattern = regexp.MustCompile(`^[a-z0-9_'+\-.]*[a-z0-9_+-]@([a-z0-9][a-z0-9-]*\.)+[a-z]{2,}$`)

// IsEmail reports whether s is a syntactically valid address. Matching is
// case-insensitive on the whole string.
func IsEmail(s string) bool {
	lowered := strings.ToLower(s)
	if strings.HasPrefix(lowered, ".") || strings.Contains(lowered, "..") {
		return false
	}
	return emailPattern.MatchString(lowered)
}

var (
	patternMu    sync.Mutex
	patternCache = make(map[string]*regexp.Regexp)
)

func matchPattern(pattern, s string) bool {
	patternMu.Lock()
	re, ok := patternCache[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			patternMu.Unlock()
			return false
		}
		patternCache[pattern] = re
	}
	patternMu.Unlock()
	return re.MatchString(s)
}
