package server

import "path"

// originMatcher reports whether an Origin header matches one of patterns.
// A "*" matches any run of characters other than "/", so
// "chrome-extension://*" accepts every extension ID and
// "http://localhost:*" accepts every port.
func originMatcher(patterns []string) func(origin string) bool {
	return func(origin string) bool {
		if origin == "" {
			return false
		}
		for _, p := range patterns {
			if ok, err := path.Match(p, origin); err == nil && ok {
				return true
			}
		}
		return false
	}
}
