package browser

import (
	"regexp"

	"golang.org/x/net/idna"
)

// domainPattern matches one or more dot-separated labels followed by an
// alphabetic or punycode top-level label.
var domainPattern = regexp.MustCompile(`(?i)^([a-z0-9]+(-+[a-z0-9]+)*\.)+([a-z]{2,}|xn--[a-z0-9]+(-[a-z0-9]+)*)$`)

// IsValidDomain reports whether hostname is syntactically a valid domain.
// localhost is accepted; IP addresses are not. Internationalized names are
// checked in their ASCII lookup form. No network access is performed.
func IsValidDomain(hostname string) bool {
	if hostname == "localhost" {
		return true
	}

	ascii, err := idna.Lookup.ToASCII(hostname)
	if err != nil {
		return false
	}
	return domainPattern.MatchString(ascii)
}
