package corpus

import (
	"net/url"
	"strings"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// NormalizeProtected lowercases and deduplicates protected identifiers,
// reducing hostnames and URLs to their registrable label
// ("https://login.paypal.com/x" -> "paypal").
func NormalizeProtected(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if strings.Contains(s, ".") || strings.Contains(s, "://") {
			if label, ok := registrableLabel(s); ok {
				s = label
			}
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// registrableLabel returns the label left of the public suffix.
func registrableLabel(s string) (string, bool) {
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	domain, err := publicsuffix.Domain(u.Hostname())
	if err != nil {
		return "", false
	}
	label, _, _ := strings.Cut(domain, ".")
	return label, label != ""
}
