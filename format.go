package cookiestore

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	sameSiteStrict = "Strict"
	sameSiteLax    = "Lax"
	sameSiteNone   = "None"
)

// sameSiteString maps an http.SameSite mode to the literal attribute casing
// browsers expect. Default and unknown modes produce no attribute.
func sameSiteString(sameSite http.SameSite) string {
	switch sameSite {
	case http.SameSiteStrictMode:
		return sameSiteStrict
	case http.SameSiteLaxMode:
		return sameSiteLax
	case http.SameSiteNoneMode:
		return sameSiteNone
	default:
		return ""
	}
}

// parseSameSite converts a configuration string to an http.SameSite mode.
func parseSameSite(s string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

// format builds the exact wire string for one entry. The write itself does
// not happen here; callers hand the result to Jar.WriteOne only on a nil
// error, so a validation failure never leaves a partial write behind.
func (s *Store) format(key, encoded string, attrs Attributes) (string, error) {
	// SameSite=None entries must travel over secure transport.
	if attrs.SameSite == http.SameSiteNoneMode && !attrs.Secure {
		return "", fmt.Errorf("%w: key %q", ErrSameSiteNoneRequiresSecure, key)
	}

	var b strings.Builder
	b.WriteString(key)
	if encoded != "" {
		b.WriteByte('=')
		b.WriteString(encoded)
	}

	ttl := attrs.TTL
	if ttl == 0 {
		ttl = s.defaultTTL
	}

	var expires time.Time
	switch {
	case ttl < 0:
		// Immediate expiry forces host-side deletion.
		expires = time.Unix(0, 0)
	case ttl > 0:
		// A TTL, explicit or defaulted, wins over any supplied instant.
		expires = s.now().Add(time.Duration(ttl) * time.Second)
	case !attrs.Expires.IsZero():
		expires = attrs.Expires
	case attrs.ExpiresText != "":
		if t, err := http.ParseTime(attrs.ExpiresText); err == nil {
			expires = t
		}
	}
	if !expires.IsZero() {
		b.WriteString("; expires=")
		b.WriteString(expires.UTC().Format(http.TimeFormat))
	}

	if attrs.Path != "" {
		b.WriteString("; path=")
		b.WriteString(attrs.Path)
	}
	if attrs.Domain != "" {
		b.WriteString("; domain=")
		b.WriteString(attrs.Domain)
	}
	if ss := sameSiteString(attrs.SameSite); ss != "" {
		b.WriteString("; SameSite=")
		b.WriteString(ss)
	}
	if attrs.SameSite == http.SameSiteNoneMode || attrs.Secure {
		b.WriteString("; Secure")
	}

	return b.String(), nil
}
