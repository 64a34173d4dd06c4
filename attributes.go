package cookiestore

import (
	"net/http"
	"time"
)

// Attributes are the write-time options of a single entry. They shape the
// formatted string only; none of them can be read back from the jar later.
type Attributes struct {
	// TTL is the number of seconds until expiration. A positive TTL always
	// overrides Expires/ExpiresText. Zero means unset, which lets the
	// store-wide default TTL apply. A negative TTL expires the entry
	// immediately and suppresses the default.
	TTL int
	// Expires is an explicit expiration instant.
	Expires time.Time
	// ExpiresText is an expiration instant given as HTTP date text.
	// Text that does not parse resolves to no expiration.
	ExpiresText string
	// Path restricts the entry to a path scope.
	Path string
	// Domain restricts the entry to a domain scope.
	Domain string
	// SameSite controls cross-site exposure. SameSiteNoneMode requires
	// Secure; the formatter rejects the combination otherwise.
	SameSite http.SameSite
	// Secure restricts the entry to secure transport.
	Secure bool
}

type Attribute func(*Attributes)

func WithTTL(seconds int) Attribute {
	return func(a *Attributes) {
		a.TTL = seconds
	}
}

func WithExpires(t time.Time) Attribute {
	return func(a *Attributes) {
		a.Expires = t
	}
}

func WithExpiresText(text string) Attribute {
	return func(a *Attributes) {
		a.ExpiresText = text
	}
}

func WithPath(path string) Attribute {
	return func(a *Attributes) {
		a.Path = path
	}
}

func WithDomain(domain string) Attribute {
	return func(a *Attributes) {
		a.Domain = domain
	}
}

func WithSameSite(sameSite http.SameSite) Attribute {
	return func(a *Attributes) {
		a.SameSite = sameSite
	}
}

func WithSecure(secure bool) Attribute {
	return func(a *Attributes) {
		a.Secure = secure
	}
}

// applyAttributes creates a new Attributes struct by copying the base
// attributes and applying the provided attribute functions. The base
// attributes are not modified.
func applyAttributes(base Attributes, attrs []Attribute) Attributes {
	// Explicit struct copy ensures base attributes are immutable
	result := Attributes{
		TTL:         base.TTL,
		Expires:     base.Expires,
		ExpiresText: base.ExpiresText,
		Path:        base.Path,
		Domain:      base.Domain,
		SameSite:    base.SameSite,
		Secure:      base.Secure,
	}

	for _, attr := range attrs {
		attr(&result)
	}

	return result
}
