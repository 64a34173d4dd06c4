package cookiestore

import "errors"

var (
	ErrNilJar                     = errors.New("cookiestore.nil_jar")
	ErrSameSiteNoneRequiresSecure = errors.New("cookiestore.same_site_none_requires_secure")
	ErrInvalidSameSite            = errors.New("cookiestore.invalid_same_site")
)
