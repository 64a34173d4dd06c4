// Package cookiestore provides a convenient key/value surface over a
// browser-style cookie string, with expiration helpers, value serialization,
// and bulk operations.
//
// # Overview
//
// The `Store` type is the entry point. It owns no durable state: all entries
// live in an injected `Jar`, an external collaborator exposing the full
// serialized cookie string on read and accepting one formatted entry per
// write. Two jars ship with the package: `RequestJar` binds a Store to an
// HTTP request/response pair, and `MemoryJar` simulates a browser jar with a
// controllable clock for tests.
//
// Once created you can:
//
//   • Set(), Get(), GetOr(), Remember() – write and read single entries
//   • All(), Keys(), Count(), IsEmpty() – enumerate the jar
//   • Has(), HasAny() – truthy existence checks
//   • Remove(), Clear(), Touch() – expire, bulk-expire, and refresh entries
//   • TTL() – set a store-wide default time-to-live
//
// # Values
//
// Entries hold a closed `Value` variant: Null, Bool, Number, String, or
// Structured (compact JSON). Encoding is reversible for every variant;
// literal strings that are not valid JSON survive a round trip unchanged,
// and a value that cannot be serialized degrades silently to Null.
//
// # Expiration
//
// A per-call TTL, or the store-wide default set with TTL(), always overrides
// an explicit expiration instant: the entry expires TTL seconds from now.
// Expiration instants are formatted as RFC-1123 UTC strings; unparseable
// expiration text resolves to no expiration rather than an error.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiestore"
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    store, _ := cookiestore.New(cookiestore.NewRequestJar(w, r))
//
//	    _, _ = store.Set("theme", cookiestore.String("dark"),
//	        cookiestore.WithTTL(3600), cookiestore.WithPath("/"))
//
//	    theme := store.GetOr("theme", cookiestore.String("light"))
//	    _ = theme
//	})
//
// # Configuration
//
// The `Config` struct allows a store to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
//	cfg, _ := cookiestore.LoadConfig()
//	store, _ := cookiestore.NewFromConfig(jar, cfg)
//
// # Error Handling
//
// The only error a write path can raise is `ErrSameSiteNoneRequiresSecure`:
// an entry with SameSite=None must carry the Secure flag, and the check runs
// before anything reaches the jar. Serialization and expiration anomalies
// degrade to benign defaults, and absent keys resolve to a fallback value,
// never an error.
//
// # See Also
//
//   • net/http – SameSite modes and the HTTP date format used for expires.
package cookiestore
