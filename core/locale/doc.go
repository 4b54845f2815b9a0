// Package locale holds the process-wide UI locale state.
//
// A Store is a thread-safe current-locale cell with a fixed set of supported
// languages. Incoming codes are normalized to their two-letter base form
// ("en-US" becomes "en") before validation, so values originating from
// browser settings or backend profiles are interchangeable.
//
// The store is the single point the session transport reads the
// Accept-Language value from, and the single point the language-preference
// syncer writes to.
package locale
