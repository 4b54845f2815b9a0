// Package langsync keeps three views of the user's language preference
// consistent: the UI locale state, the in-memory identity's preferred
// language, and the backend profile field.
//
// Changes apply optimistically: the UI locale switches immediately, then the
// new preference is persisted for authenticated users. If persistence fails
// the UI locale rolls back to its prior value, so the visible locale is
// always either the requested value or the pre-change one, never a corrupted
// intermediate.
//
// When a user becomes known after startup, their stored preference is applied
// at most once per user ID, which prevents a change-detection loop when the
// user object is re-fetched for unrelated reasons.
package langsync
