// Package userapi provides typed wrappers over the user profile endpoints:
// profile reads and updates, password changes, and the persisted language
// preference the langsync package mirrors.
//
// The Service satisfies langsync.LanguageAPI.
package userapi
