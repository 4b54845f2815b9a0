// Package tournamentapi provides typed wrappers over the tournament
// endpoints: public browsing (lists, standings, participants), registration
// and check-in, and game result submission.
//
// Result submission validates the placement set client-side before the
// request goes out: every placement must be unique and within the lobby
// bounds, so an obviously broken form never reaches the backend.
package tournamentapi
