// Package mediaapi provides typed wrappers over the tournament media
// endpoints: public browsing of approved VODs and clips, caster uploads,
// bulk import from Twitch, moderation decisions, and broadcast consent.
//
// Moderation and import requests are validated client-side so an incomplete
// form never reaches the backend.
package mediaapi
