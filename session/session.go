// Package session persists the site cookie and user agent used to authenticate catalog requests.
package session

// Store holds the credentials a scraper attaches to every request.
// Obtaining the cookie in the first place is left to the user (see `kino session set`).
type Store interface {
	Cookie() (string, bool)
	UserAgent() (string, bool)
	SetCookie(cookie string) error
	SetUserAgent(ua string) error
	// Clear forgets every stored credential. It is called when the site reports a logged-out page.
	Clear()
}
