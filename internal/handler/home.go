package handler

import (
	"net/http"

	"github.com/osse101/GudGuns_Go/internal/logger"
)

const (
	homeLoggedIn = `
            <h1>GudGuns App</h1>
            <ul>
                <li><a href="/memberships">View Memberships</a></li>
                <li><a href="/inventory">View Inventory</a></li>
                <li><a href="/inventory/view">Browse Weapons</a></li>
                <li><a href="/logout">Logout</a></li>
            </ul>
        `
	homeLoggedOut = `<a href="/login">Login with Bungie</a>`
)

// HandleHome renders the landing fragment
// @Summary Landing page
// @Tags pages
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func HandleHome(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Load(r)
		if err != nil {
			// The landing page still works without session storage
			logger.FromContext(r.Context()).Error(LogMsgSessionLoadFailed, "error", err)
		}

		if s.Authenticated() {
			respondHTML(w, http.StatusOK, []byte(homeLoggedIn))
			return
		}
		respondHTML(w, http.StatusOK, []byte(homeLoggedOut))
	}
}
