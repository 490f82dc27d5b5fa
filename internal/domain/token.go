package domain

import "time"

// Token is the OAuth token payload held in a user's session. It is passed
// explicitly into handlers that call the platform on the user's behalf.
type Token struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	MembershipID string    `json:"membership_id,omitempty"`

	// Raw is the token response exactly as the platform returned it
	Raw map[string]any `json:"raw,omitempty"`
}

// Valid reports whether the token carries an access token
func (t *Token) Valid() bool {
	return t != nil && t.AccessToken != ""
}

// Membership is one platform account linked to the authenticated user
type Membership struct {
	MembershipType int    `json:"membershipType"`
	MembershipID   string `json:"membershipId"`
	DisplayName    string `json:"displayName"`
}

// Credentials is what a handler needs to act for the signed-in user
type Credentials struct {
	Token      Token
	Membership *Membership
}
