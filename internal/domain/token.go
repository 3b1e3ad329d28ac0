package domain

import "time"

// Token is a one-shot account activation token mailed to a new user.
type Token struct {
	ID          int32
	UserID      int32
	Token       string
	CreatedOn   time.Time
	ExpiresOn   time.Time
	ValidatedOn *time.Time
}

func (t *Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresOn)
}
