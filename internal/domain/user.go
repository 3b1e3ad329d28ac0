package domain

import "time"

const RoleUser = "USER"

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Roles        []string  `json:"roles"`
	Enabled      bool      `json:"enabled"`
	CreatedOn    time.Time `json:"created_on"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Principal is the already-authenticated identity a request acts as.
// Every service operation takes it explicitly; nothing reads it from
// ambient state.
type Principal struct {
	ID    int32
	Roles []string
}
