package user

import (
	entity "github.com/acharyaarish/Inventory-Management/model/entity"
)

// Roster holds the fixed set of login accounts, injected at bootstrap.
// Accounts are never added, removed, or persisted during a run.
type Roster struct {
	users []entity.User
}

func NewRoster(users []entity.User) *Roster {
	return &Roster{users: users}
}

// Find resolves an account by exact, case-sensitive username and credential
// match. It reports only found/not-found; callers must not reveal which of
// the two fields mismatched.
func (r *Roster) Find(username, credential string) (*entity.User, bool) {
	for i := range r.users {
		u := &r.users[i]
		if u.Username == username && u.Credential == credential {
			return u, true
		}
	}
	return nil, false
}
