package domain

type User struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Username       string
	HashedPassword []byte
}

// UserRef is the restricted name-and-id view of a user, the only user
// shape ever embedded in a projected response. No credential fields.
type UserRef struct {
	ID        int64
	FirstName string
	LastName  string
}

func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}
