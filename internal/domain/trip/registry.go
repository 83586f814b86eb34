package trip

import "errors"

var ErrUnknownUser = errors.New("unknown user")

// Registry holds the immutable member roster. It stands in for real
// authentication: a session is just a selected member id.
type Registry struct {
	users []User
	byID  map[string]User
}

func NewRegistry(users []User) *Registry {
	byID := make(map[string]User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return &Registry{users: users, byID: byID}
}

func (r *Registry) List() []User {
	result := make([]User, len(r.users))
	copy(result, r.users)
	return result
}

func (r *Registry) Get(id string) (User, error) {
	user, ok := r.byID[id]
	if !ok {
		return User{}, ErrUnknownUser
	}
	return user, nil
}

func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}
