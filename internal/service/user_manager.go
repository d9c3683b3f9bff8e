package service

import (
	"fsanano/go-shop/internal/model"
	"fsanano/go-shop/internal/validation"
)

// MinUserAge is the youngest age accepted by AddUser.
const MinUserAge = 18

// UserManager owns the registered users. It is not safe for concurrent use.
type UserManager struct {
	users []model.User
}

func NewUserManager() *UserManager {
	return &UserManager{}
}

// AddUser registers a user and reports whether it was accepted. Accepted
// users get the next sequential ID, starting at 1.
func (m *UserManager) AddUser(name, email string, age int) bool {
	if age < MinUserAge {
		return false
	}
	if !validation.IsValidEmail(email) {
		return false
	}

	m.users = append(m.users, model.User{
		ID:    len(m.users) + 1,
		Name:  name,
		Email: email,
		Age:   age,
	})
	return true
}

func (m *UserManager) FindUserByID(id int) (model.User, bool) {
	for _, u := range m.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func (m *UserManager) GetUserCount() int {
	return len(m.users)
}

// Users returns a copy of the registered users in insertion order.
func (m *UserManager) Users() []model.User {
	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out
}
