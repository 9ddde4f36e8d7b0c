package state

import "github.com/mvoronina/charhub/internal/models"

// UsersState — партиция состояния пользователей.
type UsersState struct {
	// Users — замоканный список пользователей; каждая загрузка
	// заменяет его целиком.
	Users []models.User
}

// SetUsers — полная замена списка пользователей.
type SetUsers struct {
	Users []models.User
}

func (SetUsers) isAction() {}

func reduceUsers(s UsersState, a Action) UsersState {
	if a, ok := a.(SetUsers); ok {
		s.Users = a.Users
	}

	return s
}
