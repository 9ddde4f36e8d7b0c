package state

import "github.com/mvoronina/charhub/internal/models"

// SettingsState — партиция аутентификации и настроек.
//
// Инвариант: IsAuthenticated == (User != nil). Оба поля выставляются
// и сбрасываются одним действием, атомарно.
type SettingsState struct {
	IsAuthenticated bool
	// Language — ISO-код языка интерфейса.
	Language string
	User     *models.User
}

// Login — вход пользователя; выставляет пользователя и флаг атомарно.
type Login struct {
	User models.User
}

// Logout — выход; сбрасывает пользователя и флаг атомарно.
type Logout struct{}

// SetLanguage — полная замена кода языка.
type SetLanguage struct {
	Code string
}

// RestoreSession — гидратация настроек из долговременного хранилища
// при старте сессии. Наблюдатели диспетчера это действие не сопоставляют.
type RestoreSession struct {
	// Language — восстановленный код языка; пустая строка — не трогать.
	Language string
	// User и Authenticated восстанавливаются вместе, атомарно:
	// пользователь применяется только при подтверждённом флаге, иначе
	// обе величины остаются по умолчанию (недописанная сессия).
	User          *models.User
	Authenticated bool
}

func (Login) isAction()          {}
func (Logout) isAction()         {}
func (SetLanguage) isAction()    {}
func (RestoreSession) isAction() {}

func reduceSettings(s SettingsState, a Action) SettingsState {
	switch a := a.(type) {
	case Login:
		u := a.User
		s.IsAuthenticated = true
		s.User = &u
	case Logout:
		s.IsAuthenticated = false
		s.User = nil
	case SetLanguage:
		s.Language = a.Code
	case RestoreSession:
		if a.Language != "" {
			s.Language = a.Language
		}

		// Пара применяется только целиком: пользователь без
		// подтверждённого флага нарушил бы инвариант партиции.
		if a.User != nil && a.Authenticated {
			u := *a.User
			s.User = &u
			s.IsAuthenticated = true
		}
	}

	return s
}
