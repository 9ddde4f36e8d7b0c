package state

import "github.com/mvoronina/charhub/internal/models"

// NewsState — партиция состояния новостей.
type NewsState struct {
	// News — список новостей; каждая загрузка заменяет его целиком.
	News []models.Post
	// Favorites — набор id избранных новостей.
	Favorites []int
	// SearchQuery — текущая строка поиска. Само вычисление фильтра —
	// чистая функция слоя отображения (пакет view).
	SearchQuery string
}

// SetNews — полная замена списка новостей.
type SetNews struct {
	Posts []models.Post
}

// ToggleNewsFavorite переключает членство новости в избранном.
type ToggleNewsFavorite struct {
	ID int
}

// SetNewsSearchQuery — полная замена строки поиска.
type SetNewsSearchQuery struct {
	Query string
}

// LoadNewsFavorites — гидратация избранного новостей из хранилища.
type LoadNewsFavorites struct {
	IDs []int
}

func (SetNews) isAction()            {}
func (ToggleNewsFavorite) isAction() {}
func (SetNewsSearchQuery) isAction() {}
func (LoadNewsFavorites) isAction()  {}

func reduceNews(s NewsState, a Action) NewsState {
	switch a := a.(type) {
	case SetNews:
		s.News = a.Posts
	case ToggleNewsFavorite:
		s.Favorites = toggleID(s.Favorites, a.ID)
	case SetNewsSearchQuery:
		s.SearchQuery = a.Query
	case LoadNewsFavorites:
		s.Favorites = cloneIDs(a.IDs)
	}

	return s
}
