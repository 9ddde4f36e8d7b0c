package state

import "github.com/mvoronina/charhub/internal/models"

// CharactersState — партиция состояния персонажей.
type CharactersState struct {
	// Characters — объединённый список загруженных страниц.
	Characters []models.Character
	// Favorites — набор id избранных персонажей (каждый id не более одного раза).
	Favorites []int
}

// MergeMode — режим слияния свежезагруженной страницы со списком.
type MergeMode int

const (
	// MergeReplace — список заменяется целиком. Нулевое значение:
	// действие без явного режима ведёт себя как замена.
	MergeReplace MergeMode = iota
	// MergeAppend — новые элементы дописываются после существующих,
	// без дедупликации (источник отдаёт непересекающиеся id по страницам).
	MergeAppend
)

// SetCharacters — слияние загруженной страницы персонажей в партицию.
// Связь «страница — режим» фиксируется на уровне query-слоя:
// первая страница — MergeReplace, последующие — MergeAppend.
type SetCharacters struct {
	Characters []models.Character
	Mode       MergeMode
}

// ToggleCharacterFavorite переключает членство персонажа в избранном.
type ToggleCharacterFavorite struct {
	ID int
}

// LoadCharacterFavorites — гидратация избранного из долговременного
// хранилища; заменяет набор целиком. Наблюдатели диспетчера это действие
// не сопоставляют, поэтому гидратация не пишет обратно в хранилище.
type LoadCharacterFavorites struct {
	IDs []int
}

func (SetCharacters) isAction()           {}
func (ToggleCharacterFavorite) isAction() {}
func (LoadCharacterFavorites) isAction()  {}

func reduceCharacters(s CharactersState, a Action) CharactersState {
	switch a := a.(type) {
	case SetCharacters:
		if a.Mode == MergeAppend {
			merged := make([]models.Character, 0, len(s.Characters)+len(a.Characters))
			merged = append(merged, s.Characters...)
			merged = append(merged, a.Characters...)
			s.Characters = merged
		} else {
			s.Characters = a.Characters
		}
	case ToggleCharacterFavorite:
		s.Favorites = toggleID(s.Favorites, a.ID)
	case LoadCharacterFavorites:
		s.Favorites = cloneIDs(a.IDs)
	}

	return s
}
