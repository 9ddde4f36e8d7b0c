// state содержит чистые переходы состояния клиентского ядра.
//
// Состояние разбито на независимые партиции (characters/news/users/settings);
// каждая меняется только собственными действиями. Переходы синхронны, тотальны
// и свободны от побочных эффектов: персистентность — забота наблюдателей
// диспетчера (пакет store/middleware).
package state

// Action — помеченное действие над состоянием.
// Набор действий закрыт: реализации живут только в этом пакете.
type Action interface {
	isAction()
}

// RootState — корневая форма клиентского состояния.
// Партиции не читают друг друга; общий доступ — только через эту форму.
type RootState struct {
	Characters CharactersState
	News       NewsState
	Users      UsersState
	Settings   SettingsState
}

// NewRootState возвращает начальное состояние с языком по умолчанию.
func NewRootState(defaultLanguage string) RootState {
	return RootState{
		Settings: SettingsState{Language: defaultLanguage},
	}
}

// Reduce применяет действие к корневому состоянию и возвращает новое.
//
// Инвариант: аргумент не мутируется — все изменённые срезы строятся заново,
// поэтому снимок состояния, выданный наружу, остаётся стабильным.
func Reduce(s RootState, a Action) RootState {
	s.Characters = reduceCharacters(s.Characters, a)
	s.News = reduceNews(s.News, a)
	s.Users = reduceUsers(s.Users, a)
	s.Settings = reduceSettings(s.Settings, a)

	return s
}

// toggleID переключает членство id в наборе избранного.
// Присутствует — удаляется, отсутствует — добавляется в конец.
// Порядок при удалении и повторном добавлении не сохраняется.
func toggleID(ids []int, id int) []int {
	for i, v := range ids {
		if v != id {
			continue
		}

		out := make([]int, 0, len(ids)-1)
		out = append(out, ids[:i]...)
		out = append(out, ids[i+1:]...)

		return out
	}

	out := make([]int, len(ids), len(ids)+1)
	copy(out, ids)

	return append(out, id)
}

func cloneIDs(ids []int) []int {
	if ids == nil {
		return nil
	}

	out := make([]int, len(ids))
	copy(out, ids)

	return out
}
