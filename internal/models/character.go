// models содержит доменные сущности клиентского ядра.
// Эти типы используются слоями состояния, загрузки и отображения.
package models

import "time"

// CharacterLocation — ссылка на локацию персонажа (происхождение/текущая).
type CharacterLocation struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Character — доменная сущность персонажа.
//
// Особенности:
//   - ID — целочисленный, назначается сервером и стабилен;
//   - сущность неизменяема после загрузки: локально меняется только
//     членство в списке и в наборе избранного.
type Character struct {
	// ID — уникальный идентификатор персонажа.
	ID int `json:"id"`
	// Name — отображаемое имя.
	Name string `json:"name"`
	// Status — статус ("Alive", "Dead", "unknown"; допускается любая строка).
	Status string `json:"status"`
	// Species — вид персонажа.
	Species string `json:"species"`
	// Type — подтип (может быть пустым).
	Type string `json:"type"`
	// Gender — пол ("Female", "Male", "Genderless", "unknown").
	Gender string `json:"gender"`
	// Origin — место происхождения.
	Origin CharacterLocation `json:"origin"`
	// Location — текущая локация.
	Location CharacterLocation `json:"location"`
	// Image — ссылка на изображение.
	Image string `json:"image"`
	// Episode — ссылки на эпизоды с участием персонажа.
	Episode []string `json:"episode"`
	// URL — ссылка на сущность у источника.
	URL string `json:"url"`
	// Created — время создания записи у источника (UTC).
	Created time.Time `json:"created"`
}

// PageInfo — пагинационный конверт источника персонажей.
type PageInfo struct {
	Count int     `json:"count"`
	Pages int     `json:"pages"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

// HasNext сообщает, существует ли следующая страница.
func (p PageInfo) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// CharactersPage — страница персонажей вместе с конвертом пагинации.
type CharactersPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}
