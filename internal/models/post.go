package models

import "time"

// Post — доменная сущность новости.
//
// Особенности:
//   - Content гарантированно непуст: клиент загрузки подставляет
//     заглушку, если источник вернул пустое поле;
//   - сущность неизменяема после загрузки.
type Post struct {
	// ID — уникальный идентификатор новости.
	ID int `json:"id"`
	// Title — заголовок новости.
	Title string `json:"title"`
	// Content — полный текст новости.
	Content string `json:"content"`
	// Image — ссылка на обложку.
	Image string `json:"image"`
	// Category — категория новости.
	Category string `json:"category"`
	// UserID — автор новости (ссылка на пользователя).
	UserID int `json:"userId"`
	// CreatedAt — время публикации у источника (UTC).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt — время последнего обновления у источника (UTC).
	UpdatedAt time.Time `json:"updatedAt"`
}
