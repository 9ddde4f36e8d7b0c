// view содержит чистую логику вычисления видимого набора списков.
//
// Фильтр сохраняет порядок, пересчитывается на каждое изменение входов и
// ничего не кэширует — на списках этого размера мемоизация не нужна.
package view

import (
	"slices"
	"strings"

	"github.com/mvoronina/charhub/internal/models"
)

// VisibleCharacters возвращает видимое подмножество персонажей:
// элемент остаётся, если (режим «только избранное» выключен ИЛИ id в
// избранном) И (запрос пуст ИЛИ имя содержит запрос без учёта регистра).
func VisibleCharacters(items []models.Character, favorites []int, favoritesOnly bool, query string) []models.Character {
	q := normalizeQuery(query)

	out := make([]models.Character, 0, len(items))
	for _, it := range items {
		if favoritesOnly && !slices.Contains(favorites, it.ID) {
			continue
		}

		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}

		out = append(out, it)
	}

	return out
}

// VisiblePosts — то же для новостей; поисковый текст — заголовок и содержимое.
func VisiblePosts(items []models.Post, favorites []int, favoritesOnly bool, query string) []models.Post {
	q := normalizeQuery(query)

	out := make([]models.Post, 0, len(items))
	for _, it := range items {
		if favoritesOnly && !slices.Contains(favorites, it.ID) {
			continue
		}

		if q != "" &&
			!strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.Content), q) {
			continue
		}

		out = append(out, it)
	}

	return out
}

// normalizeQuery приводит запрос к нижнему регистру; запрос из одних
// пробелов считается пустым.
func normalizeQuery(query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}

	return strings.ToLower(query)
}
