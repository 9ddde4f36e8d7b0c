// i18n содержит встроенные словари строк интерфейса.
//
// Словари компилируются в бинарь; поиск идёт по ключу вида "раздел.имя"
// с фолбэком на английский и, в последнюю очередь, на сам ключ.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

// Fallback — язык по умолчанию при отсутствии перевода.
const Fallback = "en"

// Supported — поддерживаемые коды языков.
var Supported = []string{"en", "es"}

// Bundle — загруженный набор словарей по кодам языков.
type Bundle struct {
	messages map[string]map[string]string
}

// NewBundle загружает все встроенные словари.
func NewBundle() (*Bundle, error) {
	const op = "i18n.NewBundle"

	messages := make(map[string]map[string]string, len(Supported))

	for _, lang := range Supported {
		raw, err := localesFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var table map[string]string
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("%s: locale %s: %w", op, lang, err)
		}

		messages[lang] = table
	}

	return &Bundle{messages: messages}, nil
}

// MustBundle — обёртка над NewBundle с panic при ошибке.
// Словари встроены, поэтому ошибка возможна только при битом JSON.
func MustBundle() *Bundle {
	b, err := NewBundle()
	if err != nil {
		panic(err)
	}

	return b
}

// T возвращает строку по ключу для языка lang: сначала словарь lang,
// затем фолбэк-язык, затем сам ключ.
func (b *Bundle) T(lang, key string) string {
	if table, ok := b.messages[Normalize(lang)]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}

	if msg, ok := b.messages[Fallback][key]; ok {
		return msg
	}

	return key
}

// Normalize приводит код языка к поддерживаемому: обрезается регион
// ("es-MX" -> "es"), неподдерживаемые коды заменяются фолбэком.
func Normalize(lang string) string {
	code, _, _ := strings.Cut(lang, "-")
	code = strings.ToLower(code)

	if slices.Contains(Supported, code) {
		return code
	}

	return Fallback
}
