package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Unit-тесты словарей строк: поиск по ключу, фолбэки, нормализация кода.

func TestBundle_KnownKeys(t *testing.T) {
	t.Parallel()

	b := MustBundle()

	require.Equal(t, "Please fill in all fields", b.T("en", "settings.fill_all_fields"))
	require.Equal(t, "Por favor completa todos los campos", b.T("es", "settings.fill_all_fields"))
}

func TestBundle_FallbackToEnglish(t *testing.T) {
	t.Parallel()

	b := MustBundle()

	// Неподдерживаемый язык нормализуется к фолбэку.
	require.Equal(t, "Invalid username or password", b.T("de", "settings.invalid_credentials"))
}

func TestBundle_UnknownKeyReturnsKey(t *testing.T) {
	t.Parallel()

	b := MustBundle()
	require.Equal(t, "no.such.key", b.T("en", "no.such.key"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"es", "es"},
		{"es-MX", "es"},
		{"EN", "en"},
		{"fr", "en"},
		{"", "en"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, Normalize(tc.in), "lang %q", tc.in)
	}
}
