package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Unit-тесты клиента пользователей: разбор списка с учётными данными.

func TestUsersClient_List(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "firstName": "Rick", "lastName": "Sanchez",
			 "email": "rick@example.com", "phone": "+1 555 0100",
			 "login": {"username": "rickc137", "password": "portalgun"}}
		]`))
	}))
	defer srv.Close()

	client, err := NewUsersClient(srv.URL, time.Second, testLogger())
	require.NoError(t, err)

	users, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.Equal(t, "Rick", users[0].FirstName)
	require.Equal(t, "rickc137", users[0].Login.Username)
	require.Equal(t, "portalgun", users[0].Login.Password)
}
