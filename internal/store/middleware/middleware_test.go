package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mvoronina/charhub/internal/models"
	"github.com/mvoronina/charhub/internal/state"
	"github.com/mvoronina/charhub/internal/storage"
	"github.com/mvoronina/charhub/internal/store"
	"github.com/mvoronina/charhub/mocks"
)

// Файл unit-тестов наблюдателей персистентности.
//
// Покрываем контракт каждого наблюдателя:
//  - Favorites:
//      * действие-непереключение не трогает хранилище;
//      * переключение пишет ровно один раз пост-коммитный набор как JSON;
//      * переключение новостей пишет набор новостной партиции под тем же ключом;
//  - Session:
//      * Login пишет сериализованного пользователя и "true";
//      * Logout удаляет пользователя и пишет "false";
//  - Language — сырой код из действия, без сериализации;
//  - ошибки хранилища гасятся, действие возвращается как есть.

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFavorites_NonToggleNeverWrites(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)
	// Ожиданий нет: любое обращение к kv провалит тест.

	s := store.New(state.RootState{}, Favorites(kv, discardLogger()))

	s.Dispatch(state.SetNews{Posts: []models.Post{{ID: 1}}})
	s.Dispatch(state.SetNewsSearchQuery{Query: "q"})
	s.Dispatch(state.LoadCharacterFavorites{IDs: []int{1, 2}})
	s.Dispatch(state.Login{User: models.User{ID: 1}})
}

func TestFavorites_ToggleWritesPostToggleSetOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)

	gomock.InOrder(
		kv.EXPECT().
			Set(gomock.Any(), storage.KeyFavorites, "[1]").
			Return(nil),
		kv.EXPECT().
			Set(gomock.Any(), storage.KeyFavorites, "[]").
			Return(nil),
	)

	s := store.New(state.RootState{}, Favorites(kv, discardLogger()))

	s.Dispatch(state.ToggleCharacterFavorite{ID: 1})
	s.Dispatch(state.ToggleCharacterFavorite{ID: 1})
}

func TestFavorites_NewsToggleWritesNewsPartition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)

	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), storage.KeyFavorites, "[5]").Return(nil),
		kv.EXPECT().Set(gomock.Any(), storage.KeyFavorites, "[5,7]").Return(nil),
	)

	s := store.New(state.RootState{}, Favorites(kv, discardLogger()))

	s.Dispatch(state.ToggleNewsFavorite{ID: 5})
	s.Dispatch(state.ToggleNewsFavorite{ID: 7})
}

func TestFavorites_StorageErrorSwallowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().
		Set(gomock.Any(), storage.KeyFavorites, gomock.Any()).
		Return(errors.New("storage down"))

	s := store.New(state.RootState{}, Favorites(kv, discardLogger()))

	a := state.ToggleCharacterFavorite{ID: 1}
	res := s.Dispatch(a)

	// Ошибка записи не доходит до диспетчера; переход состоялся.
	require.Equal(t, state.Action(a), res)
	require.Equal(t, []int{1}, s.State().Characters.Favorites)
}

func TestSession_LoginWritesUserAndFlag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := models.User{
		ID:        9,
		FirstName: "Jerry",
		Login:     models.Credentials{Username: "jerry", Password: "wubba"},
	}

	wantJSON, err := json.Marshal(&user)
	require.NoError(t, err)

	kv := mocks.NewMockKV(ctrl)
	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), storage.KeyUser, string(wantJSON)).Return(nil),
		kv.EXPECT().Set(gomock.Any(), storage.KeyAuthenticated, "true").Return(nil),
	)

	s := store.New(state.RootState{}, Session(kv, discardLogger()))
	s.Dispatch(state.Login{User: user})
}

func TestSession_LogoutRemovesUserAndClearsFlag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)
	gomock.InOrder(
		kv.EXPECT().Remove(gomock.Any(), storage.KeyUser).Return(nil),
		kv.EXPECT().Set(gomock.Any(), storage.KeyAuthenticated, "false").Return(nil),
	)

	s := store.New(state.RootState{}, Session(kv, discardLogger()))
	s.Dispatch(state.Logout{})
}

func TestLanguage_WritesRawCodeFromAction(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().Set(gomock.Any(), storage.KeyLanguage, "en").Return(nil)

	s := store.New(state.RootState{}, Language(kv, discardLogger()))
	s.Dispatch(state.SetLanguage{Code: "en"})
}

func TestMiddlewares_HydrationActionsNotMatched(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mocks.NewMockKV(ctrl)
	// Гидратация не должна эхо-записывать обратно в хранилище.

	s := store.New(state.RootState{},
		Favorites(kv, discardLogger()),
		Session(kv, discardLogger()),
		Language(kv, discardLogger()),
	)

	s.Dispatch(state.LoadCharacterFavorites{IDs: []int{1}})
	s.Dispatch(state.LoadNewsFavorites{IDs: []int{1}})
	s.Dispatch(state.RestoreSession{Language: "en", User: &models.User{ID: 1}, Authenticated: true})
}
