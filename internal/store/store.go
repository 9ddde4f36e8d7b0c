// store реализует контейнер состояния с конвейером диспетчеризации.
//
// Редьюсеры (пакет state) остаются чистыми; побочные эффекты подключаются
// наблюдателями (Middleware), которые срабатывают строго после коммита
// перехода. Единственный изменяемый разделяемый ресурс — экземпляр Store;
// внешнего пути мутации, кроме Dispatch, нет.
package store

import (
	"sync"

	"github.com/mvoronina/charhub/internal/state"
)

// Dispatcher — звено конвейера диспетчеризации.
type Dispatcher func(a state.Action) state.Action

// Middleware оборачивает конвейер диспетчеризации. Контракт:
//   - действие передаётся дальше безусловно (никогда не гасится);
//   - инспекция действия и чтение состояния — только после вызова next;
//   - возвращаемое значение — ровно то, что вернул next, без подмены.
type Middleware func(s *Store, next Dispatcher) Dispatcher

// Store — контейнер клиентского состояния.
type Store struct {
	// dispatchMu сериализует весь конвейер: переходы и наблюдатели
	// выполняются в порядке поступления действий.
	dispatchMu sync.Mutex

	stateMu sync.RWMutex
	current state.RootState

	chain Dispatcher
}

// New создаёт контейнер с начальным состоянием и цепочкой наблюдателей.
// Наблюдатели применяются в порядке перечисления: первый видит действие
// раньше остальных.
func New(initial state.RootState, mws ...Middleware) *Store {
	s := &Store{current: initial}

	chain := Dispatcher(s.commit)
	for i := len(mws) - 1; i >= 0; i-- {
		chain = mws[i](s, chain)
	}
	s.chain = chain

	return s
}

// Dispatch проводит действие через конвейер: наблюдатели, коммит перехода,
// снова наблюдатели (их пост-обработка). Возвращает действие как есть.
func (s *Store) Dispatch(a state.Action) state.Action {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	return s.chain(a)
}

// State возвращает снимок текущего состояния. Снимок стабилен:
// редьюсеры не мутируют ранее выданные срезы.
func (s *Store) State() state.RootState {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()

	return s.current
}

// commit — терминальное звено конвейера: применяет чистый переход.
func (s *Store) commit(a state.Action) state.Action {
	s.stateMu.Lock()
	s.current = state.Reduce(s.current, a)
	s.stateMu.Unlock()

	return a
}
