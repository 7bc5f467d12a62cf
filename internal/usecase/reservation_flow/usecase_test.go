package reservation_flow

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	mu    sync.Mutex
	items map[string]*Controller
}

func newMapStore() *mapStore {
	return &mapStore{items: map[string]*Controller{}}
}

func (s *mapStore) Save(c *Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[c.ID()] = c
}

func (s *mapStore) Get(id string) (*Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (s *mapStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func TestUseCase_FullFlow(t *testing.T) {
	env := newTestEnv()
	store := newMapStore()
	uc := NewUseCase(store, env.deps)

	state := uc.Start()
	require.NotEmpty(t, state.ID)
	assert.Equal(t, StepActivityDetails, state.Step)

	id := state.ID
	_, err := uc.SetActivity(id, ActivityRequest{SessionProduct: 20, ParticipantCount: 1})
	require.NoError(t, err)
	_, err = uc.Next(id)
	require.NoError(t, err)
	_, err = uc.SelectDate(context.Background(), id, saturday)
	require.NoError(t, err)
	_, err = uc.SelectTime(id, TimeRequest{StartTime: "10:00"})
	require.NoError(t, err)
	_, err = uc.Next(id)
	require.NoError(t, err)
	_, err = uc.AddParticipant(id, ParticipantRequest{NationalID: "11111111-1", Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	_, err = uc.AddParticipant(id, ParticipantRequest{NationalID: "22222222-2", Name: "Luis", Email: "luis@example.com"})
	assert.ErrorIs(t, err, ErrParticipantLimit)
	_, err = uc.Next(id)
	require.NoError(t, err)
	_, err = uc.Back(id)
	require.NoError(t, err)
	_, err = uc.RemoveParticipant(id, 0)
	require.NoError(t, err)
	_, err = uc.AddParticipant(id, ParticipantRequest{NationalID: "22222222-2", Name: "Luis", Email: "luis@example.com"})
	require.NoError(t, err)
	_, err = uc.Next(id)
	require.NoError(t, err)

	state, err = uc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, StepSubmitted, state.Step)
	assert.Equal(t, "10:40", env.backend.got.BookingTimeEnd)
	assert.Equal(t, "22222222-2", env.backend.got.RutUser)

	got, err := uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.BookingID)
}

func TestUseCase_UnknownDraft(t *testing.T) {
	uc := NewUseCase(newMapStore(), newTestEnv().deps)

	_, err := uc.Get("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = uc.Next("missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)

	_, err = uc.Submit(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestUseCase_AbandonDeletesDraft(t *testing.T) {
	store := newMapStore()
	uc := NewUseCase(store, newTestEnv().deps)

	id := uc.Start().ID
	state, err := uc.Abandon(id)
	require.NoError(t, err)
	assert.Equal(t, StepAbandoned, state.Step)

	_, err = uc.Get(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
