//go:build unit

package sessions_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"booking-wizard/internal/infra"
	"booking-wizard/internal/infra/sessions"
	"booking-wizard/internal/pkg/clock"
	"booking-wizard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeEpoch = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func newStoreFixture(ttl time.Duration) (*sessions.Store, *clock.MockClock) {
	clk := clock.NewMockClock(storeEpoch)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sessions.NewStore(clk, ttl, logger), clk
}

func TestStoreAddAndFind(t *testing.T) {
	store, clk := newStoreFixture(30 * time.Minute)

	session := shared.NewSession(clk.Now())
	store.Add(session)

	found, err := store.Find(session.ID())
	require.NoError(t, err)
	assert.Same(t, session, found)
	assert.Equal(t, 1, store.Len())
}

func TestStoreFindUnknownID(t *testing.T) {
	store, _ := newStoreFixture(30 * time.Minute)

	_, err := store.Find(uuid.New())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestStoreFindExpiredSessionRemovesIt(t *testing.T) {
	store, clk := newStoreFixture(30 * time.Minute)

	session := shared.NewSession(clk.Now())
	store.Add(session)

	clk.Add(31 * time.Minute)

	_, err := store.Find(session.ID())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, 0, store.Len(), "expired session should be evicted on access")
}

func TestStoreTouchExtendsLifetime(t *testing.T) {
	store, clk := newStoreFixture(30 * time.Minute)

	session := shared.NewSession(clk.Now())
	store.Add(session)

	clk.Add(20 * time.Minute)
	session.Touch(clk.Now())
	clk.Add(20 * time.Minute)

	found, err := store.Find(session.ID())
	require.NoError(t, err, "touched session should survive past the original deadline")
	assert.Same(t, session, found)
}

func TestStoreRemoveExpired(t *testing.T) {
	store, clk := newStoreFixture(30 * time.Minute)

	stale1 := shared.NewSession(clk.Now())
	stale2 := shared.NewSession(clk.Now())
	store.Add(stale1)
	store.Add(stale2)

	clk.Add(20 * time.Minute)
	fresh := shared.NewSession(clk.Now())
	store.Add(fresh)

	clk.Add(15 * time.Minute)

	assert.Equal(t, 2, store.RemoveExpired())
	assert.Equal(t, 1, store.Len())

	_, err := store.Find(fresh.ID())
	assert.NoError(t, err)

	assert.Equal(t, 0, store.RemoveExpired(), "second sweep finds nothing")
}

func TestStoreRemove(t *testing.T) {
	store, clk := newStoreFixture(30 * time.Minute)

	session := shared.NewSession(clk.Now())
	store.Add(session)
	store.Remove(session.ID())

	_, err := store.Find(session.ID())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, 0, store.Len())
}
