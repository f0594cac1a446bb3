package poll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/pkg/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store)
}

func TestCreateAndActive(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos", "Curry"})
	require.NoError(t, err)

	active, err := svc.Active(42)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "p1", active.PollID)
	assert.Equal(t, []string{"Tacos", "Curry"}, active.Options)
}

func TestCreateRejectsNoOptions(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, nil)
	assert.Error(t, err)
}

func TestActiveNilWhenNoPoll(t *testing.T) {
	svc := newTestService(t)

	active, err := svc.Active(42)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestChatForPoll(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos"})
	require.NoError(t, err)

	chatID, err := svc.ChatForPoll("p1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), chatID)

	_, err = svc.ChatForPoll("unknown")
	assert.Error(t, err)
}

func TestRecordVoteAndResults(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos", "Curry"})
	require.NoError(t, err)

	require.NoError(t, svc.RecordVote(42, "p1", "u1", "Curry"))
	require.NoError(t, svc.RecordVote(42, "p1", "u2", "Curry"))
	require.NoError(t, svc.RecordVote(42, "p1", "u3", "Tacos"))

	results, winner, err := svc.Results(42, "p1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Tacos": 1, "Curry": 2}, results)
	assert.Equal(t, "Curry", winner)
}

func TestRecordVoteRejectsUnknownOption(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos"})
	require.NoError(t, err)

	assert.Error(t, svc.RecordVote(42, "p1", "u1", "Pizza"))
}

func TestRevotingReplacesVote(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos", "Curry"})
	require.NoError(t, err)

	require.NoError(t, svc.RecordVote(42, "p1", "u1", "Tacos"))
	require.NoError(t, svc.RecordVote(42, "p1", "u1", "Curry"))

	results, _, err := svc.Results(42, "p1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Tacos": 0, "Curry": 1}, results)
}

func TestTieGoesToFirstListedOption(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos", "Curry"})
	require.NoError(t, err)

	require.NoError(t, svc.RecordVote(42, "p1", "u1", "Curry"))
	require.NoError(t, svc.RecordVote(42, "p1", "u2", "Tacos"))

	_, winner, err := svc.Results(42, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tacos", winner)
}

func TestEndClearsActivePoll(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(42, "p1", 100, []string{"Tacos"})
	require.NoError(t, err)

	require.NoError(t, svc.End(42, "p1", "Tacos"))

	active, err := svc.Active(42)
	require.NoError(t, err)
	assert.Nil(t, active)
}
