package core_test

import (
	"testing"

	"github.com/kairoslang/lexcore/core"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_UpsertAndGet(t *testing.T) {
	s := core.NewCatalogStore()
	it := validItem("w1")
	require.NoError(t, s.Upsert(it))

	got, err := s.Get("w1")
	require.NoError(t, err)
	require.Equal(t, it, got)

	_, err = s.Get("missing")
	require.ErrorIs(t, err, core.ErrItemNotFound)
}

func TestCatalogStore_UpsertRejectsInvalid(t *testing.T) {
	s := core.NewCatalogStore()
	bad := validItem("w1")
	bad.IRT.A = -1
	require.ErrorIs(t, s.Upsert(bad), core.ErrInvalidItem)
}

func TestMasteryStore_GetOrCreate(t *testing.T) {
	s := core.NewMasteryStore()
	rec := s.GetOrCreate("learner1", "w1")
	require.Equal(t, 0, rec.Stage)

	rec.Stage = 2
	s.Put("learner1", "w1", rec)

	again := s.GetOrCreate("learner1", "w1")
	require.Equal(t, 2, again.Stage, "GetOrCreate must not recreate an existing record")
}

func TestMasteryStore_ForLearner(t *testing.T) {
	s := core.NewMasteryStore()
	s.Put("l1", "a", core.MasteryRecord{Stage: 1})
	s.Put("l1", "b", core.MasteryRecord{Stage: 2})
	s.Put("l2", "a", core.MasteryRecord{Stage: 3})

	got := s.ForLearner("l1")
	require.Len(t, got, 2)
	require.Equal(t, 1, got["a"].Stage)
	require.Equal(t, 2, got["b"].Stage)
}

func TestResponseRing_EvictsOldest(t *testing.T) {
	r := core.NewResponseRing(2)
	r.Push("l1", core.Response{Task: "t1"})
	r.Push("l1", core.Response{Task: "t2"})
	r.Push("l1", core.Response{Task: "t3"})

	win := r.Window("l1")
	require.Len(t, win, 2)
	require.Equal(t, "t2", win[0].Task)
	require.Equal(t, "t3", win[1].Task)
}
