package catalog

import (
	"context"
	"testing"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, seed []model.Product) *Store {
	t.Helper()

	state, err := kv.NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { state.Close() })

	return NewStore(context.Background(), state, seed, zerolog.Nop())
}

func TestStore_Add_PrependsProduct(t *testing.T) {
	store := newTestStore(t, []model.Product{{ID: "1", Name: "First"}})

	store.Add(context.Background(), model.Product{ID: "2", Name: "Second", Stock: 3})

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
	assert.True(t, all[0].InStock)
}

func TestStore_GetByID(t *testing.T) {
	store := newTestStore(t, []model.Product{{ID: "1", Name: "Widget"}})

	p, ok := store.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, "Widget", p.Name)

	_, ok = store.GetByID("nope")
	assert.False(t, ok)
}

func TestStore_Update_MergesPartialFields(t *testing.T) {
	store := newTestStore(t, []model.Product{
		{ID: "1", Name: "Widget", Price: 100, Stock: 5},
	})

	newPrice := 150.0
	store.Update(context.Background(), "1", model.ProductUpdate{Price: &newPrice})

	p, ok := store.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, 150.0, p.Price)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 5, p.Stock)
}

func TestStore_Update_StockRefreshesInStock(t *testing.T) {
	store := newTestStore(t, []model.Product{{ID: "1", Stock: 5}})

	zero := 0
	store.Update(context.Background(), "1", model.ProductUpdate{Stock: &zero})

	p, _ := store.GetByID("1")
	assert.False(t, p.InStock)

	ten := 10
	store.Update(context.Background(), "1", model.ProductUpdate{Stock: &ten})

	p, _ = store.GetByID("1")
	assert.True(t, p.InStock)
}

func TestStore_Update_AbsentID_IsSilentNoOp(t *testing.T) {
	store := newTestStore(t, []model.Product{{ID: "1", Name: "Widget"}})

	name := "Renamed"
	store.Update(context.Background(), "missing", model.ProductUpdate{Name: &name})

	assert.Len(t, store.All(), 1)
	p, _ := store.GetByID("1")
	assert.Equal(t, "Widget", p.Name)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t, []model.Product{{ID: "1"}, {ID: "2"}})

	store.Delete(context.Background(), "1")

	assert.Len(t, store.All(), 1)
	_, ok := store.GetByID("1")
	assert.False(t, ok)

	// Absent id is a silent no-op.
	store.Delete(context.Background(), "1")
	assert.Len(t, store.All(), 1)
}

func TestStore_AddReview_RecomputesRating(t *testing.T) {
	tests := []struct {
		name           string
		ratings        []int
		expectedRating float64
	}{
		{name: "Two reviews", ratings: []int{5, 4}, expectedRating: 4.5},
		{name: "Three reviews", ratings: []int{5, 4, 3}, expectedRating: 4.0},
		{name: "Single review", ratings: []int{3}, expectedRating: 3.0},
		{name: "Rounded to one decimal", ratings: []int{5, 5, 4}, expectedRating: 4.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t, []model.Product{{ID: "1"}})

			for _, r := range tt.ratings {
				store.AddReview(context.Background(), "1", model.Review{
					UserID:   "u1",
					UserName: "Jane",
					Rating:   r,
					Comment:  "ok",
				})
			}

			p, ok := store.GetByID("1")
			require.True(t, ok)
			assert.Equal(t, tt.expectedRating, p.Rating)
			assert.Equal(t, len(tt.ratings), p.ReviewCount)
			assert.Len(t, p.Reviews, len(tt.ratings))
		})
	}
}

func TestStore_AddReview_AbsentProduct_IsSilentNoOp(t *testing.T) {
	store := newTestStore(t, []model.Product{{ID: "1"}})

	store.AddReview(context.Background(), "missing", model.Review{Rating: 5, Comment: "x"})

	p, _ := store.GetByID("1")
	assert.Equal(t, 0, p.ReviewCount)
}

func TestStore_SnapshotSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	state, err := kv.NewFileStore(dir, zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	store := NewStore(ctx, state, []model.Product{{ID: "1", Name: "Widget", Stock: 2}}, zerolog.Nop())

	newPrice := 42.0
	store.Update(ctx, "1", model.ProductUpdate{Price: &newPrice})

	// A fresh store over the same backing state sees the mutation, not the
	// seed data.
	reloaded := NewStore(ctx, state, []model.Product{{ID: "seed-only"}}, zerolog.Nop())
	p, ok := reloaded.GetByID("1")
	require.True(t, ok)
	assert.Equal(t, 42.0, p.Price)
	_, ok = reloaded.GetByID("seed-only")
	assert.False(t, ok)
}

func TestStore_SeedNormalisesInStock(t *testing.T) {
	store := newTestStore(t, []model.Product{
		{ID: "1", Stock: 3, InStock: false},
		{ID: "2", Stock: 0, InStock: true},
	})

	p1, _ := store.GetByID("1")
	p2, _ := store.GetByID("2")
	assert.True(t, p1.InStock)
	assert.False(t, p2.InStock)
}
