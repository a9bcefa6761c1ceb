package cart

import (
	"context"
	"testing"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/kv"
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPricer is a Pricer backed by a plain map.
type stubPricer map[string]model.Product

func (p stubPricer) GetByID(id string) (model.Product, bool) {
	product, ok := p[id]
	return product, ok
}

func newTestCart(t *testing.T, pricer Pricer) *Store {
	t.Helper()

	state, err := kv.NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { state.Close() })

	return NewStore(context.Background(), "cart:test", pricer, state, zerolog.Nop())
}

func TestStore_Add_IncrementsExistingLine(t *testing.T) {
	pricer := stubPricer{"A": {ID: "A", Price: 100}}
	store := newTestCart(t, pricer)
	ctx := context.Background()

	store.Add(ctx, "A", 2)
	store.Add(ctx, "A", 1)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestStore_Add_DefaultsQuantityToOne(t *testing.T) {
	store := newTestCart(t, stubPricer{})

	store.Add(context.Background(), "A", 0)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestStore_Snapshot_DerivesTotals(t *testing.T) {
	pricer := stubPricer{
		"A": {ID: "A", Price: 100},
		"B": {ID: "B", Price: 49.99},
	}
	store := newTestCart(t, pricer)
	ctx := context.Background()

	store.Add(ctx, "A", 2)
	store.Add(ctx, "B", 3)

	cart := store.Snapshot()
	assert.Equal(t, 349.97, cart.Total)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestStore_Snapshot_ReflectsLiveCatalogPrice(t *testing.T) {
	pricer := stubPricer{"A": {ID: "A", Price: 100}}
	store := newTestCart(t, pricer)
	ctx := context.Background()

	store.Add(ctx, "A", 2)
	cart := store.Snapshot()
	assert.Equal(t, 200.0, cart.Total)
	assert.Equal(t, 2, cart.ItemCount)

	// A catalogue price edit changes the pending cart's total with no
	// further cart action.
	pricer["A"] = model.Product{ID: "A", Price: 150}
	cart = store.Snapshot()
	assert.Equal(t, 300.0, cart.Total)
}

func TestStore_Snapshot_DeletedProductContributesZero(t *testing.T) {
	pricer := stubPricer{
		"A": {ID: "A", Price: 100},
		"B": {ID: "B", Price: 50},
	}
	store := newTestCart(t, pricer)
	ctx := context.Background()

	store.Add(ctx, "A", 1)
	store.Add(ctx, "B", 2)

	delete(pricer, "B")

	cart := store.Snapshot()
	assert.Equal(t, 100.0, cart.Total)
	// The dangling line is still counted, it just prices at zero.
	assert.Equal(t, 3, cart.ItemCount)
	assert.Len(t, cart.Items, 2)
}

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		expectedLen int
		expectedQty int
	}{
		{name: "Positive quantity is set", quantity: 5, expectedLen: 1, expectedQty: 5},
		{name: "Zero removes the line", quantity: 0, expectedLen: 0},
		{name: "Negative removes the line", quantity: -5, expectedLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestCart(t, stubPricer{"A": {ID: "A", Price: 10}})
			ctx := context.Background()

			store.Add(ctx, "A", 2)
			store.UpdateQuantity(ctx, "A", tt.quantity)

			items := store.Items()
			require.Len(t, items, tt.expectedLen)
			if tt.expectedLen > 0 {
				assert.Equal(t, tt.expectedQty, items[0].Quantity)
			}
		})
	}
}

func TestStore_Remove(t *testing.T) {
	store := newTestCart(t, stubPricer{})
	ctx := context.Background()

	store.Add(ctx, "A", 1)
	store.Add(ctx, "B", 1)
	store.Remove(ctx, "A")

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].ProductID)

	// Removing an absent line is a no-op.
	store.Remove(ctx, "A")
	assert.Len(t, store.Items(), 1)
}

func TestStore_Clear(t *testing.T) {
	store := newTestCart(t, stubPricer{})
	ctx := context.Background()

	store.Add(ctx, "A", 2)
	store.Clear(ctx)

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.Snapshot().ItemCount)
}

func TestStore_PersistsItemsNotTotals(t *testing.T) {
	state, err := kv.NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	pricer := stubPricer{"A": {ID: "A", Price: 100}}

	store := NewStore(ctx, "cart:u1", pricer, state, zerolog.Nop())
	store.Add(ctx, "A", 2)

	// Reload with a changed price: the stored items come back, the total is
	// recomputed fresh.
	pricer["A"] = model.Product{ID: "A", Price: 150}
	reloaded := NewStore(ctx, "cart:u1", pricer, state, zerolog.Nop())

	cart := reloaded.Snapshot()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 300.0, cart.Total)
}

func TestManager_SeparatesUsers(t *testing.T) {
	state, err := kv.NewFileStore(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	m := NewManager(stubPricer{}, state, zerolog.Nop())

	m.For(ctx, "alice").Add(ctx, "A", 1)
	m.For(ctx, "bob").Add(ctx, "B", 2)

	assert.Len(t, m.For(ctx, "alice").Items(), 1)
	assert.Len(t, m.For(ctx, "bob").Items(), 1)
	assert.Equal(t, "A", m.For(ctx, "alice").Items()[0].ProductID)

	// Same user gets the same store instance.
	assert.Same(t, m.For(ctx, "alice"), m.For(ctx, "alice"))
}
