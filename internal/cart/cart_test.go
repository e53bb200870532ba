package cart

import (
	"path/filepath"
	"testing"

	"golden-thread/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

var (
	jacket   = &domain.Product{ID: 1, Name: "Goldline Bomber Jacket", Price: 189, Image: "jacket.jpg", Sizes: []string{"S", "M", "L", "XL"}}
	hoodie   = &domain.Product{ID: 3, Name: "Mini Explorer Hoodie", Price: 79.99, Image: "hoodie.jpg", Sizes: []string{"2Y", "4Y"}}
	sizeless = &domain.Product{ID: 9, Name: "Gift Card", Price: 50}
)

func TestAdd(t *testing.T) {
	c := New()

	line := c.Add(jacket, "", 1)
	assert.Equal(t, "1:S", line.Key, "empty size falls back to the first size")

	line = c.Add(sizeless, "", 1)
	assert.Equal(t, "9:M", line.Key)

	c.Add(jacket, "S", 2)
	c.Add(jacket, "L", 1)

	require.Len(t, c.Lines, 3)
	assert.Equal(t, 3, c.Lines[0].Qty, "same product and size merges")
	assert.Equal(t, "1:L", c.Lines[2].Key, "new lines are appended")
	assert.Equal(t, 5, c.Count())
}

func TestChangeQtyFloor(t *testing.T) {
	c := New()
	c.Add(hoodie, "4Y", 2)

	assert.True(t, c.ChangeQty("3:4Y", -5))
	assert.Equal(t, 1, c.Lines[0].Qty)

	assert.True(t, c.ChangeQty("3:4Y", 3))
	assert.Equal(t, 4, c.Lines[0].Qty)

	assert.False(t, c.ChangeQty("3:8Y", 1))
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.Add(jacket, "M", 1)
	c.Add(hoodie, "2Y", 1)

	assert.True(t, c.Remove("1:M"))
	assert.False(t, c.Remove("1:M"))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, "3:2Y", c.Lines[0].Key)

	c.Clear()
	assert.True(t, c.Empty())
	assert.Equal(t, domain.Totals{}, c.Totals())
}

func TestTotals(t *testing.T) {
	c := New()
	c.Add(jacket, "M", 2)
	c.Add(hoodie, "2Y", 3)

	// 378 + 239.97 without binary float drift
	assert.Equal(t, domain.Totals{Subtotal: 617.97, Shipping: 15, Total: 632.97}, c.Totals())
}

func TestProperty_TotalIsSubtotalPlusShipping(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("total = subtotal + shipping and count = sum of quantities", prop.ForAll(
		func(qtys []int) bool {
			c := New()
			want := 0
			for i, q := range qtys {
				p := &domain.Product{ID: int64(i%4 + 1), Price: 10.5, Sizes: []string{"M"}}
				c.Add(p, "", q)
				want += q
			}
			totals := c.Totals()

			shippingOK := (c.Empty() && totals.Shipping == 0) || (!c.Empty() && totals.Shipping == domain.ShippingFlat)
			return shippingOK &&
				c.Count() == want &&
				totals.Total == totals.Subtotal+totals.Shipping &&
				len(c.Lines) <= 4
		},
		gen.SliceOf(gen.IntRange(1, 20)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")

	store, err := OpenBoltStore(path)
	require.NoError(t, err)

	empty, err := store.LoadCart()
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	session, err := store.LoadSession()
	require.NoError(t, err)
	assert.False(t, session.SignedIn())

	c := New()
	c.Add(jacket, "M", 2)
	require.NoError(t, store.SaveCart(c))
	require.NoError(t, store.SaveSession(Session{
		Token: "tok",
		User:  &domain.UserProfile{ID: 1, Name: "Ayesha", Email: "ayesha@example.com", Role: domain.RoleUser},
	}))
	require.NoError(t, store.Close())

	// State survives reopening
	store, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.LoadCart()
	require.NoError(t, err)
	assert.Equal(t, c.Lines, loaded.Lines)

	session, err = store.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "tok", session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "Ayesha", session.User.Name)

	require.NoError(t, store.ClearSession())
	session, err = store.LoadSession()
	require.NoError(t, err)
	assert.False(t, session.SignedIn())

	loaded, err = store.LoadCart()
	require.NoError(t, err)
	assert.Len(t, loaded.Lines, 1, "signing out keeps the cart")
}

func TestBoltStore_CorruptCartIsEmpty(t *testing.T) {
	store, err := OpenBoltStore(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	defer store.Close()

	err = store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(keyCart), []byte("{not json"))
	})
	require.NoError(t, err)

	c, err := store.LoadCart()
	require.NoError(t, err)
	assert.True(t, c.Empty())
}
