package product_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create active product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Margherita", 1250)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, int64(1250), p.Price())
		assert.True(t, p.IsActive())
		require.NoError(t, p.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", 100)
		require.Error(t, err)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		for _, price := range []int64{0, -1, -500} {
			_, err := product.NewProduct(kernel.NewUUID(), "Espresso", price)
			require.Error(t, err)
		}
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, "Espresso", 100)
		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var p product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("nil product should fail validation", func(t *testing.T) {
		var p *product.Product
		require.Error(t, p.Validate())
	})
}

func TestProduct_EnsureOrderable(t *testing.T) {
	t.Run("active product is orderable", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Tiramisu", 800)
		require.NoError(t, err)

		require.NoError(t, p.EnsureOrderable())
	})

	t.Run("inactive product yields distinct condition with product id", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := product.RestoreProduct(id, "Tiramisu", 800, false)
		require.NoError(t, err)

		orderable := p.EnsureOrderable()

		require.Error(t, orderable)
		require.ErrorIs(t, orderable, product.ErrProductInactive)

		var inactiveErr *product.InactiveProductError
		require.ErrorAs(t, orderable, &inactiveErr)
		assert.True(t, inactiveErr.ProductID.IsEqual(id))
	})
}

func TestProduct_ActivationCycle(t *testing.T) {
	t.Run("deactivate then activate restores orderability", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Lasagna", 1500)
		require.NoError(t, err)

		p.Deactivate()
		assert.False(t, p.IsActive())
		require.Error(t, p.EnsureOrderable())

		p.Activate()
		assert.True(t, p.IsActive())
		require.NoError(t, p.EnsureOrderable())
	})
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should reconstruct persisted availability", func(t *testing.T) {
		p, err := product.RestoreProduct(kernel.NewUUID(), "Gnocchi", 1100, false)

		require.NoError(t, err)
		assert.False(t, p.IsActive())
	})
}
