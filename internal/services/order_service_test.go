package services

import (
	"context"
	"testing"

	"ecompro/internal/models"
	"ecompro/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePublisher records published order events.
type fakePublisher struct {
	events []map[string]interface{}
	err    error
}

func (p *fakePublisher) PublishOrderCreated(orderData map[string]interface{}) error {
	p.events = append(p.events, orderData)
	return p.err
}

// failingOrderRepo rejects every create.
type failingOrderRepo struct {
	*repositories.MockOrderRepository
}

func (r *failingOrderRepo) Create(order *models.Order) error {
	return assert.AnError
}

func TestOrderService_MaterializeOrder(t *testing.T) {
	store := repositories.NewMemoryCartStore()
	orderRepo := repositories.NewMockOrderRepository()
	publisher := &fakePublisher{}
	svc := NewOrderService(orderRepo, store, publisher, nil)

	discount := int64(2500)
	seedCart(t, store, "owner-1",
		models.CartItem{ProductID: "p1", Name: "Tee", Price: 1000, Quantity: 2, Size: "M", Color: "red"},
		models.CartItem{ProductID: "p2", Name: "Coat", Price: 3000, DiscountPrice: &discount, Quantity: 1},
	)

	order, err := svc.MaterializeOrder(context.Background(), "owner-1", "pay_123")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "owner-1", order.OwnerID)
	assert.Equal(t, "pending", order.Status)
	require.NotNil(t, order.PaymentRef)
	assert.Equal(t, "pay_123", *order.PaymentRef)
	assert.Equal(t, int64(1000*2+2500), order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, int64(1000), order.Items[0].UnitAmountPaid)
	assert.Equal(t, "M", order.Items[0].Size)
	assert.Equal(t, int64(2500), order.Items[1].UnitAmountPaid, "discounted line freezes the discount price")

	// Order is durable and the cart is gone.
	persisted, err := orderRepo.GetByPaymentRef("pay_123")
	require.NoError(t, err)
	assert.Equal(t, order.ID, persisted.ID)
	cart, err := store.Get(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Nil(t, cart)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, order.ID, publisher.events[0]["orderID"])
}

func TestOrderService_MaterializeOrder_EmptyCartNoOp(t *testing.T) {
	store := repositories.NewMemoryCartStore()
	orderRepo := repositories.NewMockOrderRepository()
	svc := NewOrderService(orderRepo, store, nil, nil)

	// The common double-invocation: the first call already cleared the cart,
	// the second finds nothing and must not create a second order.
	for i := 0; i < 2; i++ {
		order, err := svc.MaterializeOrder(context.Background(), "owner-1", "")
		require.NoError(t, err)
		assert.Nil(t, order)
	}

	orders, err := orderRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_MaterializeOrder_NoRefOrdersNeverCollide(t *testing.T) {
	store := repositories.NewMemoryCartStore()
	orderRepo := repositories.NewMockOrderRepository()
	svc := NewOrderService(orderRepo, store, nil, nil)

	// Two consecutive materializations without a payment ref must yield two
	// orders: an absent ref is not an idempotency key.
	seedCart(t, store, "owner-1",
		models.CartItem{ProductID: "p1", Name: "Tee", Price: 1000, Quantity: 1},
	)
	first, err := svc.MaterializeOrder(context.Background(), "owner-1", "")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Nil(t, first.PaymentRef)

	seedCart(t, store, "owner-2",
		models.CartItem{ProductID: "p2", Name: "Hat", Price: 500, Quantity: 1},
	)
	second, err := svc.MaterializeOrder(context.Background(), "owner-2", "")
	require.NoError(t, err)
	require.NotNil(t, second)

	orders, err := orderRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	// Both carts were cleared.
	for _, owner := range []string{"owner-1", "owner-2"} {
		cart, getErr := store.Get(context.Background(), owner)
		require.NoError(t, getErr)
		assert.Nil(t, cart)
	}
}

func TestOrderService_MaterializeOrder_DuplicatePaymentRefNoOp(t *testing.T) {
	store := repositories.NewMemoryCartStore()
	orderRepo := repositories.NewMockOrderRepository()
	svc := NewOrderService(orderRepo, store, nil, nil)

	seedCart(t, store, "owner-1",
		models.CartItem{ProductID: "p1", Name: "Tee", Price: 1000, Quantity: 1},
	)
	first, err := svc.MaterializeOrder(context.Background(), "owner-1", "pay_123")
	require.NoError(t, err)
	require.NotNil(t, first)

	// Redelivered payment event: cart re-populated in the meantime must not
	// matter, the payment ref already has its order.
	seedCart(t, store, "owner-1",
		models.CartItem{ProductID: "p2", Name: "Hat", Price: 500, Quantity: 1},
	)
	second, err := svc.MaterializeOrder(context.Background(), "owner-1", "pay_123")
	require.NoError(t, err)
	assert.Nil(t, second)

	orders, err := orderRepo.GetAll()
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	// The new cart survives the no-op.
	cart, err := store.Get(context.Background(), "owner-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)
}

func TestOrderService_MaterializeOrder_StoreReadFailureIsHard(t *testing.T) {
	store := &flakyCartStore{MemoryCartStore: repositories.NewMemoryCartStore(), failGets: 100}
	orderRepo := repositories.NewMockOrderRepository()
	svc := NewOrderService(orderRepo, store, nil, nil)

	// An unreadable cart must not be mistaken for an empty one.
	_, err := svc.MaterializeOrder(context.Background(), "owner-1", "pay_123")
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)

	orders, listErr := orderRepo.GetAll()
	require.NoError(t, listErr)
	assert.Empty(t, orders)
}

func TestOrderService_MaterializeOrder_CreateFailureKeepsCart(t *testing.T) {
	store := repositories.NewMemoryCartStore()
	orderRepo := &failingOrderRepo{repositories.NewMockOrderRepository()}
	publisher := &fakePublisher{}
	svc := NewOrderService(orderRepo, store, publisher, nil)

	seedCart(t, store, "owner-1",
		models.CartItem{ProductID: "p1", Name: "Tee", Price: 1000, Quantity: 1},
	)

	_, err := svc.MaterializeOrder(context.Background(), "owner-1", "pay_123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOrderPersistence)

	// Cart intact, no event published.
	cart, getErr := store.Get(context.Background(), "owner-1")
	require.NoError(t, getErr)
	require.NotNil(t, cart)
	assert.Len(t, cart.Items, 1)
	assert.Empty(t, publisher.events)
}

func TestOrderService_MaterializeOrder_PublishFailureIsBestEffort(t *testing.T) {
	store := repositories.NewMemoryCartStore()
	orderRepo := repositories.NewMockOrderRepository()
	publisher := &fakePublisher{err: assert.AnError}
	svc := NewOrderService(orderRepo, store, publisher, nil)

	seedCart(t, store, "owner-1",
		models.CartItem{ProductID: "p1", Name: "Tee", Price: 1000, Quantity: 1},
	)

	order, err := svc.MaterializeOrder(context.Background(), "owner-1", "pay_123")
	require.NoError(t, err, "a broker failure never fails materialization")
	require.NotNil(t, order)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	svc := NewOrderService(orderRepo, repositories.NewMemoryCartStore(), nil, nil)

	order := &models.Order{OwnerID: "owner-1", Status: "pending", TotalAmount: 100}
	require.NoError(t, orderRepo.Create(order))

	require.NoError(t, svc.UpdateOrderStatus(order.ID, "shipped"))
	updated, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Status)

	assert.Error(t, svc.UpdateOrderStatus(order.ID, "teleported"))
	assert.Error(t, svc.UpdateOrderStatus("missing", "shipped"))
}

func TestOrderService_GetDashboardStats(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	svc := NewOrderService(orderRepo, repositories.NewMemoryCartStore(), nil, nil)

	require.NoError(t, orderRepo.Create(&models.Order{OwnerID: "owner-1", Status: "pending", TotalAmount: 1500}))
	require.NoError(t, orderRepo.Create(&models.Order{OwnerID: "owner-2", Status: "pending", TotalAmount: 500}))

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(2000), stats.TotalRevenue)
	assert.Len(t, stats.RecentOrders, 2)
}
