package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/partner"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, email, city string, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, email, city, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) AppendOrder(ctx context.Context, id uuid.UUID, orderID int64) error {
	args := m.Called(ctx, id, orderID)
	return args.Error(0)
}

func newTestCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer("Alice", "alice@example.com", "555-0100", "Springfield")
	require.NoError(t, err)
	return customer
}

func TestCustomerService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		service := NewCustomerService(repo)
		resp, err := service.Register(ctx, RegisterCustomerRequest{
			Name: "Alice", Email: "Alice@Example.com", Phone: "555-0100", City: "Springfield",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Empty(t, resp.Orders)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("ExistsByEmail", ctx, "alice@example.com").Return(true, nil)

		service := NewCustomerService(repo)
		_, err := service.Register(ctx, RegisterCustomerRequest{
			Name: "Alice", Email: "alice@example.com", Phone: "555-0100",
		})
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "ALREADY_EXISTS"))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		_, err := service.Register(ctx, RegisterCustomerRequest{
			Name: "Alice", Email: "not-an-email", Phone: "555-0100",
		})
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_INPUT"))
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates phone and city", func(t *testing.T) {
		customer := newTestCustomer(t)

		repo := new(MockCustomerRepository)
		repo.On("FindByEmail", ctx, "alice@example.com").Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		service := NewCustomerService(repo)
		resp, err := service.Update(ctx, UpdateCustomerRequest{
			Email: "alice@example.com", Phone: "555-0199", City: "Shelbyville",
		})
		require.NoError(t, err)
		assert.Equal(t, "555-0199", resp.Phone)
		assert.Equal(t, "Shelbyville", resp.City)
		repo.AssertExpectations(t)
	})

	t.Run("empty fields leave the customer unchanged", func(t *testing.T) {
		customer := newTestCustomer(t)

		repo := new(MockCustomerRepository)
		repo.On("FindByEmail", ctx, "alice@example.com").Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		service := NewCustomerService(repo)
		resp, err := service.Update(ctx, UpdateCustomerRequest{Email: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "555-0100", resp.Phone)
		assert.Equal(t, "Springfield", resp.City)
	})

	t.Run("unknown email fails with NOT_FOUND", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		service := NewCustomerService(repo)
		_, err := service.Update(ctx, UpdateCustomerRequest{Email: "ghost@example.com", City: "Nowhere"})
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "NOT_FOUND"))
		assert.Contains(t, err.Error(), "ghost@example.com")
	})
}

func TestCustomerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes and returns the removed customer", func(t *testing.T) {
		customer := newTestCustomer(t)

		repo := new(MockCustomerRepository)
		repo.On("FindByEmail", ctx, "alice@example.com").Return(customer, nil)
		repo.On("Delete", ctx, customer.ID).Return(nil)

		service := NewCustomerService(repo)
		resp, err := service.Delete(ctx, "Alice@Example.com")
		require.NoError(t, err)
		assert.Equal(t, customer.ID, resp.ID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email fails with NOT_FOUND", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		service := NewCustomerService(repo)
		_, err := service.Delete(ctx, "ghost@example.com")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "NOT_FOUND"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCustomerService_Search(t *testing.T) {
	ctx := context.Background()
	customer := newTestCustomer(t)

	repo := new(MockCustomerRepository)
	repo.On("Search", ctx, "", "Springfield", mock.AnythingOfType("shared.Filter")).
		Return([]partner.Customer{*customer}, nil)

	service := NewCustomerService(repo)
	result, err := service.Search(ctx, "", "Springfield")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "alice@example.com", result[0].Email)
}
