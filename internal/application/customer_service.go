package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/logger"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

const customerStore = "customers"

type CustomerService struct {
	customerRepo customer.Repository
	metrics      *metrics.Metrics
}

func NewCustomerService(cr customer.Repository, m *metrics.Metrics) *CustomerService {
	return &CustomerService{customerRepo: cr, metrics: m}
}

type CreateCustomerInput struct {
	ID    string
	Name  string
	Email string
}

func (s *CustomerService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*customer.Customer, error) {
	c := customer.NewCustomer(input.ID, input.Name, input.Email)
	err := c.Validate()
	if err == nil {
		err = s.customerRepo.Create(ctx, c)
	}
	s.metrics.ObserveOperation(customerStore, "create", err)
	if err != nil {
		return nil, err
	}
	logger.Info("顧客を登録", zap.String("customer_id", c.ID))
	return c, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	return s.customerRepo.List(ctx)
}

// UpdateCustomerInput は部分更新の入力。nil のフィールドは変更しない
type UpdateCustomerInput struct {
	ID    string
	Name  *string
	Email *string
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*customer.Customer, error) {
	c, err := s.update(ctx, input)
	s.metrics.ObserveOperation(customerStore, "update", err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) update(ctx context.Context, input UpdateCustomerInput) (*customer.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = *input.Email
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) error {
	err := s.customerRepo.Delete(ctx, id)
	s.metrics.ObserveOperation(customerStore, "delete", err)
	if err != nil {
		return err
	}
	logger.Info("顧客を削除", zap.String("customer_id", id))
	return nil
}

// DescribeCustomer は表示用の文字列を返す
func (s *CustomerService) DescribeCustomer(ctx context.Context, id string) (string, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Describe(), nil
}
