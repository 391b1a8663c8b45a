package jsonfile

import (
	"context"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/customer"
	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/metrics"
)

// CustomerStoreName は顧客ストアの名前
const CustomerStoreName = "customers"

type customerRecord struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type CustomerRepository struct {
	c *Collection[customerRecord]
}

func NewCustomerRepository(path string, m *metrics.Metrics) *CustomerRepository {
	return &CustomerRepository{c: Open[customerRecord](CustomerStoreName, path, m, checkCustomerRecord)}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return r.c.Mutate(func(items map[string]customerRecord) error {
		if _, ok := items[c.ID]; ok {
			return customer.ErrCustomerAlreadyExists
		}
		items[c.ID] = toCustomerRecord(c)
		return nil
	})
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	rec, ok := r.c.Get(id)
	if !ok {
		return nil, customer.ErrCustomerNotFound
	}
	return toCustomerEntity(id, rec), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	keys := r.c.Keys()
	out := make([]*customer.Customer, 0, len(keys))
	for _, k := range keys {
		if rec, ok := r.c.Get(k); ok {
			out = append(out, toCustomerEntity(k, rec))
		}
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return r.c.Mutate(func(items map[string]customerRecord) error {
		if _, ok := items[c.ID]; !ok {
			return customer.ErrCustomerNotFound
		}
		items[c.ID] = toCustomerRecord(c)
		return nil
	})
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	return r.c.Mutate(func(items map[string]customerRecord) error {
		if _, ok := items[id]; !ok {
			return customer.ErrCustomerNotFound
		}
		delete(items, id)
		return nil
	})
}

func toCustomerRecord(c *customer.Customer) customerRecord {
	return customerRecord{CustomerID: c.ID, Name: c.Name, Email: c.Email}
}

func toCustomerEntity(key string, rec customerRecord) *customer.Customer {
	return &customer.Customer{ID: key, Name: rec.Name, Email: rec.Email}
}

func checkCustomerRecord(key string, rec customerRecord) error {
	return toCustomerEntity(key, rec).Validate()
}
