package customer

import (
	"fmt"

	"github.com/sanosuguru/go-hotel-reservation/internal/pkg/validation"
)

// Customer は顧客エンティティを表す
type Customer struct {
	ID    string `validate:"required"`
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// NewCustomer は新しい顧客を作成する
func NewCustomer(id, name, email string) *Customer {
	return &Customer{ID: id, Name: name, Email: email}
}

var fieldErrors = validation.FieldErrors{
	"ID":             ErrCustomerIDRequired,
	"Name":           ErrNameRequired,
	"Email.required": ErrEmailRequired,
	"Email.email":    ErrInvalidEmail,
}

// Validate は顧客の検証を行う
func (c *Customer) Validate() error {
	return validation.Struct(c, fieldErrors)
}

// Describe は表示用の文字列を返す
func (c *Customer) Describe() string {
	return fmt.Sprintf("Customer ID: %s\nName: %s\nEmail: %s", c.ID, c.Name, c.Email)
}
