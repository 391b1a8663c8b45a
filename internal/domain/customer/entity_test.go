package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		custName    string
		email       string
		errExpected error
	}{
		{name: "正常な顧客作成", id: "C001", custName: "Alice", email: "alice@mail.com"},
		{name: "顧客ID未指定", id: "", custName: "Alice", email: "alice@mail.com", errExpected: ErrCustomerIDRequired},
		{name: "氏名未指定", id: "C001", custName: "", email: "alice@mail.com", errExpected: ErrNameRequired},
		{name: "メールアドレス未指定", id: "C001", custName: "Alice", email: "", errExpected: ErrEmailRequired},
		{name: "メールアドレス形式不正", id: "C001", custName: "Alice", email: "alice-at-mail", errExpected: ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCustomer(tt.id, tt.custName, tt.email)
			err := c.Validate()
			if tt.errExpected != nil {
				assert.ErrorIs(t, err, tt.errExpected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, c.ID)
			assert.Equal(t, tt.email, c.Email)
		})
	}
}

func TestCustomer_Describe(t *testing.T) {
	c := NewCustomer("C001", "Alice", "alice@mail.com")
	out := c.Describe()
	assert.Contains(t, out, "C001")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "alice@mail.com")
}
