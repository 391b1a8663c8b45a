package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"
)

type sample struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Count int    `validate:"gt=0"`
}

var (
	errNameRequired  = apperr.New(apperr.ErrInvalidInput, "名前は必須です")
	errEmailRequired = apperr.New(apperr.ErrInvalidInput, "メールアドレスは必須です")
	errInvalidEmail  = apperr.New(apperr.ErrInvalidInput, "メールアドレスの形式が不正です")
)

var sampleErrors = FieldErrors{
	"Name":           errNameRequired,
	"Email.required": errEmailRequired,
	"Email.email":    errInvalidEmail,
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      sample
		wantErr error
	}{
		{"正常", sample{Name: "a", Email: "a@example.com", Count: 1}, nil},
		{"名前未指定", sample{Email: "a@example.com", Count: 1}, errNameRequired},
		{"メール未指定", sample{Name: "a", Count: 1}, errEmailRequired},
		{"メール形式不正", sample{Name: "a", Email: "not-an-email", Count: 1}, errInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in, sampleErrors)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStruct_UnmappedField(t *testing.T) {
	err := Struct(sample{Name: "a", Email: "a@example.com", Count: 0}, sampleErrors)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Count")
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct("plain string", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}
