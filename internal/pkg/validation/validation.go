package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/sanosuguru/go-hotel-reservation/internal/domain/apperr"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldErrors はフィールド名（または "フィールド名.タグ"）からドメインエラーへの対応表
type FieldErrors map[string]error

// Struct は構造体タグに従って検証し、最初に失敗したフィールドのドメインエラーを返す
// 対応表にないフィールドは apperr.ErrInvalidInput 種別のエラーになる
func Struct(s interface{}, fieldErrors FieldErrors) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.New(apperr.ErrInvalidInput, err.Error())
	}
	fe := verrs[0]
	if mapped, ok := fieldErrors[fe.Field()+"."+fe.Tag()]; ok {
		return mapped
	}
	if mapped, ok := fieldErrors[fe.Field()]; ok {
		return mapped
	}
	return apperr.New(apperr.ErrInvalidInput, fmt.Sprintf("%s は %s の条件を満たしていません", fe.Field(), fe.Tag()))
}
