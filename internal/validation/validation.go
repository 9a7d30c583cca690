// Package validation リクエストの入力値チェック。
//
// ハンドラーから任意で呼び出す前段チェックで、リポジトリは検証済みかどうかに依存しない。
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError 1フィールド分のエラー
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors 検証エラーの一覧
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator struct タグ（validate:"..."）に基づく検証器
type Validator struct {
	validate *validator.Validate
}

// New notblank（空白だけの文字列を拒否）を登録した検証器を作成
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーのフィールド名を json タグ名にする
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// Struct リクエストを検証し、失敗時は *Errors を返す
func (v *Validator) Struct(req any) error {
	if req == nil || (reflect.ValueOf(req).Kind() == reflect.Pointer && reflect.ValueOf(req).IsNil()) {
		return &Errors{Fields: []FieldError{{Field: "body", Message: "リクエストが空です"}}}
	}

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("検証処理に失敗: %w", err)
	}

	out := &Errors{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "必須です"
	case "notblank":
		return "空白だけの値は指定できません"
	case "gt":
		return fmt.Sprintf("%sより大きい値を指定してください", fe.Param())
	case "url":
		return "URLの形式が正しくありません"
	default:
		return fmt.Sprintf("%s の条件を満たしていません", fe.Tag())
	}
}
