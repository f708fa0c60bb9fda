package api

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout 為輸入日期的 day-month-year 格式，日與月可省略前導 0
const DateLayout = "2-1-2006"

// ParseDate 以 DateLayout 解析日期
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// RegisterValidations 註冊自訂驗證規則：
//   - dmy: 字串可被 DateLayout 解析
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("dmy", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
}

// NewValidator 回傳已註冊自訂規則的 validator
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}
