package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	outerrors "github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/text"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("koanf")
		})

		// max_width bounds the display width of a string field.
		_ = v.RegisterValidation("max_width", func(fl validator.FieldLevel) bool {
			var limit int
			if _, err := fmt.Sscan(fl.Param(), &limit); err != nil {
				return false
			}
			return text.Width(fl.Field().String()) <= limit
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks field values, reporting the first failure as
// CONFIG_INVALID with the offending key.
func Validate(cfg *Config) error {
	if cfg == nil {
		return outerrors.New(outerrors.ErrConfigValid, "configuration is nil")
	}
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		fe := ves[0]
		key := fe.Field()
		return outerrors.Newf(outerrors.ErrConfigValid, "%s: invalid value %v (%s)", key, fe.Value(), rule(fe)).
			WithDetail("key", key).
			WithDetail("value", fe.Value())
	}
	return outerrors.Wrap(err, outerrors.ErrConfigValid, "invalid configuration")
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
