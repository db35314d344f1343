package subject

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/thenoetrevino/syllabus/internal/models"
)

const (
	subjectIDTag  = "subject_id"
	subjectIDText = "{0} may only contain letters, digits, '-', '_' and '.'"
)

var subjectIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// newValidator builds a validator that reports fields by their json names
// with english messages
func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(subjectIDTag, func(fl validator.FieldLevel) bool {
		return subjectIDRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterTranslation(subjectIDTag, translator,
		func(t ut.Translator) error { return t.Add(subjectIDTag, subjectIDText, false) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(subjectIDTag, fe.Field())
			return s
		},
	)

	return validate, translator
}

// validateSubject checks struct tags and wraps failures in ErrInvalidSubject
func (s *service) validateSubject(subj models.Subject) error {
	err := s.validate.Struct(subj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSubject, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(s.translator))
	}
	return fmt.Errorf("%w %s: %s", ErrInvalidSubject, subj.ID, strings.Join(msgs, "; "))
}
