package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/erp/backoffice/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"golang.org/x/text/language"
)

var (
	setupOnce  sync.Once
	setupErr   error
	translator *ut.UniversalTranslator
)

// SetupValidator names fields by their json or form tag and registers the
// English messages of gin's validator. Safe to call repeatedly.
func SetupValidator() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		enTrans, _ := uni.GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, enTrans); err != nil {
			setupErr = err
			return
		}
		translator = uni
	})
	return setupErr
}

// TranslateValidationErrors renders binding errors in the first supported
// language of the Accept-Language header, falling back to English
func TranslateValidationErrors(err error, acceptLanguage string) []dto.ValidationDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.ValidationDetail{{Field: "", Message: "Malformed request parameters"}}
	}

	trans := findTranslator(acceptLanguage)
	details := make([]dto.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Error()
		if trans != nil {
			msg = fe.Translate(trans)
		}
		details = append(details, dto.ValidationDetail{Field: fe.Field(), Message: msg})
	}
	return details
}

// HandleValidationError writes a 400 response for a failed binding
func HandleValidationError(c *gin.Context, err error) {
	details := TranslateValidationErrors(err, c.GetHeader("Accept-Language"))
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
		"Request validation failed",
		GetRequestID(c),
		details,
	))
}

func findTranslator(acceptLanguage string) ut.Translator {
	if translator == nil {
		return nil
	}
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	locales := make([]string, 0, len(tags))
	for _, tag := range tags {
		base, _ := tag.Base()
		locales = append(locales, base.String())
	}
	trans, _ := translator.FindTranslator(locales...)
	return trans
}
