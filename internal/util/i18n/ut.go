package i18n

import (
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/it"
	ut "github.com/go-playground/universal-translator"
)

// UT falls back to English; Italian matches the mobile client's language.
var UT = ut.New(en.New(), it.New())
