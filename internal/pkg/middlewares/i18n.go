package middlewares

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"roadwatch.dev/backend/internal/constant"
	"roadwatch.dev/backend/internal/util/i18n"
)

// InjectI18n picks the validation message translator from Accept-Language.
func InjectI18n() fiber.Handler {
	return func(c *fiber.Ctx) error {
		set := func(trans ut.Translator) error {
			c.Locals(constant.ContextKeyTranslator, trans)
			return c.Next()
		}

		tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
		if err != nil {
			return set(i18n.UT.GetFallback())
		}

		langs := make([]string, 0, len(tags)*2)
		for _, tag := range tags {
			langs = append(langs, strings.ReplaceAll(strings.ToLower(tag.String()), "-", "_"))
			// it_ch and friends fall back to their base language
			if base, conf := tag.Base(); conf != language.No {
				langs = append(langs, base.String())
			}
		}

		trans, _ := i18n.UT.FindTranslator(langs...)

		return set(trans)
	}
}
