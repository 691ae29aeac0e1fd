package rekuest

import (
	"errors"

	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	itTranslations "github.com/go-playground/validator/v10/translations/it"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"roadwatch.dev/backend/internal/pkg/rwerr"
	"roadwatch.dev/backend/internal/util"
	"roadwatch.dev/backend/internal/util/i18n"
)

func init() {
	entr, _ := i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(util.Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	ittr, _ := i18n.UT.GetTranslator("it")
	if err := itTranslations.RegisterDefaultTranslations(util.Validate, ittr); err != nil {
		log.Warn().Err(err).Str("locale", "it").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// Translate renders every violation in ve with the request's translator.
func Translate(ctx *fiber.Ctx, ve validator.ValidationErrors) []*ErrorResponse {
	tr := TranslatorFromCtx(ctx)
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(tr),
		})
	}
	return trans
}

// ValidBody decodes the request body into dest, which shall always be a pointer to a struct.
// The body is untrusted: anything but a well-formed JSON object is rejected before decoding,
// and dest is then checked against its `validate` tags.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	body := ctx.Body()
	if !gjson.ValidBytes(body) {
		return rwerr.ErrInvalidReq.Msg("invalid request: body is not valid JSON")
	}
	if !gjson.ParseBytes(body).IsObject() {
		return rwerr.ErrInvalidReq.Msg("invalid request: body must be a JSON object")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return rwerr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	if err := util.Validate.Struct(dest); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return rwerr.NewInvalidViolations(Translate(ctx, ve))
		}
		return rwerr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return nil
}
