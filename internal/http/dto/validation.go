package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"launchloom.app/studio/common"
	"launchloom.app/studio/internal/model"
)

// RegisterValidators adds the custom tags used by the request types to gin's
// validator engine. It must run before the router serves requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	validators := map[string]validator.Func{
		"slug": func(fl validator.FieldLevel) bool {
			return common.IsSlug(fl.Field().String())
		},
		"workspace_role": func(fl validator.FieldLevel) bool {
			return model.WorkspaceRole(fl.Field().String()).IsValid()
		},
		"compliance_status": func(fl validator.FieldLevel) bool {
			return model.ComplianceStatus(fl.Field().String()).IsValid()
		},
		"member_action": func(fl validator.FieldLevel) bool {
			return model.MemberAction(fl.Field().String()).IsValid()
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s validator: %w", tag, err)
		}
	}
	return nil
}

// ValidationMessage renders a bind error as a short client-facing message.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, field+" must be at least "+fe.Param())
		case "max":
			msgs = append(msgs, field+" must be at most "+fe.Param())
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "slug":
			msgs = append(msgs, field+" must be lowercase letters, digits and single hyphens")
		case "workspace_role", "compliance_status", "member_action", "oneof":
			msgs = append(msgs, field+" has an unsupported value")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
