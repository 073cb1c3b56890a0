package service

import (
	"net/http"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/jrmeyers92/client-portals/internal/errors"
	"github.com/jrmeyers92/client-portals/internal/storage"

	"github.com/go-playground/validator/v10"
)

// Branding defaults applied when the request leaves a color empty
const (
	DefaultPrimaryColor   = "#6366f1"
	DefaultSecondaryColor = "#8b5cf6"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// AllowedLogoTypes lists the MIME types accepted for organization logos
var AllowedLogoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// OnboardingRequest is the raw onboarding payload as received from the caller
type OnboardingRequest struct {
	OrganizationName string         `json:"organizationName" form:"organizationName" validate:"required,min=2"`
	Slug             string         `json:"slug" form:"slug" validate:"required,min=3,max=50,slug"`
	OwnerEmail       string         `json:"ownerEmail" form:"ownerEmail" validate:"required,email"`
	OwnerName        string         `json:"ownerName,omitempty" form:"ownerName" validate:"omitempty,min=2"`
	PrimaryColor     string         `json:"primaryColor,omitempty" form:"primaryColor" validate:"omitempty,hexcolor6"`
	SecondaryColor   string         `json:"secondaryColor,omitempty" form:"secondaryColor" validate:"omitempty,hexcolor6"`
	EmailFromName    string         `json:"emailFromName,omitempty" form:"emailFromName" validate:"omitempty,min=2"`
	Logo             *storage.Asset `json:"-" form:"-" validate:"-"`
}

// ValidatedOnboarding is an OnboardingRequest that passed validation, with defaults applied
type ValidatedOnboarding struct {
	OrganizationName string
	Slug             string
	OwnerEmail       string
	OwnerName        *string
	PrimaryColor     string
	SecondaryColor   string
	EmailFromName    string
	Logo             *storage.Asset
}

// violationMessages maps "field.tag" to the message shown for that failure
var violationMessages = map[string]string{
	"organizationName.required": "Organization name is required",
	"organizationName.min":      "Organization name is required",
	"slug.required":             "Slug must be at least 3 characters",
	"slug.min":                  "Slug must be at least 3 characters",
	"slug.max":                  "Slug must be at most 50 characters",
	"slug.slug":                 "Slug can only contain lowercase letters, numbers, and hyphens",
	"ownerEmail.required":       "Must be a valid email address",
	"ownerEmail.email":          "Must be a valid email address",
	"ownerName.min":             "Owner name is required",
	"primaryColor.hexcolor6":    "Must be a valid hex color",
	"secondaryColor.hexcolor6":  "Must be a valid hex color",
	"emailFromName.min":         "Email from name is required",
}

// OnboardingValidator checks onboarding requests and slugs
type OnboardingValidator struct {
	validate     *validator.Validate
	maxLogoBytes int64
}

// NewOnboardingValidator registers the onboarding rules on v
func NewOnboardingValidator(v *validator.Validate, maxLogoBytes int64) *OnboardingValidator {
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorPattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if maxLogoBytes <= 0 {
		maxLogoBytes = 5 * 1024 * 1024
	}
	return &OnboardingValidator{validate: v, maxLogoBytes: maxLogoBytes}
}

// ValidateOnboarding collects every violation in one pass and returns them as
// apperrors.ValidationErrors. On success the defaults are applied.
func (v *OnboardingValidator) ValidateOnboarding(req *OnboardingRequest) (*ValidatedOnboarding, error) {
	if req == nil {
		return nil, apperrors.ValidationErrors{{Field: "request", Message: "Request body is required"}}
	}

	var violations apperrors.ValidationErrors
	if err := v.validate.Struct(req); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		for _, fe := range fieldErrs {
			violations = append(violations, apperrors.ValidationError{
				Field:   fe.Field(),
				Message: violationMessage(fe.Field(), fe.Tag()),
			})
		}
	}
	var logo *storage.Asset
	if req.Logo != nil {
		copied := *req.Logo
		logo = &copied
		violations = append(violations, v.validateLogo(logo)...)
	}
	if len(violations) > 0 {
		return nil, violations
	}

	out := &ValidatedOnboarding{
		OrganizationName: req.OrganizationName,
		Slug:             req.Slug,
		OwnerEmail:       req.OwnerEmail,
		PrimaryColor:     req.PrimaryColor,
		SecondaryColor:   req.SecondaryColor,
		EmailFromName:    req.EmailFromName,
		Logo:             logo,
	}
	if req.OwnerName != "" {
		name := req.OwnerName
		out.OwnerName = &name
	}
	if out.PrimaryColor == "" {
		out.PrimaryColor = DefaultPrimaryColor
	}
	if out.SecondaryColor == "" {
		out.SecondaryColor = DefaultSecondaryColor
	}
	if out.EmailFromName == "" {
		out.EmailFromName = req.OrganizationName
	}
	return out, nil
}

// ValidateSlug applies the slug rules on their own
func (v *OnboardingValidator) ValidateSlug(slug string) error {
	if err := v.validate.Var(slug, "required,min=3,max=50,slug"); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok || len(fieldErrs) == 0 {
			return err
		}
		return apperrors.ValidationErrors{{Field: "slug", Message: violationMessage("slug", fieldErrs[0].Tag())}}
	}
	return nil
}

// validateLogo checks size and type on a copy of the asset, measuring the payload itself
// and filling in a sniffed content type when none was declared
func (v *OnboardingValidator) validateLogo(logo *storage.Asset) apperrors.ValidationErrors {
	var violations apperrors.ValidationErrors

	size := int64(len(logo.Data))
	if logo.Size != 0 && logo.Size != size {
		violations = append(violations, apperrors.ValidationError{Field: "logo", Message: "Logo size does not match its content"})
	}
	logo.Size = size
	if size == 0 {
		violations = append(violations, apperrors.ValidationError{Field: "logo", Message: "Logo file is empty"})
	} else if size > v.maxLogoBytes {
		violations = append(violations, apperrors.ValidationError{Field: "logo", Message: apperrors.ErrFileTooLarge.Error()})
	}

	contentType := logo.ContentType
	if contentType == "" && len(logo.Data) > 0 {
		contentType = http.DetectContentType(logo.Data)
		logo.ContentType = contentType
	}
	if !AllowedLogoTypes[contentType] {
		violations = append(violations, apperrors.ValidationError{Field: "logo", Message: apperrors.ErrInvalidFileType.Error()})
	}
	return violations
}

func violationMessage(field, tag string) string {
	if msg, ok := violationMessages[field+"."+tag]; ok {
		return msg
	}
	return "failed on the '" + tag + "' rule"
}
