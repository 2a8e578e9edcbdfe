package validator

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"pusaka-newsletter/internal/content"
	"pusaka-newsletter/internal/domain"
)

var (
	slugRegex        = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validDecisions   = []interface{}{domain.ReviewDecisionApproved, domain.ReviewDecisionRejected}
	validBlogStatus  = []interface{}{domain.BlogStatusDraft, domain.BlogStatusPublished, domain.BlogStatusArchived}
	validContentType = []interface{}{domain.ContentTypeHTML, domain.ContentTypeMarkdown}
)

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleInput validates an article create or update payload.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput) error {
	return toValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.By(notBlank("title_required")),
			validation.RuneLength(0, 500).Error("title_too_long"),
		),
		validation.Field(&in.Content,
			validation.By(notBlank("content_required")),
		),
		validation.Field(&in.Slug,
			validation.Length(0, content.MaxSlugLength).Error("slug_too_long"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.ReadTime,
			validation.Min(0).Error("read_time_negative"),
		),
		validation.Field(&in.MetaTitle,
			validation.NilOrNotEmpty.Error("meta_title_empty"),
			validation.RuneLength(0, 255).Error("meta_title_too_long"),
		),
		validation.Field(&in.MetaDescription,
			validation.RuneLength(0, 500).Error("meta_description_too_long"),
		),
		validation.Field(&in.EditionID,
			is.UUID.Error("invalid_edition_id"),
		),
	))
}

// ValidateReview validates a publisher decision. A rejection needs a note and
// every highlight needs the selected text.
func (v *Validator) ValidateReview(in *domain.ReviewInput) error {
	return toValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Decision,
			validation.Required.Error("decision_required"),
			validation.In(validDecisions...).Error("invalid_decision"),
		),
		validation.Field(&in.Note,
			validation.When(in.Decision == domain.ReviewDecisionRejected,
				validation.By(notBlank("note_required_for_rejection")),
			),
		),
		validation.Field(&in.Highlights,
			validation.Each(validation.By(highlightRule)),
		),
	))
}

// ValidateArticleStatus validates a requested article status.
func (v *Validator) ValidateArticleStatus(status string) error {
	if !domain.IsValidArticleStatus(status) {
		return domain.NewValidationError("status", "invalid_status")
	}
	return nil
}

// ValidateBlogInput validates a blog payload. On create title and content are required.
func (v *Validator) ValidateBlogInput(in *domain.BlogInput, create bool) error {
	return toValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.When(create, validation.Required.Error("title_required")),
			validation.NilOrNotEmpty.Error("title_required"),
			validation.RuneLength(0, 500).Error("title_too_long"),
		),
		validation.Field(&in.Content,
			validation.When(create, validation.Required.Error("content_required")),
			validation.NilOrNotEmpty.Error("content_required"),
		),
		validation.Field(&in.Slug,
			validation.Length(0, content.MaxSlugLength).Error("slug_too_long"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.ContentType,
			validation.In(validContentType...).Error("invalid_content_type"),
		),
		validation.Field(&in.Status,
			validation.In(validBlogStatus...).Error("invalid_status"),
		),
		validation.Field(&in.Tags,
			validation.Each(validation.Required.Error("tag_empty"), validation.RuneLength(0, 50).Error("tag_too_long")),
		),
	))
}

// ValidateEditionInput validates an edition payload.
func (v *Validator) ValidateEditionInput(in *domain.EditionInput) error {
	return toValidationError(validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.By(notBlank("title_required")),
			validation.RuneLength(0, 255).Error("title_too_long"),
		),
		validation.Field(&in.PublishDate,
			validation.Required.Error("publish_date_required"),
		),
		validation.Field(&in.EditionNumber,
			validation.Min(1).Error("edition_number_positive"),
		),
		validation.Field(&in.CoverImages,
			validation.Each(is.URL.Error("invalid_cover_image_url")),
		),
	))
}

// ValidateCheckout validates a plan selection.
func (v *Validator) ValidateCheckout(in *domain.CheckoutRequest) error {
	return toValidationError(validation.ValidateStruct(in,
		validation.Field(&in.PlanID,
			validation.Required.Error("plan_id_required"),
		),
		validation.Field(&in.UserEmail,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
	))
}

func notBlank(code string) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := validation.Indirect(value)
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_"+code, code)
		}
		return nil
	}
}

func highlightRule(value interface{}) error {
	h, ok := value.(domain.Highlight)
	if !ok {
		return nil
	}
	if strings.TrimSpace(h.SelectedText) == "" {
		return validation.NewError("validation_selected_text_required", "selected_text_required")
	}
	return nil
}

// toValidationError converts ozzo validation errors to a domain.ValidationError.
// Errors of slice elements are flattened as field.index.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string)
	flatten("", ve, fields)
	return &domain.ValidationError{Fields: fields}
}

func flatten(prefix string, errs validation.Errors, out map[string]string) {
	for field, fieldErr := range errs {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			flatten(key, nested, out)
			continue
		}
		out[key] = fieldErr.Error()
	}
}
