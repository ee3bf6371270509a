// Package services contains stateless domain services for the item bounded context.
// ValidateCreate is the only write-path rule set: it turns a raw creation
// payload into an ItemDraft or a list of human-readable violations.
package services

import (
	"fmt"

	pkgvalidator "github.com/ghuser/itemmock/pkg/validator"
	"github.com/ghuser/itemmock/services/item/domain/models"
)

// CreateItemRequest is the typed candidate a creation payload is decoded into.
// A nil field was absent from the payload or could not be decoded as its type.
type CreateItemRequest struct {
	Title       *string `json:"title"       validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"required,min=1,max=2000"`
	Price       *int64  `json:"price"       validate:"required,gt=0"`
	SellerID    *int64  `json:"sellerId"    validate:"required,gte=111111,lte=999999"`
} // @name CreateItemRequest

// Field names in the order violations are reported.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPrice       = "price"
	fieldSellerID    = "sellerId"
)

var fieldOrder = []string{fieldTitle, fieldDescription, fieldPrice, fieldSellerID}

// ValidateCreate checks a creation payload and returns the draft to store.
// When violations is non-empty the draft must be ignored. Every applicable
// rule is reported; only an unparsable body stops further checks.
func ValidateCreate(body []byte) (draft models.ItemDraft, violations []string) {
	obj, err := pkgvalidator.DecodeObject(body)
	if err != nil {
		return models.ItemDraft{}, []string{pkgvalidator.ErrNotObject.Error()}
	}

	var req CreateItemRequest
	wrongType := make(map[string]bool, len(fieldOrder))

	var present, ok bool
	if req.Title, present, ok = pkgvalidator.DecodeField[string](obj, fieldTitle); present && !ok {
		wrongType[fieldTitle] = true
	}
	if req.Description, present, ok = pkgvalidator.DecodeField[string](obj, fieldDescription); present && !ok {
		wrongType[fieldDescription] = true
	}
	if req.Price, present, ok = pkgvalidator.DecodeField[int64](obj, fieldPrice); present && !ok {
		wrongType[fieldPrice] = true
	}
	if req.SellerID, present, ok = pkgvalidator.DecodeField[int64](obj, fieldSellerID); present && !ok {
		wrongType[fieldSellerID] = true
	}

	byField := make(map[string]string, len(fieldOrder))
	for field := range wrongType {
		byField[field] = typeMessage(field)
	}
	for _, v := range pkgvalidator.Violations(pkgvalidator.Validate(&req)) {
		// A wrong-typed field is nil and would also fail "required".
		if wrongType[v.Field] {
			continue
		}
		byField[v.Field] = violationMessage(v)
	}

	for _, field := range fieldOrder {
		if msg, bad := byField[field]; bad {
			violations = append(violations, msg)
		}
	}
	if len(violations) > 0 {
		return models.ItemDraft{}, violations
	}

	return models.ItemDraft{
		Title:       *req.Title,
		Description: *req.Description,
		Price:       *req.Price,
		SellerID:    *req.SellerID,
	}, nil
}

func typeMessage(field string) string {
	switch field {
	case fieldTitle, fieldDescription:
		return fmt.Sprintf("%s must be non-empty string", field)
	case fieldPrice:
		return "price must be positive integer"
	case fieldSellerID:
		return fmt.Sprintf("sellerId must be int in range %d-%d", models.MinSellerID, models.MaxSellerID)
	default:
		return fmt.Sprintf("%s has wrong type", field)
	}
}

func violationMessage(v pkgvalidator.Violation) string {
	switch v.Tag {
	case "max":
		return fmt.Sprintf("%s too long (max %s characters)", v.Field, v.Param)
	case "min", "gt", "gte", "lte":
		return typeMessage(v.Field)
	default:
		return pkgvalidator.FormatViolation(v)
	}
}
