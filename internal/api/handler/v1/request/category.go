package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

var (
	categoryIDExp = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	colorExp      = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

type CategoryRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	BackColor string `json:"backColor"`
}

func (req *CategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ID, validation.Required, validation.Length(1, 64),
			validation.Match(categoryIDExp).Error("must be upper case letters, digits and underscores")),
		validation.Field(&req.Name, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Color, validation.Required, validation.Match(colorExp).Error("must be a #rrggbb color")),
		validation.Field(&req.BackColor, validation.Required, validation.Match(colorExp).Error("must be a #rrggbb color")),
	)
}

func (req *CategoryRequest) ToDomain() domain.Category {
	return domain.Category{
		ID:        req.ID,
		Name:      req.Name,
		Color:     req.Color,
		BackColor: req.BackColor,
	}
}
