package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/vietanh2810/training-calendar-api/internal/domain"
)

type RegisterParticipantRequest struct {
	ParticipantEmail string `json:"participantEmail"`
	ParticipantName  string `json:"participantName"`
	ManagerEmail     string `json:"managerEmail"`
	Location         string `json:"location"`
}

func (req *RegisterParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParticipantEmail, validation.Required, is.Email),
		validation.Field(&req.ManagerEmail, validation.Required, is.Email),
		validation.Field(&req.Location, validation.Required, validation.By(notBlank)),
	)
}

func (req *RegisterParticipantRequest) ToInput() domain.ParticipantInput {
	return domain.ParticipantInput{
		ParticipantEmail: req.ParticipantEmail,
		ParticipantName:  req.ParticipantName,
		ManagerEmail:     req.ManagerEmail,
		Location:         req.Location,
	}
}
