package domain

import "time"

type Participant struct {
	ID               string
	ParticipantEmail string
	ParticipantName  string
	ManagerEmail     string
	Location         string
	EventID          string
	CreatedAt        time.Time
}

type ParticipantInput struct {
	ParticipantEmail string
	ParticipantName  string
	ManagerEmail     string
	Location         string
}
