package domain

import (
	"time"

	"github.com/google/uuid"
)

type PlayerProfile struct {
	ID        uuid.UUID
	Name      string
	Country   string
	Region    string
	City      string
	CreatedAt time.Time
}
