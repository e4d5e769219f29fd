package domain

import "time"

const QuoteStatusNew = "new"

type Quote struct {
	QuoteID     string    `json:"id"`
	EventType   string    `json:"event_type,omitempty"`
	Services    []string  `json:"services"`
	EventDate   string    `json:"event_date,omitempty"`
	GuestCount  string    `json:"guest_count,omitempty"`
	Budget      string    `json:"budget,omitempty"`
	Location    string    `json:"location,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created"`
}

type QuoteInput struct {
	EventType   string   `json:"event_type" validate:"omitempty,oneof=wedding corporate private festival other"`
	Services    []string `json:"services" validate:"dive,oneof=dj production organization technical mapping media"`
	EventDate   string   `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	GuestCount  string   `json:"guest_count" validate:"max=50"`
	Budget      string   `json:"budget" validate:"omitempty,oneof=1000-5000 5000-10000 10000-25000 25000+ discuss"`
	Location    string   `json:"location" validate:"max=200"`
	Name        string   `json:"name" validate:"required,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"max=50"`
	Company     string   `json:"company" validate:"max=200"`
	Description string   `json:"description" validate:"max=5000"`
}
