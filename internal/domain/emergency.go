package domain

import "time"

// EmergencyContact is the single persisted emergency contact per user.
type EmergencyContact struct {
	UserID    string    `gorm:"type:varchar(255);primaryKey" json:"user_id"`
	Contact   string    `gorm:"type:varchar(255);not null" json:"contact"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}

// UpdateEmergencyContactRequest is the request body for setting a contact.
type UpdateEmergencyContactRequest struct {
	// Phone number or email of the emergency contact
	Contact string `json:"contact" validate:"required,max=255" example:"+1-555-0100"`
}

// EmergencyResource is a static entry in the emergency directory.
type EmergencyResource struct {
	Title       string `json:"title" example:"Emergency Services"`
	Description string `json:"description" example:"Life-threatening emergencies"`
	Contact     string `json:"contact,omitempty" example:"911"`
	URL         string `json:"url,omitempty"`
}

// EmergencyResources returns the fixed emergency directory served to clients.
func EmergencyResources() []EmergencyResource {
	return []EmergencyResource{
		{
			Title:       "Emergency Services",
			Description: "Life-threatening emergencies",
			Contact:     "911",
		},
		{
			Title:       "Poison Control",
			Description: "24/7 poison help line",
			Contact:     "1-800-222-1222",
		},
		{
			Title:       "Find Hospitals",
			Description: "Locate nearby hospitals",
			URL:         "https://www.google.com/maps/search/hospitals+near+me",
		},
	}
}
