package models

type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityPartTime     Availability = "part-time"
	AvailabilityNotAvailable Availability = "not-available"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityPartTime, AvailabilityNotAvailable:
		return true
	}
	return false
}

type FreelancerProfile struct {
	UserID        string       `gorm:"primarykey;type:varchar(64)" json:"user_id"`
	Title         string       `gorm:"type:varchar(255)" json:"title"`
	Skills        []string     `gorm:"serializer:json;type:text" json:"skills"`
	HourlyRate    float64      `gorm:"not null;default:0" json:"hourly_rate"`
	Rating        float64      `gorm:"not null;default:0" json:"rating"`
	JobsCompleted int          `gorm:"not null;default:0" json:"jobs_completed"`
	Availability  Availability `gorm:"type:varchar(20);not null" json:"availability"`
	Description   string       `gorm:"type:text" json:"description"`
	Location      string       `gorm:"type:varchar(255)" json:"location"`

	// Relations
	Portfolio []PortfolioItem `gorm:"foreignKey:FreelancerID" json:"portfolio,omitempty"`
}

type PortfolioItem struct {
	ID           string `gorm:"primarykey;type:varchar(64)" json:"id"`
	FreelancerID string `gorm:"type:varchar(64);not null;index" json:"-"`
	Title        string `gorm:"type:varchar(255);not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `gorm:"type:varchar(512)" json:"image_url"`
	Link         string `gorm:"type:varchar(512)" json:"link,omitempty"`
}
