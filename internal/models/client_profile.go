package models

type ClientProfile struct {
	UserID      string  `gorm:"primarykey;type:varchar(64)" json:"user_id"`
	Company     string  `gorm:"type:varchar(255)" json:"company"`
	Industry    string  `gorm:"type:varchar(255)" json:"industry"`
	JobsPosted  int     `gorm:"not null;default:0" json:"jobs_posted"`
	Description string  `gorm:"type:text" json:"description"`
	Website     *string `gorm:"type:varchar(512)" json:"website,omitempty"`
	Location    string  `gorm:"type:varchar(255)" json:"location"`
}
