package models

// NotificationSettings holds per-user email preferences.
type NotificationSettings struct {
	UserID         string `gorm:"primarykey;type:varchar(64)" json:"-"`
	EmailMessages  bool   `json:"email_messages"`
	EmailProposals bool   `json:"email_proposals"`
	EmailJobs      bool   `json:"email_jobs"`
	EmailPayments  bool   `json:"email_payments"`
	EmailMarketing bool   `json:"email_marketing"`
}

// DefaultNotificationSettings opts a user into everything but marketing.
func DefaultNotificationSettings(userID string) NotificationSettings {
	return NotificationSettings{
		UserID:         userID,
		EmailMessages:  true,
		EmailProposals: true,
		EmailJobs:      true,
		EmailPayments:  true,
	}
}
