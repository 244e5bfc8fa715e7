package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// UserDTO is the public view of an account. Exactly one of the embedded
// detail blocks is set, matching UserType; its fields are flattened into the
// JSON object.
type UserDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Avatar          string          `json:"avatar"`
	UserType        models.UserType `json:"user_type"`
	CreatedAt       time.Time       `json:"created_at"`
	Description     string          `json:"description,omitempty"`
	Location        string          `json:"location,omitempty"`
	ProfileComplete bool            `json:"profile_complete"`

	*FreelancerDetails
	*ClientDetails
}

type FreelancerDetails struct {
	Title         string              `json:"title"`
	Skills        []string            `json:"skills"`
	HourlyRate    float64             `json:"hourly_rate"`
	Rating        float64             `json:"rating"`
	JobsCompleted int                 `json:"jobs_completed"`
	Availability  models.Availability `json:"availability"`
	Portfolio     []PortfolioItemDTO  `json:"portfolio"`
}

type ClientDetails struct {
	Company    string  `json:"company"`
	Industry   string  `json:"industry"`
	JobsPosted int     `json:"jobs_posted"`
	Website    *string `json:"website,omitempty"`
}

type PortfolioItemDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link,omitempty"`
}

// ToUserDTO converts a user and whichever profile was preloaded.
func ToUserDTO(user models.User) UserDTO {
	out := UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		UserType:  user.UserType,
		CreatedAt: user.CreatedAt,
	}

	switch {
	case user.IsFreelancer() && user.FreelancerProfile != nil:
		p := user.FreelancerProfile
		portfolio := make([]PortfolioItemDTO, 0, len(p.Portfolio))
		for _, item := range p.Portfolio {
			portfolio = append(portfolio, PortfolioItemDTO{
				ID:          item.ID,
				Title:       item.Title,
				Description: item.Description,
				ImageURL:    item.ImageURL,
				Link:        item.Link,
			})
		}
		skills := p.Skills
		if skills == nil {
			skills = []string{}
		}
		out.Description = p.Description
		out.Location = p.Location
		out.ProfileComplete = p.Title != ""
		out.FreelancerDetails = &FreelancerDetails{
			Title:         p.Title,
			Skills:        skills,
			HourlyRate:    p.HourlyRate,
			Rating:        p.Rating,
			JobsCompleted: p.JobsCompleted,
			Availability:  p.Availability,
			Portfolio:     portfolio,
		}
	case user.IsClient() && user.ClientProfile != nil:
		p := user.ClientProfile
		out.Description = p.Description
		out.Location = p.Location
		out.ProfileComplete = p.Company != ""
		out.ClientDetails = &ClientDetails{
			Company:    p.Company,
			Industry:   p.Industry,
			JobsPosted: p.JobsPosted,
			Website:    p.Website,
		}
	}

	return out
}

// ToUserDTOs converts users in order.
func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

// UserSummaryDTO is the minimal identity shown next to messages and projects
type UserSummaryDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Avatar   string          `json:"avatar"`
	UserType models.UserType `json:"user_type"`
}

func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:       user.ID,
		Name:     user.Name,
		Avatar:   user.Avatar,
		UserType: user.UserType,
	}
}
