// Package catalog holds the fixed marketplace data the database is seeded
// with. Every accessor returns a fresh copy so callers may mutate freely.
package catalog

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func atPtr(value string) *time.Time {
	t := at(value)
	return &t
}

func strPtr(s string) *string { return &s }

// Freelancers returns the seeded freelancer accounts with their profiles.
func Freelancers() []models.User {
	return []models.User{
		{
			ID:        "f1",
			Name:      "Sophie Martin",
			Email:     "sophie.martin@example.com",
			Avatar:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
			UserType:  models.UserTypeFreelancer,
			CreatedAt: at("2023-05-10T14:30:00Z"),
			FreelancerProfile: &models.FreelancerProfile{
				UserID:        "f1",
				Title:         "Full Stack Developer",
				Skills:        []string{"React", "Node.js", "TypeScript", "MongoDB"},
				HourlyRate:    45,
				Rating:        4.9,
				JobsCompleted: 47,
				Availability:  models.AvailabilityAvailable,
				Description:   "Experienced full stack developer with 7+ years specializing in React and Node.js applications.",
				Portfolio: []models.PortfolioItem{
					{
						ID:          "p1",
						Title:       "E-commerce Platform",
						Description: "Built a full-featured e-commerce platform with React, Node.js, and MongoDB",
						ImageURL:    "https://images.pexels.com/photos/6956903/pexels-photo-6956903.jpeg",
						Link:        "https://example.com/ecommerce",
					},
					{
						ID:          "p2",
						Title:       "Task Management App",
						Description: "Developed a task management application with real-time collaboration",
						ImageURL:    "https://images.pexels.com/photos/5428836/pexels-photo-5428836.jpeg",
						Link:        "https://example.com/taskapp",
					},
				},
			},
		},
		{
			ID:        "f2",
			Name:      "Thomas Walker",
			Email:     "thomas.walker@example.com",
			Avatar:    "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg",
			UserType:  models.UserTypeFreelancer,
			CreatedAt: at("2023-06-22T09:15:00Z"),
			FreelancerProfile: &models.FreelancerProfile{
				UserID:        "f2",
				Title:         "UX/UI Designer",
				Skills:        []string{"Figma", "Adobe XD", "UI Design", "Prototyping"},
				HourlyRate:    50,
				Rating:        4.8,
				JobsCompleted: 63,
				Availability:  models.AvailabilityPartTime,
				Description:   "Creative UI/UX designer with a passion for crafting beautiful and functional interfaces.",
				Portfolio: []models.PortfolioItem{
					{
						ID:          "p3",
						Title:       "Finance App Redesign",
						Description: "Complete redesign of a financial management application",
						ImageURL:    "https://images.pexels.com/photos/6804595/pexels-photo-6804595.jpeg",
						Link:        "https://example.com/finance-redesign",
					},
				},
			},
		},
		{
			ID:        "f3",
			Name:      "Emma Chen",
			Email:     "emma.chen@example.com",
			Avatar:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg",
			UserType:  models.UserTypeFreelancer,
			CreatedAt: at("2023-04-05T11:45:00Z"),
			FreelancerProfile: &models.FreelancerProfile{
				UserID:        "f3",
				Title:         "Digital Marketing Specialist",
				Skills:        []string{"SEO", "Content Marketing", "Social Media", "Google Analytics"},
				HourlyRate:    35,
				Rating:        4.7,
				JobsCompleted: 39,
				Availability:  models.AvailabilityAvailable,
				Description:   "Digital marketing expert specializing in SEO and content strategy to drive organic growth.",
				Portfolio: []models.PortfolioItem{
					{
						ID:          "p4",
						Title:       "E-commerce SEO Campaign",
						Description: "Improved organic traffic by 150% for an e-commerce platform",
						ImageURL:    "https://images.pexels.com/photos/905163/pexels-photo-905163.jpeg",
						Link:        "https://example.com/seo-case-study",
					},
				},
			},
		},
	}
}

// Clients returns the seeded client accounts with their profiles.
func Clients() []models.User {
	return []models.User{
		{
			ID:        "c1",
			Name:      "David Müller",
			Email:     "david.muller@techcorp.com",
			Avatar:    "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg",
			UserType:  models.UserTypeClient,
			CreatedAt: at("2023-01-15T08:00:00Z"),
			ClientProfile: &models.ClientProfile{
				UserID:      "c1",
				Company:     "TechCorp Solutions",
				Industry:    "Software Development",
				JobsPosted:  12,
				Description: "TechCorp specializes in custom software solutions for enterprises.",
				Website:     strPtr("https://techcorp-example.com"),
			},
		},
		{
			ID:        "c2",
			Name:      "Sarah Johnson",
			Email:     "sarah.johnson@artify.com",
			Avatar:    "https://images.pexels.com/photos/1587009/pexels-photo-1587009.jpeg",
			UserType:  models.UserTypeClient,
			CreatedAt: at("2023-02-20T10:30:00Z"),
			ClientProfile: &models.ClientProfile{
				UserID:      "c2",
				Company:     "Artify Creative",
				Industry:    "Digital Marketing",
				JobsPosted:  8,
				Description: "Creative agency focusing on brand identity and digital marketing campaigns.",
				Website:     strPtr("https://artify-example.com"),
			},
		},
		{
			ID:        "c3",
			Name:      "Michael Wong",
			Email:     "michael.wong@retailpro.com",
			Avatar:    "https://images.pexels.com/photos/1516680/pexels-photo-1516680.jpeg",
			UserType:  models.UserTypeClient,
			CreatedAt: at("2023-03-10T14:15:00Z"),
			ClientProfile: &models.ClientProfile{
				UserID:      "c3",
				Company:     "RetailPro",
				Industry:    "E-commerce",
				JobsPosted:  5,
				Description: "Online retail platform specializing in consumer electronics.",
				Website:     strPtr("https://retailpro-example.com"),
			},
		},
	}
}

// Users returns freelancers followed by clients.
func Users() []models.User {
	return append(Freelancers(), Clients()...)
}

func usd(t models.BudgetType, amount float64) models.Budget {
	return models.Budget{Type: t, Amount: amount, Currency: "USD"}
}

func Jobs() []models.Job {
	return []models.Job{
		{
			ID:          "j1",
			Title:       "Front-end Developer for E-commerce Platform",
			Description: "We are looking for an experienced front-end developer to help us enhance our e-commerce platform. The ideal candidate will have strong React skills and experience with state management libraries.",
			Skills:      []string{"React", "JavaScript", "CSS", "Redux"},
			Budget:      usd(models.BudgetFixed, 3000),
			ClientID:    "c1",
			CreatedAt:   at("2023-06-01T09:00:00Z"),
			Deadline:    atPtr("2023-07-15T00:00:00Z"),
			Status:      models.JobStatusOpen,
			Proposals:   12,
			Category:    "Web Development",
			Experience:  models.ExperienceIntermediate,
		},
		{
			ID:          "j2",
			Title:       "UI/UX Designer for Mobile App",
			Description: "Looking for a talented UI/UX designer to redesign our mobile application. You will be responsible for creating user-centered designs and improving the overall user experience.",
			Skills:      []string{"UI Design", "UX Design", "Figma", "Mobile Design"},
			Budget:      usd(models.BudgetHourly, 45),
			ClientID:    "c2",
			CreatedAt:   at("2023-06-05T14:30:00Z"),
			Deadline:    atPtr("2023-07-20T00:00:00Z"),
			Status:      models.JobStatusOpen,
			Proposals:   8,
			Category:    "Design",
			Experience:  models.ExperienceExpert,
		},
		{
			ID:          "j3",
			Title:       "Content Writer for Blog Articles",
			Description: "We are seeking a content writer to create engaging blog articles for our marketing campaigns. Topics will focus on digital marketing trends and best practices.",
			Skills:      []string{"Content Writing", "SEO", "Blogging", "Research"},
			Budget:      usd(models.BudgetFixed, 500),
			ClientID:    "c3",
			CreatedAt:   at("2023-06-10T11:15:00Z"),
			Deadline:    atPtr("2023-06-30T00:00:00Z"),
			Status:      models.JobStatusOpen,
			Proposals:   15,
			Category:    "Writing",
			Experience:  models.ExperienceEntry,
		},
		{
			ID:          "j4",
			Title:       "Full Stack Developer for CRM System",
			Description: "Seeking a full stack developer to build a custom CRM system for our sales team. The ideal candidate will have experience with React, Node.js, and database design.",
			Skills:      []string{"React", "Node.js", "MongoDB", "Express"},
			Budget:      usd(models.BudgetFixed, 5000),
			ClientID:    "c1",
			CreatedAt:   at("2023-06-12T08:45:00Z"),
			Deadline:    atPtr("2023-08-15T00:00:00Z"),
			Status:      models.JobStatusOpen,
			Proposals:   7,
			Category:    "Web Development",
			Experience:  models.ExperienceExpert,
		},
		{
			ID:          "j5",
			Title:       "Social Media Campaign Manager",
			Description: "We need a social media expert to plan and execute a marketing campaign across multiple platforms. The campaign will run for 3 months and focus on increasing brand awareness.",
			Skills:      []string{"Social Media Marketing", "Content Creation", "Campaign Planning", "Analytics"},
			Budget:      usd(models.BudgetHourly, 30),
			ClientID:    "c2",
			CreatedAt:   at("2023-06-15T13:20:00Z"),
			Deadline:    atPtr("2023-07-01T00:00:00Z"),
			Status:      models.JobStatusOpen,
			Proposals:   10,
			Category:    "Marketing",
			Experience:  models.ExperienceIntermediate,
		},
	}
}

func Proposals() []models.Proposal {
	return []models.Proposal{
		{
			ID:                "pr1",
			JobID:             "j1",
			FreelancerID:      "f1",
			CoverLetter:       "I am very interested in this project as I have extensive experience with React and e-commerce platforms. I have previously built similar solutions and understand the challenges involved.",
			ProposedBudget:    2800,
			EstimatedDuration: "3 weeks",
			Status:            models.ProposalPending,
			CreatedAt:         at("2023-06-02T10:15:00Z"),
		},
		{
			ID:                "pr2",
			JobID:             "j2",
			FreelancerID:      "f2",
			CoverLetter:       "As a UI/UX designer with over 5 years of experience in mobile app design, I believe I am a perfect fit for this project. I have attached some relevant examples from my portfolio.",
			ProposedBudget:    40,
			EstimatedDuration: "80 hours",
			Status:            models.ProposalAccepted,
			CreatedAt:         at("2023-06-06T09:30:00Z"),
		},
	}
}

func Messages() []models.Message {
	return []models.Message{
		{
			ID:         "m1",
			SenderID:   "c1",
			ReceiverID: "f1",
			Content:    "Hello, I saw your proposal for my front-end project. Can we discuss more details?",
			CreatedAt:  at("2023-06-03T14:25:00Z"),
			Read:       true,
		},
		{
			ID:         "m2",
			SenderID:   "f1",
			ReceiverID: "c1",
			Content:    "Hi David, I would be happy to discuss the project details. When would be a good time for you?",
			CreatedAt:  at("2023-06-03T15:10:00Z"),
			Read:       true,
		},
		{
			ID:         "m3",
			SenderID:   "c2",
			ReceiverID: "f2",
			Content:    "Your proposal looks promising. I would like to set up a call to discuss the design approach.",
			CreatedAt:  at("2023-06-07T11:00:00Z"),
			Read:       true,
		},
		{
			ID:         "m4",
			SenderID:   "f2",
			ReceiverID: "c2",
			Content:    "That sounds great! I am available tomorrow between 2-5pm EST or anytime Thursday.",
			CreatedAt:  at("2023-06-07T11:45:00Z"),
			Read:       false,
		},
	}
}

func Projects() []models.Project {
	return []models.Project{
		{
			ID:           "proj1",
			JobID:        "j2",
			ClientID:     "c2",
			FreelancerID: "f2",
			Title:        "UI/UX Designer for Mobile App",
			Description:  "Redesign of the mobile application with focus on improving user experience and visual appeal.",
			Status:       models.ProjectActive,
			StartDate:    at("2023-06-10T00:00:00Z"),
			TotalAmount:  2300,
			Milestones: []models.Milestone{
				{
					ID:            "ms1",
					ProjectID:     "proj1",
					Position:      1,
					Title:         "Initial Wireframes",
					Description:   "Create wireframes for all key screens of the application",
					Amount:        500,
					Status:        models.MilestoneCompleted,
					DueDate:       atPtr("2023-06-17T00:00:00Z"),
					CompletedDate: atPtr("2023-06-16T14:30:00Z"),
				},
				{
					ID:          "ms2",
					ProjectID:   "proj1",
					Position:    2,
					Title:       "High-fidelity Design",
					Description: "Develop detailed visual designs based on approved wireframes",
					Amount:      1000,
					Status:      models.MilestoneInProgress,
					DueDate:     atPtr("2023-07-01T00:00:00Z"),
				},
				{
					ID:          "ms3",
					ProjectID:   "proj1",
					Position:    3,
					Title:       "Prototype and Handoff",
					Description: "Create interactive prototype and prepare design files for developers",
					Amount:      800,
					Status:      models.MilestonePending,
					DueDate:     atPtr("2023-07-15T00:00:00Z"),
				},
			},
		},
	}
}
