package catalog

var skills = []string{
	"JavaScript", "React", "Node.js", "TypeScript", "Vue.js", "Angular",
	"HTML/CSS", "UI Design", "UX Design", "Figma", "Adobe XD", "Sketch",
	"Python", "Django", "Flask", "Java", "Spring Boot", "PHP", "Laravel",
	"WordPress", "Mobile Development", "iOS", "Android", "React Native", "Flutter",
	"SEO", "Content Writing", "Copywriting", "Social Media Marketing", "Digital Marketing",
	"Google Analytics", "Data Analysis", "SQL", "NoSQL", "MongoDB", "PostgreSQL",
	"DevOps", "AWS", "Docker", "Kubernetes", "CI/CD", "Git",
	"Project Management", "Agile", "Scrum", "Product Management",
	"Graphic Design", "Logo Design", "3D Modeling", "Video Editing", "Animation",
}

var categories = []string{
	"Web Development", "Mobile Development", "Design", "Writing",
	"Marketing", "Data Science", "DevOps", "Business", "Customer Service",
	"Sales", "Accounting", "Legal", "Admin Support", "Engineering",
}

// RateBucket is one of the hourly rate ranges offered by the freelancer search.
type RateBucket struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var rateBuckets = []RateBucket{
	{Value: "10-30", Label: "$10 - $30"},
	{Value: "30-60", Label: "$30 - $60"},
	{Value: "60-100", Label: "$60 - $100"},
	{Value: "100", Label: "$100+"},
}

func Skills() []string {
	return append([]string(nil), skills...)
}

func Categories() []string {
	return append([]string(nil), categories...)
}

func RateBuckets() []RateBucket {
	return append([]RateBucket(nil), rateBuckets...)
}
