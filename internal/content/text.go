package content

// Category describes one tab of the tech stack section.
type Category struct {
	Key         string
	Name        string
	Tagline     string
	Description string
	Accent      string
}

var Categories = []Category{
	{
		Key:         "frontend",
		Name:        "Frontend",
		Tagline:     "Interfaces & delightful UX",
		Description: "Crafting vibrant experiences with React, Next.js, and thoughtful motion.",
		Accent:      "cyan",
	},
	{
		Key:         "backend",
		Name:        "Backend",
		Tagline:     "APIs & system design",
		Description: "Designing reliable services, clean architectures, and secure APIs.",
		Accent:      "emerald",
	},
	{
		Key:         "database",
		Name:        "Database",
		Tagline:     "Data orchestration",
		Description: "Guarding data integrity with modern document and relational systems.",
		Accent:      "indigo",
	},
	{
		Key:         "ai",
		Name:        "AI & ML",
		Tagline:     "Cognitive engineering",
		Description: "Researching and shipping applied AI with Python, transformers, and agents.",
		Accent:      "violet",
	},
	{
		Key:         "devops",
		Name:        "DevOps",
		Tagline:     "Automation & reliability",
		Description: "Keeping releases smooth with containers, CI/CD, and smart monitoring.",
		Accent:      "amber",
	},
	{
		Key:         "other",
		Name:        "Other Tools",
		Tagline:     "Creative allies",
		Description: "Collaboration and design utilities that round out the toolkit.",
		Accent:      "slate",
	},
}

func CategoryByKey(key string) (Category, bool) {
	for _, c := range Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

type NavItem struct {
	ID    string
	Label string
}

// NavItems are the in-page anchors, in scroll order.
var NavItems = []NavItem{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "Journey"},
	{ID: "tech", Label: "Tech"},
	{ID: "projects", Label: "Projects"},
	{ID: "testimonials", Label: "Reviews"},
	{ID: "contact", Label: "Contact"},
}
