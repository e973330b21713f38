package seed

import "github.com/dambastudy/backend/internal/models"

const sampleVideoURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"

var defaultCategories = []string{
	"Programming",
	"Web Development",
	"Data Science",
	"Machine Learning",
	"Cybersecurity",
	"Graphic Design",
	"Business & Finance",
	"Marketing",
	"Mobile Development",
	"UI/UX Design",
}

var sampleLessons = []models.Lesson{
	{Title: "Introduction to the Course", VideoURL: sampleVideoURL, Duration: "5:30", Order: 1},
	{Title: "Getting Started - Setup", VideoURL: sampleVideoURL, Duration: "12:15", Order: 2},
	{Title: "Core Concepts Explained", VideoURL: sampleVideoURL, Duration: "18:45", Order: 3},
	{Title: "Hands-on Practice", VideoURL: sampleVideoURL, Duration: "22:00", Order: 4},
	{Title: "Advanced Techniques", VideoURL: sampleVideoURL, Duration: "15:30", Order: 5},
	{Title: "Building a Project", VideoURL: sampleVideoURL, Duration: "35:00", Order: 6},
	{Title: "Best Practices", VideoURL: sampleVideoURL, Duration: "10:20", Order: 7},
	{Title: "Final Project & Wrap Up", VideoURL: sampleVideoURL, Duration: "25:00", Order: 8},
}

var sampleReviews = []models.Review{
	{UserName: "Student A", Rating: 5, Comment: "Excellent course! Highly recommended."},
	{UserName: "Student B", Rating: 4, Comment: "Very informative and well-structured."},
}

// sampleCourse is a catalog entry and the name of its category
type sampleCourse struct {
	category string
	course   models.Course
}

var sampleCourses = []sampleCourse{
	{"Web Development", models.Course{
		Title:            "React for Beginners",
		Description:      "Learn React step-by-step and build modern web applications. This comprehensive course covers components, state, hooks, and real-world projects.",
		ShortDescription: "Master React.js fundamentals",
		Price:            499,
		Thumbnail:        "https://picsum.photos/seed/react/400/300",
		Instructor:       models.Instructor{Name: "Rahul Sharma", Bio: "Senior Frontend Developer with 8+ years experience"},
		Level:            models.LevelBeginner,
		Duration:         "8 hours",
		Rating:           4.8,
		EnrolledCount:    2450,
	}},
	{"Programming", models.Course{
		Title:            "Python Zero to Hero",
		Description:      "Master Python with real-world coding exercises. From basics to advanced concepts including OOP, file handling, and web scraping.",
		ShortDescription: "Complete Python programming",
		Price:            599,
		Thumbnail:        "https://picsum.photos/seed/python/400/300",
		Instructor:       models.Instructor{Name: "Priya Patel", Bio: "Data Scientist at Tech Corp"},
		Level:            models.LevelBeginner,
		Duration:         "12 hours",
		Rating:           4.7,
		EnrolledCount:    3200,
	}},
	{"Machine Learning", models.Course{
		Title:            "Machine Learning Bootcamp",
		Description:      "Understand ML algorithms and build predictive models. Covers regression, classification, clustering, and neural networks.",
		ShortDescription: "AI & ML fundamentals",
		Price:            899,
		Thumbnail:        "https://picsum.photos/seed/ml/400/300",
		Instructor:       models.Instructor{Name: "Dr. Arun Kumar", Bio: "AI Researcher and Professor"},
		Level:            models.LevelAdvanced,
		Duration:         "20 hours",
		Rating:           4.9,
		EnrolledCount:    1890,
	}},
	{"UI/UX Design", models.Course{
		Title:            "UI/UX Design Masterclass",
		Description:      "Learn user experience principles and design stunning interfaces. Covers Figma, prototyping, and design systems.",
		ShortDescription: "Design beautiful interfaces",
		Price:            699,
		Thumbnail:        "https://picsum.photos/seed/uiux/400/300",
		Instructor:       models.Instructor{Name: "Sneha Gupta", Bio: "Lead Designer at Creative Studio"},
		Level:            models.LevelIntermediate,
		Duration:         "10 hours",
		Rating:           4.6,
		EnrolledCount:    1560,
	}},
	{"Web Development", models.Course{
		Title:            "Full-Stack JavaScript",
		Description:      "Become a full-stack developer using Node.js and React. Build complete web applications from frontend to backend.",
		ShortDescription: "MERN Stack Development",
		Price:            999,
		Thumbnail:        "https://picsum.photos/seed/fullstack/400/300",
		Instructor:       models.Instructor{Name: "Vikram Singh", Bio: "Full-Stack Architect at StartupX"},
		Level:            models.LevelIntermediate,
		Duration:         "25 hours",
		Rating:           4.8,
		EnrolledCount:    2100,
	}},
	{"Cybersecurity", models.Course{
		Title:            "Cybersecurity Fundamentals",
		Description:      "Learn ethical hacking, system security and protection. Covers network security, cryptography, and penetration testing.",
		ShortDescription: "Protect digital assets",
		Price:            799,
		Thumbnail:        "https://picsum.photos/seed/security/400/300",
		Instructor:       models.Instructor{Name: "Amit Verma", Bio: "Certified Ethical Hacker"},
		Level:            models.LevelIntermediate,
		Duration:         "15 hours",
		Rating:           4.7,
		EnrolledCount:    980,
	}},
	{"Marketing", models.Course{
		Title:            "Digital Marketing Expert Course",
		Description:      "Master SEO, ads, branding, analytics and more. Learn to grow businesses through digital channels.",
		ShortDescription: "Grow your online presence",
		Price:            499,
		Thumbnail:        "https://picsum.photos/seed/marketing/400/300",
		Instructor:       models.Instructor{Name: "Neha Kapoor", Bio: "Marketing Director at AdAgency"},
		Level:            models.LevelBeginner,
		Duration:         "8 hours",
		Rating:           4.5,
		EnrolledCount:    1750,
	}},
	{"Mobile Development", models.Course{
		Title:            "Android Development Using Kotlin",
		Description:      "Build native Android apps with Kotlin and Jetpack. From basics to publishing on Play Store.",
		ShortDescription: "Build Android apps",
		Price:            899,
		Thumbnail:        "https://picsum.photos/seed/android/400/300",
		Instructor:       models.Instructor{Name: "Karthik Rajan", Bio: "Senior Android Developer"},
		Level:            models.LevelIntermediate,
		Duration:         "18 hours",
		Rating:           4.6,
		EnrolledCount:    1320,
	}},
	{"Data Science", models.Course{
		Title:            "Data Analysis with Pandas",
		Description:      "Work with real datasets using Pandas and NumPy. Data cleaning, visualization, and statistical analysis.",
		ShortDescription: "Analyze data like a pro",
		Price:            549,
		Thumbnail:        "https://picsum.photos/seed/pandas/400/300",
		Instructor:       models.Instructor{Name: "Ananya Reddy", Bio: "Data Analyst at BigData Inc"},
		Level:            models.LevelIntermediate,
		Duration:         "10 hours",
		Rating:           4.7,
		EnrolledCount:    890,
	}},
	{"Web Development", models.Course{
		Title:            "Advanced Node.js",
		Description:      "Master Node.js backend performance and architecture. Covers microservices, caching, and production deployment.",
		ShortDescription: "Scale Node.js apps",
		Price:            799,
		Thumbnail:        "https://picsum.photos/seed/nodejs/400/300",
		Instructor:       models.Instructor{Name: "Suresh Menon", Bio: "Backend Architect"},
		Level:            models.LevelAdvanced,
		Duration:         "14 hours",
		Rating:           4.8,
		EnrolledCount:    760,
	}},
}
