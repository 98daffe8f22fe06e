package memory

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/demoforums/forum-api/internal/core/domain"
)

// seedID derives a stable UUID-shaped identifier from a seed string, so seed
// entities keep the same IDs across restarts. The hashing mirrors the
// generator the frontend mock data was originally built with.
func seedID(seed string) string {
	var h1, h2 int32
	for _, ch := range seed {
		code := int32(ch)
		h1 = (h1 << 5) - h1 + code
		h2 = (h2 << 3) + h2 + code
	}

	hex1 := fmt.Sprintf("%08x", uint32(h1))
	hex2 := fmt.Sprintf("%08x", uint32(h2))

	variant, _ := strconv.ParseUint(hex2[4:6], 16, 8)
	part4 := fmt.Sprintf("%02x%s", 0x80|(byte(variant)&0x3F), hex2[6:8])

	part5 := hex1[8:] + hex2[8:]
	for len(part5) < 12 {
		part5 += "0"
	}

	return fmt.Sprintf("%s-%s-4%s-%s-%s", hex1, hex2[:4], hex2[1:4], part4, part5)
}

func daysAgo(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -days)
}

var seedUsers = []domain.User{
	{ID: seedID("admin"), Username: "admin", Password: "admin", Role: domain.RoleAdmin},
	{ID: seedID("user1"), Username: "user1", Password: "user1", Role: domain.RoleUser},
	{ID: seedID("alice"), Username: "alice", Password: "alice", Role: domain.RoleUser},
	{ID: seedID("bob"), Username: "bob", Password: "bob", Role: domain.RoleUser},
}

var seedForums = []domain.Forum{
	{ID: seedID("web-development"), Slug: "web-development", Title: "Web Development",
		Description: "Discuss web technologies, frameworks, and best practices", Category: domain.CategoryTechnology},
	{ID: seedID("artificial-intelligence"), Slug: "artificial-intelligence", Title: "Artificial Intelligence & ML",
		Description: "Machine learning, neural networks, and AI applications", Category: domain.CategoryTechnology},
	{ID: seedID("mobile-development"), Slug: "mobile-development", Title: "Mobile Development",
		Description: "iOS, Android, and cross-platform mobile development", Category: domain.CategoryTechnology},
	{ID: seedID("physics"), Slug: "physics", Title: "Physics & Astronomy",
		Description: "Discuss physics theories, experiments, and space exploration", Category: domain.CategoryScience},
	{ID: seedID("biology"), Slug: "biology", Title: "Biology & Life Sciences",
		Description: "Genetics, ecology, and the study of living organisms", Category: domain.CategoryScience},
	{ID: seedID("chemistry"), Slug: "chemistry", Title: "Chemistry",
		Description: "Chemical reactions, molecular structures, and laboratory techniques", Category: domain.CategoryScience},
	{ID: seedID("digital-art"), Slug: "digital-art", Title: "Digital Art & Design",
		Description: "Digital painting, 3D modeling, and graphic design", Category: domain.CategoryArt},
	{ID: seedID("traditional-art"), Slug: "traditional-art", Title: "Traditional Art",
		Description: "Painting, drawing, sculpture, and classical art forms", Category: domain.CategoryArt},
	{ID: seedID("photography"), Slug: "photography", Title: "Photography",
		Description: "Camera techniques, composition, and photo editing", Category: domain.CategoryArt},
}

var webDevTopics = []string{
	"Getting Started with React Hooks",
	"TypeScript Best Practices in 2024",
	"Building RESTful APIs with FastAPI",
	"CSS Grid vs Flexbox: When to Use Each",
	"Understanding async/await in JavaScript",
	"Modern Authentication Patterns",
	"Optimizing Web Performance",
	"Introduction to Web Components",
	"State Management Solutions Compared",
	"Responsive Design Techniques",
}

var forumTopics = map[string][]string{
	"artificial-intelligence": {
		"Neural Networks Fundamentals",
		"Deep Learning Frameworks Comparison",
		"Natural Language Processing Basics",
		"Computer Vision Applications",
		"Reinforcement Learning Introduction",
	},
	"mobile-development": {
		"React Native vs Flutter",
		"iOS App Architecture Patterns",
		"Android Jetpack Compose Guide",
		"Mobile App Performance Optimization",
		"Cross-Platform Development Tips",
	},
	"physics": {
		"Quantum Mechanics Introduction",
		"Black Holes and Event Horizons",
		"String Theory Explained",
		"Particle Physics Discoveries",
		"Cosmology and the Big Bang",
	},
	"biology": {
		"CRISPR Gene Editing Technology",
		"Evolution and Natural Selection",
		"Cellular Biology Basics",
		"Ecosystems and Biodiversity",
		"Genetics and Heredity",
	},
	"chemistry": {
		"Organic Chemistry Fundamentals",
		"Chemical Bonding Explained",
		"Periodic Table Trends",
		"Reaction Kinetics",
		"Laboratory Safety Best Practices",
	},
	"digital-art": {
		"Digital Painting Techniques",
		"3D Modeling for Beginners",
		"Graphic Design Principles",
		"Color Theory in Digital Art",
		"Creating Game Assets",
	},
	"traditional-art": {
		"Oil Painting Basics",
		"Drawing Fundamentals",
		"Sculpture Techniques",
		"Watercolor Methods",
		"Art History Overview",
	},
	"photography": {
		"Camera Settings Guide",
		"Composition Rules",
		"Portrait Photography Tips",
		"Landscape Photography",
		"Photo Editing Workflow",
	},
}

var commentTemplates = []string{
	"Great post! Thanks for sharing.",
	"I have a question about this...",
	"This is very helpful, thank you!",
	"Could you elaborate on this point?",
	"I disagree with this approach.",
	"Excellent explanation!",
	"This doesn't work for me.",
	"Can you provide more examples?",
	"Very informative, thanks!",
	"I'm having trouble understanding this.",
	"This is exactly what I needed!",
	"What about edge cases?",
	"Great tutorial!",
	"This saved me hours of work.",
	"Could you clarify this section?",
	"I found a better solution.",
	"Thanks for the detailed post!",
	"This is outdated information.",
	"Brilliant explanation!",
	"I have a follow-up question.",
}

// Seed fills an empty store with the demo data set: four users, nine forums
// across three categories, a large post history for web-development plus a
// handful of posts per remaining forum, and a sprinkling of comments.
// rngSeed drives the randomised parts so a fixed seed reproduces the same
// data set.
func Seed(store *Store, rngSeed int64) {
	rng := rand.New(rand.NewSource(rngSeed))

	store.users = append(store.users, seedUsers...)
	store.forums = append(store.forums, seedForums...)

	globalPost := 0
	seedPost := func(forum domain.Forum, number int, title string, createdAt time.Time, updateChance float64, updateSpread int) domain.Post {
		globalPost++
		post := domain.Post{
			ID:        seedID(fmt.Sprintf("post-%d", globalPost)),
			ForumID:   forum.ID,
			Number:    number,
			Title:     title,
			AuthorID:  seedUsers[(number-1)%len(seedUsers)].ID,
			CreatedAt: createdAt,
		}
		if rng.Float64() < updateChance {
			updated := createdAt.AddDate(0, 0, rng.Intn(updateSpread+1))
			post.UpdatedAt = &updated
		}
		return post
	}

	// Web development carries a deep post history to exercise pagination.
	webDev := seedForums[0]
	for i := 0; i < 120; i++ {
		title := webDevTopics[i%len(webDevTopics)]
		if iteration := i / len(webDevTopics); iteration > 0 {
			title = fmt.Sprintf("%s - Part %d", title, iteration+1)
		}
		post := seedPost(webDev, i+1, title, daysAgo(120-i), 0.7, 5)
		post.Content = fmt.Sprintf("This is the content for post about %s.", strings.ToLower(title))
		if i%2 == 0 {
			post.Tags = []string{"discussion", "question"}
		} else {
			post.Tags = []string{"tutorial", "guide"}
		}
		store.posts = append(store.posts, post)
	}

	// Remaining forums get five posts each.
	dayOffsets := []int{60, 50, 40, 30, 20}
	for _, forum := range seedForums[1:] {
		for i, title := range forumTopics[forum.Slug] {
			post := seedPost(forum, i+1, title, daysAgo(dayOffsets[i]), 0.8, 3)
			post.Content = fmt.Sprintf("This is the content for post about %s.", strings.ToLower(title))
			if i%2 == 0 {
				post.Tags = []string{"discussion"}
			} else {
				post.Tags = []string{"guide"}
			}
			store.posts = append(store.posts, post)
		}
	}

	commentID := 0
	for _, post := range store.posts {
		for i, n := 0, rng.Intn(6); i < n; i++ {
			commentID++
			postAge := int(time.Since(post.CreatedAt).Hours() / 24)
			if postAge > 30 {
				postAge = 30
			}
			createdAt := post.CreatedAt.AddDate(0, 0, rng.Intn(postAge+1))
			comment := domain.Comment{
				ID:        seedID(fmt.Sprintf("comment-%d", commentID)),
				PostID:    post.ID,
				Content:   commentTemplates[i%len(commentTemplates)],
				AuthorID:  seedUsers[rng.Intn(len(seedUsers))].ID,
				CreatedAt: createdAt,
			}
			if rng.Float64() < 0.9 {
				updated := createdAt.AddDate(0, 0, rng.Intn(3))
				comment.UpdatedAt = &updated
			}
			store.comments = append(store.comments, comment)
		}
	}
}
