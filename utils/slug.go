package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"elearn/models"

	"gorm.io/gorm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// Slugify turns "Intro to X!" into "intro-to-x"
func Slugify(title string) string {
	lower := strings.ToLower(title)
	noSpecial := slugInvalidChars.ReplaceAllString(lower, "")
	slug := slugSeparators.ReplaceAllString(noSpecial, "-")
	return strings.Trim(slug, "-")
}

// RandomString returns an n character lowercase alphanumeric string. The
// top-level rand source is used because handlers call this concurrently.
func RandomString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// GenerateUniqueSlug derives a course slug from the title and breaks a
// collision with a single random suffix. A non-zero excludeID skips that
// course's own row, so a retitle that slugifies to the current slug keeps
// it. A second collision against the suffixed value is statistically
// negligible and not re-checked; the unique index on title_slug is the
// backstop.
func GenerateUniqueSlug(db *gorm.DB, title string, excludeID uint) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		slug = "course" // title contained only symbols
	}

	query := db.Model(&models.Course{}).
		Where("title_slug = ? AND status != ?", slug, models.CourseStatusDeleted)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to check slug uniqueness: %w", err)
	}

	if count > 0 {
		slug = fmt.Sprintf("%s-%s", slug, RandomString(5))
	}

	return slug, nil
}
