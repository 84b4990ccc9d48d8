package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// apiResponse mirrors the JSON envelope every handler writes
type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// courseView is the shape of the assembled course detail payload. The course
// object carries the joined category columns alongside the course fields.
type courseView struct {
	Course struct {
		ID              uint            `json:"ID"`
		Title           string          `json:"title"`
		TitleSlug       string          `json:"title_slug"`
		CourseType      string          `json:"course_type"`
		Status          string          `json:"status"`
		Price           int             `json:"price"`
		OriginalPrice   int             `json:"originalPrice"`
		TotalLessons    int             `json:"totalLessons"`
		TotalDuration   int             `json:"totalDuration"`
		EnrollmentCount int             `json:"enrollmentCount"`
		CategoryName    string          `json:"category_name"`
		Tags            json.RawMessage `json:"tags"`
	} `json:"course"`
	CreatedBy struct {
		ID uint `json:"id"`
	} `json:"created_by"`
	Instructors []struct {
		InstructorID uint `json:"instructor_id"`
	} `json:"instructors"`
	Sections []struct {
		Title         string `json:"title"`
		TotalDuration int    `json:"totalDuration"`
		TotalLessons  int    `json:"totalLessons"`
	} `json:"sections"`
}

type courseListPage struct {
	Courses []struct {
		ID        uint   `json:"ID"`
		Title     string `json:"title"`
		TitleSlug string `json:"title_slug"`
		Price     int    `json:"price"`
		Status    string `json:"status"`
	} `json:"courses"`
	Pagination struct {
		Total  int64 `json:"total"`
		Limit  int   `json:"limit"`
		Offset int   `json:"offset"`
	} `json:"pagination"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)

	return app, db
}

// seedUser inserts a user and mints a token for them
func seedUser(t *testing.T, db *gorm.DB, role string) (models.User, string) {
	t.Helper()

	user := models.User{
		Firstname: "Test",
		Lastname:  role,
		Email:     fmt.Sprintf("%s@example.com", uuid.NewString()),
		Role:      role,
		Password:  "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Firstname, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func seedCategory(t *testing.T, db *gorm.DB, name string, parentID uint) models.Category {
	t.Helper()

	category := models.Category{
		Name:     name,
		NameSlug: name,
		ParentID: parentID,
		Status:   models.CategoryStatusActive,
	}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedCourse(t *testing.T, db *gorm.DB, course models.Course) models.Course {
	t.Helper()

	if course.Status == "" {
		course.Status = models.CourseStatusPublished
	}
	if course.CourseType == "" {
		course.CourseType = models.CourseTypeFree
		if course.Price > 0 {
			course.CourseType = models.CourseTypePaid
		}
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

// doRequest drives a route through the app and decodes the response envelope
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	return resp.StatusCode, parsed
}

func decodeData(t *testing.T, data json.RawMessage, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, target))
}

// coursePayload is a minimal valid authoring request
func coursePayload(categoryID uint, price int) map[string]interface{} {
	return map[string]interface{}{
		"title":       "Intro to X",
		"level":       "Beginner",
		"category_id": categoryID,
		"price":       price,
	}
}

func sectionPayload(title string, lessonTitles ...string) map[string]interface{} {
	lessons := make([]interface{}, 0, len(lessonTitles))
	for _, lessonTitle := range lessonTitles {
		lessons = append(lessons, map[string]interface{}{
			"title":    lessonTitle,
			"duration": 300,
			"type":     "video",
			"videoUrl": "https://cdn.example.com/" + lessonTitle + ".mp4",
		})
	}
	return map[string]interface{}{
		"title":         title,
		"lessons":       lessons,
		"totalDuration": len(lessonTitles) * 300,
		"totalLessons":  len(lessonTitles),
	}
}
