package courseController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"elearn/models"
	"elearn/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type enrollmentView struct {
	ID            uint   `json:"ID"`
	Reference     string `json:"reference"`
	UserID        uint   `json:"user_id"`
	CourseID      uint   `json:"course_id"`
	Status        string `json:"status"`
	AmountPayable int    `json:"amountPayable"`
	AmountOffered int    `json:"amountOffered"`
	SectionsCount int    `json:"sectionsCount"`
	LessonsCount  int    `json:"lessonsCount"`
}

func seedSection(t *testing.T, db *gorm.DB, courseID uint, title string, lessonCount int) {
	t.Helper()

	lessons := make([]map[string]interface{}, 0, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lessons = append(lessons, map[string]interface{}{
			"title":    fmt.Sprintf("%s lesson %d", title, i+1),
			"duration": 300,
			"type":     "video",
			"videoUrl": "",
		})
	}
	encoded, err := json.Marshal(lessons)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Section{
		CourseID:      courseID,
		Title:         title,
		Lessons:       encoded,
		TotalDuration: lessonCount * 300,
		TotalLessons:  lessonCount,
	}).Error)
}

func TestEnrollFreeCourse(t *testing.T) {
	app, db := setupTestApp(t)
	user, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{
		Title:      "Intro to X",
		TitleSlug:  "intro-to-x",
		CategoryID: category.ID,
	})

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "You have been enrolled in the course", resp.Message)

	var enrollment enrollmentView
	decodeData(t, resp.Data, &enrollment)

	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)
	assert.NotEmpty(t, enrollment.Reference)
	assert.Equal(t, user.ID, enrollment.UserID)
	assert.Equal(t, 0, enrollment.AmountPayable)

	var stored models.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, 1, stored.EnrollmentCount)
}

func TestEnrollTwiceConflicts(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{
		Title:      "Intro to X",
		TitleSlug:  "intro-to-x",
		CategoryID: category.ID,
	})

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "You are already enrolled in this course", resp.Message)

	// neither the row count nor the counter moved
	var rows int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&rows)
	assert.EqualValues(t, 1, rows)

	var stored models.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, 1, stored.EnrollmentCount)
}

func TestEnrollPaidCoursePending(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{
		Title:      "Paid Course",
		TitleSlug:  "paid-course",
		CategoryID: category.ID,
		Price:      4999,
	})

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	var enrollment enrollmentView
	decodeData(t, resp.Data, &enrollment)

	assert.Equal(t, models.EnrollmentStatusPending, enrollment.Status)
	assert.Equal(t, 4999, enrollment.AmountPayable)
	assert.Equal(t, 4999, enrollment.AmountOffered)

	// pending enrollments do not move the counter
	var stored models.Course
	require.NoError(t, db.First(&stored, course.ID).Error)
	assert.Equal(t, 0, stored.EnrollmentCount)

	// a pending enrollment still blocks a retry
	code, _ = doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, http.StatusConflict, code)
}

func TestEnrollSnapshotsCurriculumCounts(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{
		Title:      "Intro to X",
		TitleSlug:  "intro-to-x",
		CategoryID: category.ID,
	})
	seedSection(t, db, course.ID, "Basics", 2)
	seedSection(t, db, course.ID, "Advanced", 1)

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	var enrollment enrollmentView
	decodeData(t, resp.Data, &enrollment)

	assert.Equal(t, 2, enrollment.SectionsCount)
	assert.Equal(t, 3, enrollment.LessonsCount)
}

func TestEnrollUnknownOrDeletedCourse(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	code, resp := doRequest(t, app, http.MethodPost, "/course/9999/enroll", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Course not found!", resp.Message)

	deleted := seedCourse(t, db, models.Course{
		Title:      "Gone",
		TitleSlug:  "gone",
		CategoryID: category.ID,
		Status:     models.CourseStatusDeleted,
	})

	code, _ = doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", deleted.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEnrollRequiresAuth(t *testing.T) {
	app, db := setupTestApp(t)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{
		Title:      "Intro to X",
		TitleSlug:  "intro-to-x",
		CategoryID: category.ID,
	})

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestEnrollAgainAfterCancellation(t *testing.T) {
	app, db := setupTestApp(t)
	user, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{
		Title:      "Intro to X",
		TitleSlug:  "intro-to-x",
		CategoryID: category.ID,
	})

	// a cancelled enrollment is history, not a blocker
	require.NoError(t, db.Create(&models.Enrollment{
		Reference: "cancelled-ref",
		UserID:    user.ID,
		CourseID:  course.ID,
		Status:    models.EnrollmentStatusCancelled,
	}).Error)

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	var enrollment enrollmentView
	decodeData(t, resp.Data, &enrollment)
	assert.Equal(t, models.EnrollmentStatusEnrolled, enrollment.Status)

	var rows int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&rows)
	assert.EqualValues(t, 2, rows)
}

func TestGetEnrollments(t *testing.T) {
	app, db := setupTestApp(t)
	_, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	free := seedCourse(t, db, models.Course{Title: "Free One", TitleSlug: "free-one", CategoryID: category.ID})
	paid := seedCourse(t, db, models.Course{Title: "Paid One", TitleSlug: "paid-one", CategoryID: category.ID, Price: 1000})

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", free.ID), token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", paid.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Enrollments []enrollmentView `json:"enrollments"`
		Pagination  struct {
			Total int64 `json:"total"`
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
		} `json:"pagination"`
	}

	code, resp := doRequest(t, app, http.MethodGet, "/user/enrollments", token, nil)
	require.Equal(t, http.StatusOK, code)
	decodeData(t, resp.Data, &page)

	assert.EqualValues(t, 2, page.Pagination.Total)
	assert.Len(t, page.Enrollments, 2)

	code, resp = doRequest(t, app, http.MethodGet, "/user/enrollments?status=Pending", token, nil)
	require.Equal(t, http.StatusOK, code)
	decodeData(t, resp.Data, &page)

	require.Len(t, page.Enrollments, 1)
	assert.Equal(t, paid.ID, page.Enrollments[0].CourseID)

	code, resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/user/enrollments?course_id=%d", free.ID), token, nil)
	require.Equal(t, http.StatusOK, code)
	decodeData(t, resp.Data, &page)

	require.Len(t, page.Enrollments, 1)
	assert.Equal(t, free.ID, page.Enrollments[0].CourseID)
}

func TestGetEnrollmentsOnlyOwn(t *testing.T) {
	app, db := setupTestApp(t)
	_, firstToken := seedUser(t, db, models.RoleUser)
	_, secondToken := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	course := seedCourse(t, db, models.Course{Title: "Intro to X", TitleSlug: "intro-to-x", CategoryID: category.ID})

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", course.ID), firstToken, nil)
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Enrollments []enrollmentView `json:"enrollments"`
	}

	code, resp := doRequest(t, app, http.MethodGet, "/user/enrollments", secondToken, nil)
	require.Equal(t, http.StatusOK, code)
	decodeData(t, resp.Data, &page)
	assert.Empty(t, page.Enrollments)
}

func TestCancelStalePendingEnrollments(t *testing.T) {
	app, db := setupTestApp(t)
	user, token := seedUser(t, db, models.RoleUser)
	category := seedCategory(t, db, "programming", 0)

	stale := seedCourse(t, db, models.Course{Title: "Stale", TitleSlug: "stale", CategoryID: category.ID, Price: 1000})
	fresh := seedCourse(t, db, models.Course{Title: "Fresh", TitleSlug: "fresh", CategoryID: category.ID, Price: 1000})

	code, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", stale.ID), token, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", fresh.ID), token, nil)
	require.Equal(t, http.StatusOK, code)

	// age the first enrollment past the TTL
	cutoff := time.Now().AddDate(0, 0, -30)
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, stale.ID).
		Update("created_at", cutoff).Error)

	utils.CancelStalePendingEnrollments()

	var staleEnrollment, freshEnrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, stale.ID).First(&staleEnrollment).Error)
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, fresh.ID).First(&freshEnrollment).Error)

	assert.Equal(t, models.EnrollmentStatusCancelled, staleEnrollment.Status)
	assert.Equal(t, models.EnrollmentStatusPending, freshEnrollment.Status)

	// the cancelled slot is open again
	code, _ = doRequest(t, app, http.MethodPost, fmt.Sprintf("/course/%d/enroll", stale.ID), token, nil)
	assert.Equal(t, http.StatusOK, code)
}
