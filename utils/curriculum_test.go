package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSection(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":         title,
		"totalDuration": float64(900),
		"totalLessons":  float64(2),
		"lessons": []interface{}{
			map[string]interface{}{
				"title":    "Welcome",
				"duration": float64(300),
				"type":     "video",
				"videoUrl": "https://cdn.example.com/welcome.mp4",
			},
			map[string]interface{}{
				"title":    "Checkpoint",
				"duration": float64(600),
				"type":     "quiz",
				"videoUrl": "",
			},
		},
	}
}

func TestValidateCurriculumAcceptsValidSections(t *testing.T) {
	sections := []map[string]interface{}{validSection("Getting Started"), validSection("Basics")}

	result, err := ValidateCurriculum(sections, nil, nil, nil)
	require.NoError(t, err)

	// identity on success: the exact input comes back unchanged
	assert.Equal(t, sections, result)
}

func TestValidateCurriculumMissingSectionKeys(t *testing.T) {
	section := validSection("Getting Started")
	delete(section, "totalLessons")

	_, err := ValidateCurriculum([]map[string]interface{}{section}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Section 1 (Getting Started)")
	assert.Contains(t, err.Error(), "totalLessons")
}

func TestValidateCurriculumNonNumericTotalDuration(t *testing.T) {
	section := validSection("Getting Started")
	section["totalDuration"] = "about an hour"

	_, err := ValidateCurriculum([]map[string]interface{}{section}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric totalDuration")
}

func TestValidateCurriculumEmptyLessons(t *testing.T) {
	section := validSection("Getting Started")
	section["lessons"] = []interface{}{}

	_, err := ValidateCurriculum([]map[string]interface{}{section}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no lessons")
}

func TestValidateCurriculumMissingLessonKey(t *testing.T) {
	section := validSection("Getting Started")
	lesson := section["lessons"].([]interface{})[1].(map[string]interface{})
	delete(lesson, "videoUrl")

	_, err := ValidateCurriculum([]map[string]interface{}{section}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lesson 2 (Checkpoint)")
	assert.Contains(t, err.Error(), "videoUrl")
}

func TestValidateCurriculumInvalidLessonType(t *testing.T) {
	section := validSection("Getting Started")
	lesson := section["lessons"].([]interface{})[0].(map[string]interface{})
	lesson["type"] = "webinar"

	_, err := ValidateCurriculum([]map[string]interface{}{section}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type: webinar")
}

func TestValidateCurriculumNonNumericLessonDuration(t *testing.T) {
	section := validSection("Getting Started")
	lesson := section["lessons"].([]interface{})[0].(map[string]interface{})
	lesson["duration"] = "short"

	_, err := ValidateCurriculum([]map[string]interface{}{section}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric duration")
}

func TestValidateCurriculumSecondSectionNamedInError(t *testing.T) {
	bad := validSection("Advanced Topics")
	delete(bad, "lessons")

	_, err := ValidateCurriculum([]map[string]interface{}{validSection("Getting Started"), bad}, nil, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Section 2 (Advanced Topics)")
}

func TestNumericValueAcceptsNumericStrings(t *testing.T) {
	value, ok := NumericValue("450")
	require.True(t, ok)
	assert.Equal(t, 450.0, value)

	_, ok = NumericValue("4m30s")
	assert.False(t, ok)
}
