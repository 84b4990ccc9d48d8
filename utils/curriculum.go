package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// RequiredSectionKeys are the fields every submitted section must carry
func RequiredSectionKeys() []string {
	return []string{"title", "lessons", "totalDuration", "totalLessons"}
}

// RequiredLessonKeys are the fields every submitted lesson must carry.
// videoUrl must be present as a key but may be empty.
func RequiredLessonKeys() []string {
	return []string{"title", "duration", "type", "videoUrl"}
}

// AcceptedLessonTypes are the lesson types a curriculum may contain
func AcceptedLessonTypes() []string {
	return []string{"video", "quiz", "assignment", "resource"}
}

// ValidateCurriculum checks an ordered list of section payloads against the
// required key sets and accepted lesson types. The first failure returns an
// error naming the offending section and lesson; on success the input list
// is returned unchanged. Either the whole curriculum is accepted or one
// specific actionable error is surfaced.
func ValidateCurriculum(sections []map[string]interface{}, sectionKeys, lessonKeys, lessonTypes []string) ([]map[string]interface{}, error) {
	if sectionKeys == nil {
		sectionKeys = RequiredSectionKeys()
	}
	if lessonKeys == nil {
		lessonKeys = RequiredLessonKeys()
	}
	if lessonTypes == nil {
		lessonTypes = AcceptedLessonTypes()
	}

	for i, section := range sections {
		position := i + 1
		title := sectionTitle(section)

		// required section keys
		if missing := missingKeys(section, sectionKeys); len(missing) > 0 {
			return nil, fmt.Errorf("Section %d (%s) is missing required fields: %s", position, title, strings.Join(missing, ", "))
		}

		if !IsNumeric(section["totalDuration"]) {
			return nil, fmt.Errorf("Section %d (%s) has a non-numeric totalDuration", position, title)
		}

		lessons, ok := section["lessons"].([]interface{})
		if !ok || len(lessons) == 0 {
			return nil, fmt.Errorf("Section %d (%s) has no lessons", position, title)
		}

		for j, raw := range lessons {
			lessonPosition := j + 1

			lesson, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("Section %d (%s) lesson %d is not a valid lesson object", position, title, lessonPosition)
			}

			lessonTitle, _ := lesson["title"].(string)

			if missing := missingKeys(lesson, lessonKeys); len(missing) > 0 {
				return nil, fmt.Errorf("Section %d (%s) lesson %d (%s) is missing required fields: %s", position, title, lessonPosition, lessonTitle, strings.Join(missing, ", "))
			}

			lessonType, _ := lesson["type"].(string)
			if !contains(lessonTypes, lessonType) {
				return nil, fmt.Errorf("Section %d (%s) lesson %d (%s) has an invalid type: %s", position, title, lessonPosition, lessonTitle, lessonType)
			}

			if !IsNumeric(lesson["duration"]) {
				return nil, fmt.Errorf("Section %d (%s) lesson %d (%s) has a non-numeric duration", position, title, lessonPosition, lessonTitle)
			}
		}
	}

	return sections, nil
}

// IsNumeric reports whether a decoded JSON value carries a numeric payload.
// Numeric strings are accepted the way the durations arrive from form posts.
func IsNumeric(value interface{}) bool {
	_, ok := NumericValue(value)
	return ok
}

// NumericValue extracts a numeric payload from a decoded JSON value
func NumericValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func sectionTitle(section map[string]interface{}) string {
	title, _ := section["title"].(string)
	return title
}

func missingKeys(payload map[string]interface{}, keys []string) []string {
	var missing []string
	for _, key := range keys {
		if _, ok := payload[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
