package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"elearn/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var numericPattern = regexp.MustCompile(`^[0-9]+$`)

// StringToArray normalizes a caller-supplied list field. Callers send either
// a comma separated string or a JSON list; both come out as trimmed tokens.
func StringToArray(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		tokens := make([]string, 0, len(parts))
		for _, part := range parts {
			tokens = append(tokens, strings.TrimSpace(part))
		}
		return tokens
	case []string:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			tokens = append(tokens, strings.TrimSpace(item))
		}
		return tokens
	case []interface{}:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			tokens = append(tokens, strings.TrimSpace(fmt.Sprintf("%v", item)))
		}
		return tokens
	default:
		return []string{strings.TrimSpace(fmt.Sprintf("%v", v))}
	}
}

// ResolveTagSnapshots maps numeric tokens in the tag specifier to frozen
// {id, name, name_slug, color} snapshots, keeping source order and skipping
// duplicates. Non-numeric and unknown tokens are silently dropped.
func ResolveTagSnapshots(db *gorm.DB, spec interface{}) ([]models.TagSnapshot, error) {
	tokens := StringToArray(spec)

	seen := make(map[uint]bool)
	snapshots := []models.TagSnapshot{}

	for _, token := range tokens {
		if token == "" || !numericPattern.MatchString(token) {
			continue
		}

		id, err := strconv.Atoi(token)
		if err != nil {
			continue
		}

		var tag models.Tag
		if err := db.Where("id = ?", id).First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true

		// snapshot without the volatile timestamp fields
		snapshots = append(snapshots, models.TagSnapshot{
			ID:       tag.ID,
			Name:     tag.Name,
			NameSlug: tag.NameSlug,
			Color:    tag.Color,
		})
	}

	return snapshots, nil
}

// MarshalJSONField serializes a free-form payload field for storage.
// Structured input is stored as JSON; plain strings are stored as a JSON
// string so the response layer can round-trip either shape.
func MarshalJSONField(value interface{}) datatypes.JSON {
	if value == nil {
		return nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return datatypes.JSON(encoded)
}
