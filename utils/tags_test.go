package utils

import (
	"fmt"
	"testing"

	"elearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringToArray(t *testing.T) {
	assert.Nil(t, StringToArray(nil))
	assert.Nil(t, StringToArray(""))
	assert.Nil(t, StringToArray("   "))

	assert.Equal(t, []string{"1", "2", "3"}, StringToArray("1, 2 ,3"))
	assert.Equal(t, []string{"go", "web"}, StringToArray([]string{" go", "web "}))
	assert.Equal(t, []string{"1", "go"}, StringToArray([]interface{}{float64(1), "go"}))
}

func TestResolveTagSnapshotsKeepsOrderAndDedupes(t *testing.T) {
	db := newTestDB(t)

	golang := models.Tag{Name: "Go", NameSlug: "go", Color: "#00ADD8"}
	web := models.Tag{Name: "Web", NameSlug: "web", Color: "#FF6B6B"}
	require.NoError(t, db.Create(&golang).Error)
	require.NoError(t, db.Create(&web).Error)

	spec := []interface{}{
		float64(web.ID),
		float64(golang.ID),
		float64(web.ID), // duplicate, dropped
	}

	snapshots, err := ResolveTagSnapshots(db, spec)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, models.TagSnapshot{ID: web.ID, Name: "Web", NameSlug: "web", Color: "#FF6B6B"}, snapshots[0])
	assert.Equal(t, models.TagSnapshot{ID: golang.ID, Name: "Go", NameSlug: "go", Color: "#00ADD8"}, snapshots[1])
}

func TestResolveTagSnapshotsSkipsNonNumericAndUnknown(t *testing.T) {
	db := newTestDB(t)

	golang := models.Tag{Name: "Go", NameSlug: "go"}
	require.NoError(t, db.Create(&golang).Error)

	spec := fmt.Sprintf("go, 999999, , %d", golang.ID)

	snapshots, err := ResolveTagSnapshots(db, spec)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, golang.ID, snapshots[0].ID)
}

func TestResolveTagSnapshotsEmptySpec(t *testing.T) {
	db := newTestDB(t)

	snapshots, err := ResolveTagSnapshots(db, nil)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}
