package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := NewStore().Get()

	assert.Equal(t, "PM Assistant MVP", s.General.AppName)
	assert.Equal(t, "system", s.General.Theme)
	assert.True(t, s.General.AutoSave)
	assert.True(t, s.Notifications.RiskAlerts)
	assert.Equal(t, 365, s.Advanced.DataRetention)
	assert.Equal(t, "weekly", s.Advanced.BackupFrequency)
}

func TestUpdateReplacesOnlyGivenGroups(t *testing.T) {
	store := NewStore()

	updated := store.Update(Patch{
		General: &General{AppName: "Other", Theme: "dark"},
	})

	assert.Equal(t, "Other", updated.General.AppName)
	assert.Equal(t, "dark", updated.General.Theme)
	// groups absent from the patch are untouched
	assert.Equal(t, 365, updated.Advanced.DataRetention)
	assert.True(t, updated.Notifications.TaskDeadlines)

	// the replaced group is replaced wholesale, not merged field-wise
	assert.False(t, updated.General.AutoSave)
}

func TestUpdateAdvanced(t *testing.T) {
	store := NewStore()

	store.Update(Patch{Advanced: &Advanced{DebugMode: true, DataRetention: 30, BackupFrequency: "daily"}})
	current := store.Get()

	assert.True(t, current.Advanced.DebugMode)
	assert.Equal(t, 30, current.Advanced.DataRetention)
	assert.Equal(t, "daily", current.Advanced.BackupFrequency)
	assert.Equal(t, "PM Assistant MVP", current.General.AppName)
}
