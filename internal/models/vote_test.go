package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyStatus(t *testing.T) {
	tests := []struct {
		tally Tally
		want  Status
	}{
		{Tally{}, StatusUnverified},
		{Tally{Yes: 3}, StatusVerified},
		{Tally{Yes: 4}, StatusVerified},
		{Tally{Yes: 3, No: 3}, StatusUnverified},
		{Tally{Yes: 1, No: 3}, StatusFalse},
		{Tally{Yes: 2, No: 2, NotSure: 5}, StatusUnverified},
		{Tally{Yes: 4, No: 3}, StatusVerified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tally.Status(), "%+v", tt.tally)
	}
}

func TestRoleCategories(t *testing.T) {
	assert.Equal(t, []Category{CategoryMedical}, RoleMedical.Categories())
	assert.Equal(t, []Category{CategoryCrime}, RolePolice.Categories())
	assert.Equal(t, []Category{CategoryAccident}, RoleTraffic.Categories())
	assert.ElementsMatch(t, AllCategories, RoleDisaster.Categories())
	assert.Empty(t, Role("janitor").Categories())
	assert.False(t, Role("janitor").Valid())
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusFalse.IsTrust())
	assert.False(t, StatusInProgress.IsTrust())
	assert.True(t, StatusResolved.IsClosed())
	assert.True(t, StatusFalse.IsClosed())
	assert.False(t, StatusVerified.IsClosed())
	assert.False(t, StatusVerified.ResponderSettable())
}
