package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("31-12-2020")
	require.NoError(t, err)
	require.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), d)

	for in, want := range map[string]time.Time{
		"1-1-2020":   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		"01-01-2020": time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		"5-11-2021":  time.Date(2021, 11, 5, 0, 0, 0, 0, time.UTC),
	} {
		d, err := ParseDate(in)
		require.NoError(t, err, in)
		require.Equal(t, want, d, in)
	}

	for _, bad := range []string{"bad-date", "2020-12-31", "31/12/2020", "32-01-2020", "31-02-2020", "1-1-20", ""} {
		_, err := ParseDate(bad)
		require.Error(t, err, bad)
	}
}

func TestExperienceValidation(t *testing.T) {
	v := NewValidator()
	good := ExperienceItem{
		Name: "dev", Desc: "d", Skills: []string{"go"},
		StartDate: "01-01-2020", EndDate: "31-12-2020",
	}
	require.NoError(t, v.Struct(&CreateExperienceRequest{Item: []ExperienceItem{good}}))

	t.Run("empty batch", func(t *testing.T) {
		require.Error(t, v.Struct(&CreateExperienceRequest{}))
		require.Error(t, v.Struct(&CreateExperienceRequest{Item: []ExperienceItem{}}))
	})

	t.Run("bad date on second item", func(t *testing.T) {
		bad := good
		bad.StartDate = "bad-date"
		err := v.Struct(&CreateExperienceRequest{Item: []ExperienceItem{good, bad}})
		require.Error(t, err)
		require.Contains(t, err.Error(), "Item[1].StartDate")
		require.Contains(t, err.Error(), "dmy")
	})

	t.Run("skills", func(t *testing.T) {
		noSkills := good
		noSkills.Skills = nil
		require.Error(t, v.Struct(&CreateExperienceRequest{Item: []ExperienceItem{noSkills}}))

		blankSkill := good
		blankSkill.Skills = []string{"go", ""}
		require.Error(t, v.Struct(&CreateExperienceRequest{Item: []ExperienceItem{blankSkill}}))
	})
}

func TestRequestValidation(t *testing.T) {
	v := NewValidator()
	require.NoError(t, v.Struct(&CreateUserRequest{Name: "a", Email: "a@b.io", Password: "p"}))
	require.Error(t, v.Struct(&CreateUserRequest{Name: "a", Email: "nope", Password: "p"}))
	require.Error(t, v.Struct(&CreateUserRequest{Name: "a", Email: "a@b.io"}))

	require.NoError(t, v.Struct(&ListUsersRequest{Skip: 0, Limit: 1000}))
	require.Error(t, v.Struct(&ListUsersRequest{Skip: -1, Limit: 10}))

	require.Error(t, v.Struct(&UpdateComponentRequest{Title: "t", Summary: "s", Link: "l"}))
	require.NoError(t, v.Struct(&UpdateComponentRequest{ID: 1, Title: "t", Summary: "s", Link: "l"}))

	require.Error(t, v.Struct(&CreateContactRequest{Name: "n", Email: "bad", Msg: "m"}))
}
