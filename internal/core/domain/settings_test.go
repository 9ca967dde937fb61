package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultBaseURL, s.API.BaseURL)
	assert.False(t, s.API.HasKey())
	assert.Zero(t, s.API.RequestsPerSecond)
	assert.Equal(t, "KS", s.Legislature.Jurisdiction)
	assert.Equal(t, SessionPolicyFirst, s.Legislature.SessionPolicy)
	assert.Empty(t, s.Committees.File)
}

func TestAPISettings_MaskedKey(t *testing.T) {
	assert.Empty(t, APISettings{}.MaskedKey())
	assert.Equal(t, "****", APISettings{Key: "abc"}.MaskedKey())
	assert.Equal(t, "****wxyz", APISettings{Key: "0123456789wxyz"}.MaskedKey())
}

func TestSessionPolicy_IsValid(t *testing.T) {
	assert.True(t, SessionPolicyFirst.IsValid())
	assert.True(t, SessionPolicyLatest.IsValid())
	assert.False(t, SessionPolicy("").IsValid())
	assert.False(t, SessionPolicy("newest").IsValid())
}

func TestSessionPolicy_Select(t *testing.T) {
	sessions := []Session{
		{ID: 1, YearStart: 2023, YearEnd: 2024},
		{ID: 2, YearStart: 2025, YearEnd: 2026},
		{ID: 3, YearStart: 2026, YearEnd: 2026},
		{ID: 4, YearStart: 2026, YearEnd: 2026},
	}

	assert.Equal(t, -1, SessionPolicyFirst.Select(nil))
	assert.Equal(t, -1, SessionPolicyLatest.Select([]Session{}))

	assert.Equal(t, 0, SessionPolicyFirst.Select(sessions))
	assert.Equal(t, 0, SessionPolicy("").Select(sessions))

	// Greatest end year, then greatest start year; the earlier tie wins.
	assert.Equal(t, 2, SessionPolicyLatest.Select(sessions))
}

func TestSession_YearRange(t *testing.T) {
	assert.Equal(t, "2025-2026", Session{YearStart: 2025, YearEnd: 2026}.YearRange())
	assert.Equal(t, "2024", Session{YearStart: 2024, YearEnd: 2024}.YearRange())
	assert.Equal(t, "2024", Session{YearStart: 2024}.YearRange())
	assert.Empty(t, Session{}.YearRange())
}

func TestPosition(t *testing.T) {
	assert.Equal(t, "Proponent", PositionSupport.Label())
	assert.Equal(t, "Neutral", PositionNeutral.Label())
	assert.Equal(t, "Opponent", PositionOppose.Label())
	assert.False(t, Position("maybe").IsValid())
}

func TestTestimony_Validate(t *testing.T) {
	valid := Testimony{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.org",
		BillNumber: "HB2001",
		Position:   PositionSupport,
		Body:       "I support this bill.",
		Date:       time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, valid.Validate())
	assert.Equal(t, "Ada Lovelace", valid.FullName())

	missing := valid
	missing.Email = " "
	missing.Body = ""
	err := missing.Validate()
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "email, testimony")

	badPosition := valid
	badPosition.Position = "maybe"
	assert.ErrorIs(t, badPosition.Validate(), ErrInvalidInput)
}
