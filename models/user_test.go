package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSON_HidesPassword(t *testing.T) {
	u := User{ID: "USR001", Username: "admin", Password: "$2a$12$hash"}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$12$hash")
}

func TestUserJSON_OmitsLastLoginWhenNeverLoggedIn(t *testing.T) {
	u := User{ID: "USR001", Username: "admin"}

	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "lastLogin")

	at := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	u.LastLogin = &at
	raw, err = json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"lastLogin":"2026-08-30T09:00:00Z"`)
}
