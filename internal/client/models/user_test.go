package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, User{Role: "admin"}.IsAdmin())
	assert.False(t, User{Role: "candidate"}.IsAdmin())
	assert.False(t, User{}.IsAdmin())
}

func TestUser_JSON(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Admin","email":"admin@example.com","role":"admin"}`), &u))
	assert.Equal(t, User{Name: "Admin", Email: "admin@example.com", Role: "admin"}, u)
}
