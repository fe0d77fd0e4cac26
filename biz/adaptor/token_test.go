package adaptor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"school-api/biz/infrastructure/config"
	"school-api/biz/infrastructure/consts"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `Name: school-api-test
ListenOn: 127.0.0.1:0
Auth:
  SecretKey: "unit-test-secret"
  AccessExpire: 3600
Mongo:
  URL: mongodb://localhost:27017
  DB: school_test
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)
	_, err := config.NewConfig()
	require.NoError(t, err)
}

func TestJwtTokenRoundTrip(t *testing.T) {
	setupTestConfig(t)

	token, exp, err := GenerateJwtToken("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, exp, time.Now().Unix())

	meta, err := VerifyJwtToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", meta.GetUserId())
}

func TestVerifyJwtTokenRejects(t *testing.T) {
	setupTestConfig(t)

	good, _, err := GenerateJwtToken("user-123")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-123",
		"iat":    time.Now().Add(-2 * time.Hour).Unix(),
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	expiredString, err := expired.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-123",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	wrongKeyString, err := wrongKey.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noSubjectString, err := noSubject.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.token"},
		{"tampered", good + "x"},
		{"expired", expiredString},
		{"wrong key", wrongKeyString},
		{"missing userId", noSubjectString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := VerifyJwtToken(tt.token)
			assert.Nil(t, meta)
			assert.ErrorIs(t, err, consts.ErrNotAuthentication)
		})
	}
}
