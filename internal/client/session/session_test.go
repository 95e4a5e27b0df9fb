package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func tokenFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "ludoan72", "token")
}

func TestStore_SetPersistsAcrossRestart(t *testing.T) {
	path := tokenFile(t)

	s := NewStore(path)
	require.False(t, s.LoggedIn())
	require.NoError(t, s.Set("abc.def.ghi"))

	// A fresh store over the same file sees the credential.
	s2 := NewStore(path)
	require.True(t, s2.LoggedIn())
	require.Equal(t, "abc.def.ghi", s2.Token())
}

func TestStore_ClearRemovesFile(t *testing.T) {
	path := tokenFile(t)

	s := NewStore(path)
	require.NoError(t, s.Set("tok"))
	s.Clear()

	require.False(t, s.LoggedIn())
	require.False(t, NewStore(path).LoggedIn())
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestStore_ExpiresWithin(t *testing.T) {
	s := NewStore(tokenFile(t))

	require.NoError(t, s.Set(signedToken(t, time.Now().Add(time.Minute))))
	require.True(t, s.ExpiresWithin(time.Hour))
	require.False(t, s.ExpiresWithin(time.Second))
}

func TestStore_ExpiresWithin_UnparseableToken(t *testing.T) {
	s := NewStore(tokenFile(t))
	require.NoError(t, s.Set("opaque-not-a-jwt"))

	// Left for the backend to judge.
	require.False(t, s.ExpiresWithin(time.Hour))
}

func TestStore_ExpiresWithin_Empty(t *testing.T) {
	s := NewStore(tokenFile(t))
	require.False(t, s.ExpiresWithin(time.Hour))
}
