package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestIssueParse_RoundTrip(t *testing.T) {
	m := NewManager("s3cret", time.Hour, true)
	ck, err := m.Issue("user-42")
	require.NoError(t, err)
	assert.Equal(t, CookieName, ck.Name)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)

	uid, err := m.Parse(ck.Value)
	require.NoError(t, err)
	assert.Equal(t, "user-42", uid)
}

func TestParse_Rejects(t *testing.T) {
	m := NewManager("s3cret", time.Hour, false)
	ck, err := m.Issue("user-1")
	require.NoError(t, err)

	other := NewManager("different", time.Hour, false)
	_, err = other.Parse(ck.Value)
	assert.ErrorIs(t, err, ErrInvalid, "wrong secret")

	_, err = m.Parse(ck.Value + "x")
	assert.ErrorIs(t, err, ErrInvalid, "tampered")

	_, err = m.Parse("")
	assert.ErrorIs(t, err, ErrInvalid, "empty")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Parse(none)
	assert.ErrorIs(t, err, ErrInvalid, "alg none")
}

func TestParse_Expired(t *testing.T) {
	m := NewManager("s3cret", time.Minute, false)
	start := time.Now()
	m.now = func() time.Time { return start }
	ck, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = m.Parse(ck.Value)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestClear(t *testing.T) {
	ck := NewManager("s", time.Hour, false).Clear()
	assert.Equal(t, CookieName, ck.Name)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}
