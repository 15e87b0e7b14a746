package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cradlekit/cradle/store"
)

type fakeUserFinder struct {
	users map[int32]*store.User
}

func (f *fakeUserFinder) GetUser(_ context.Context, find *store.FindUser) (*store.User, error) {
	if find.ID == nil {
		return nil, nil
	}
	return f.users[*find.ID], nil
}

func TestAuthenticator(t *testing.T) {
	finder := &fakeUserFinder{users: map[int32]*store.User{
		1: {ID: 1, Username: "parent", RowStatus: store.Normal},
		2: {ID: 2, Username: "gone", RowStatus: store.Archived},
	}}
	a := NewAuthenticator(finder, "test-secret-that-is-long-enough")
	now := time.Now()

	t.Run("round trip", func(t *testing.T) {
		token, err := a.GenerateAccessToken(1, now)
		require.NoError(t, err)

		user, err := a.Authenticate(context.Background(), "Bearer "+token)
		require.NoError(t, err)
		require.Equal(t, int32(1), user.ID)
		require.Equal(t, "parent", user.Username)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := a.Authenticate(context.Background(), "")
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := a.Authenticate(context.Background(), "Bearer not.a.token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthenticator(finder, "another-secret-entirely-different")
		token, err := other.GenerateAccessToken(1, now)
		require.NoError(t, err)

		_, err = a.Authenticate(context.Background(), "Bearer "+token)
		require.Error(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		token, err := a.GenerateAccessToken(99, now)
		require.NoError(t, err)

		_, err = a.Authenticate(context.Background(), "Bearer "+token)
		require.Error(t, err)
	})

	t.Run("archived user rejected", func(t *testing.T) {
		token, err := a.GenerateAccessToken(2, now)
		require.NoError(t, err)

		_, err = a.Authenticate(context.Background(), "Bearer "+token)
		require.Error(t, err)
	})
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, UserFromContext(ctx))

	user := &store.User{ID: 7}
	ctx = SetUserInContext(ctx, user)
	require.Equal(t, user, UserFromContext(ctx))
}
