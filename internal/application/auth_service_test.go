package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aaronzito/api-web-encontrarte/internal/domain/entity"
	repo "github.com/Aaronzito/api-web-encontrarte/internal/domain/repository"
	"github.com/Aaronzito/api-web-encontrarte/pkg/helpers"
)

// fakeUserRepo keeps users in memory, handing out sequential ids the way the
// database would.
type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	// first match by id, emails are not unique
	var found *entity.User
	for _, u := range f.users {
		if u.Email == email && (found == nil || u.ID < found.ID) {
			found = u
		}
	}
	if found == nil {
		return nil, repo.ErrNotFound
	}
	cp := *found
	return &cp, nil
}

func (f *fakeUserRepo) UpdateImage(_ context.Context, id int64, image []byte) (int64, error) {
	u, ok := f.users[id]
	if !ok {
		return 0, nil
	}
	u.Image = image
	return 1, nil
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestAuthService(r repo.UserRepository) *AuthService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(r, jwt, nil, testLogger())
}

func TestRegisterStoresHashedCreator(t *testing.T) {
	r := newFakeUserRepo()
	svc := newTestAuthService(r)

	err := svc.Register(context.Background(), RegisterInput{
		Name:     "Frida",
		Lastname: "Kahlo",
		Email:    "frida@example.com",
		Password: "palette123",
		City:     "Coyoacan",
	})
	require.NoError(t, err)

	u, err := r.GetByEmail(context.Background(), "frida@example.com")
	require.NoError(t, err)
	assert.Equal(t, RoleCreator, u.Role)
	assert.NotEqual(t, "palette123", u.Password)
	assert.NoError(t, helpers.VerifyPassword(u.Password, "palette123"))
}

func TestLoginIssuesToken(t *testing.T) {
	r := newFakeUserRepo()
	svc := newTestAuthService(r)

	require.NoError(t, svc.Register(context.Background(), RegisterInput{
		Email:    "frida@example.com",
		Password: "palette123",
	}))

	u, token, err := svc.Login(context.Background(), "frida@example.com", "palette123")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.NotEmpty(t, token)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "frida@example.com", claims.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newFakeUserRepo()
	svc := newTestAuthService(r)

	require.NoError(t, svc.Register(context.Background(), RegisterInput{
		Email:    "frida@example.com",
		Password: "palette123",
	}))

	_, _, err := svc.Login(context.Background(), "frida@example.com", "not-it")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestGetUserNotFound(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateImageUnknownID(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	n, err := svc.UpdateImage(context.Background(), 99, []byte{0x01})
	require.NoError(t, err)
	assert.Zero(t, n)
}
