package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojaviva/estoque-api/internal/application/auth"
	"github.com/lojaviva/estoque-api/internal/application/dto"
	"github.com/lojaviva/estoque-api/internal/domain"
	"github.com/lojaviva/estoque-api/internal/domain/entity"
	pkgjwt "github.com/lojaviva/estoque-api/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "estoque-api-test"}

func TestRegisterUser_HasheiaSenhaEDefinePapelPadrao(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	user, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:    "maria@example.com",
		Password: "senha-forte-123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleVendedor, user.Role, "papel padrão é vendedor")

	stored := repo.byEmail["maria@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte-123", stored.PasswordHash, "senha nunca é persistida em claro")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "maria@example.com", Password: "senha-forte-123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "maria@example.com", Password: "outra-senha-456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_SenhaCurta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "maria@example.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenCarregaPapel(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "senha-forte-123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "senha-forte-123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredenciaisInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "maria@example.com", Password: "senha-forte-123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "maria@example.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ninguem@example.com", Password: "senha-forte-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
