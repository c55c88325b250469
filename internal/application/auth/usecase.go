package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
	"github.com/jobforge/jobwork-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg}
}

// Register creates a user with a bcrypt-hashed password, optionally creating
// their company in the same call. The role must be buyer or supplier: admin
// accounts are provisioned out of band, there is no self-promotion path.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.RegistrableRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	companyID := ""
	if in.Company != nil {
		company := &entity.Company{
			ID:             uuid.New().String(),
			Name:           in.Company.Name,
			RegistrationNo: in.Company.RegistrationNo,
			TaxID:          in.Company.TaxID,
			Address:        in.Company.Address,
			City:           in.Company.City,
			Country:        in.Company.Country,
			Status:         "active",
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.companyRepo.Create(ctx, company); err != nil {
			return nil, err
		}
		companyID = company.ID
	}

	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         in.Role,
		CompanyID:    companyID,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifies email/password and returns a signed token plus the user.
// Unknown email and wrong password yield the same error so the response
// never reveals whether an account exists.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ToUserResponse maps a user entity to its API shape.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
