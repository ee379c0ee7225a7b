package commands

import (
	"context"

	"hothour/internal/domain/user"
	reqdto "hothour/internal/handler/dto/request"
	"hothour/internal/infra"
	"hothour/internal/pkg/errs"
	"hothour/internal/pkg/jwt"
	"hothour/internal/pkg/password"
	"hothour/internal/usecase/queries"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrUserValidation     = errs.New("user validation error")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (int64, error) {
	hashed, err := password.HashPassword(req.Password)
	if err != nil {
		return 0, errs.Mark(err, ErrUserValidation)
	}

	entity, err := user.NewUser(req.Email, hashed, req.Name, user.RoleUser, user.Gender(req.Gender))
	if err != nil {
		return 0, errs.Mark(err, ErrUserValidation)
	}

	id, err := a.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return 0, ErrEmailTaken
		}
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	// Not-found and wrong-password collapse into the same error so the
	// endpoint cannot be used to enumerate accounts.
	entity, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(entity.HashedPassword(), req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:     entity.ID(),
			Email:  entity.Email(),
			Name:   entity.FullName(),
			Gender: entity.Gender().String(),
			Role:   entity.Role().String(),
		},
	}, nil
}
