package service

import (
	"context"
	"errors"

	"github.com/SalllesAndr/user-service/internal/db"
	"github.com/SalllesAndr/user-service/internal/model"
	"github.com/SalllesAndr/user-service/internal/repo"
	"github.com/SalllesAndr/user-service/internal/security"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	studentPrefix   = "stud"
	professorPrefix = "prof"
)

type UserService interface {
	Signup(ctx context.Context, req model.CreateUserRequest) (model.PublicUser, error)
	CreateProfessor(ctx context.Context, req model.CreateUserRequest) (model.PublicUser, error)
	// Login returns the user_id of the authenticated account.
	Login(ctx context.Context, req model.LoginRequest) (string, error)
	Delete(ctx context.Context, userID string) error
	Update(ctx context.Context, userID string, req model.UpdateUserRequest) (model.PublicUser, error)
	GetByUserID(ctx context.Context, userID string) (model.PublicUser, error)
	GetAll(ctx context.Context) ([]model.PublicUser, error)
	GetStudents(ctx context.Context) ([]model.PublicUser, error)
	GetProfessors(ctx context.Context) ([]model.PublicUser, error)
}

type userService struct {
	repo   repo.UserRepository
	logger *zap.Logger
}

func NewUserService(repo repo.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

func (s *userService) Signup(ctx context.Context, req model.CreateUserRequest) (model.PublicUser, error) {
	return s.create(ctx, req, studentPrefix, true)
}

func (s *userService) CreateProfessor(ctx context.Context, req model.CreateUserRequest) (model.PublicUser, error) {
	return s.create(ctx, req, professorPrefix, false)
}

// create runs the shared signup flow. The existence check and the insert are
// two separate store operations: concurrent requests with the same email can
// both pass the check and both insert.
func (s *userService) create(ctx context.Context, req model.CreateUserRequest, prefix string, isStudent bool) (model.PublicUser, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return model.PublicUser{}, err
	}
	if existing != nil {
		return model.PublicUser{}, ErrUserExists
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return model.PublicUser{}, err
	}

	user := model.User{
		UserID:    NewUserID(prefix),
		IsStudent: isStudent,
		Email:     req.Email,
		Username:  req.Username,
		Password:  hash,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return model.PublicUser{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.UserID),
		zap.Bool("isStudent", user.IsStudent),
	)

	return user.Public(), nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	// Unknown email and wrong password collapse into the same error so the
	// response does not reveal which emails are registered.
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := security.CheckPassword(user.Password, req.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	return user.UserID, nil
}

func (s *userService) Delete(ctx context.Context, userID string) error {
	deleted, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}

	s.logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}

func (s *userService) Update(ctx context.Context, userID string, req model.UpdateUserRequest) (model.PublicUser, error) {
	fields := bson.M{}
	if req.IsStudent != nil {
		fields["isStudent"] = *req.IsStudent
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}

	if len(fields) > 0 {
		matched, err := s.repo.UpdateByUserID(ctx, userID, fields)
		if err != nil {
			return model.PublicUser{}, err
		}
		if matched == 0 {
			return model.PublicUser{}, ErrUserNotFound
		}
	}

	user, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return model.PublicUser{}, err
	}
	if user == nil {
		return model.PublicUser{}, ErrUserNotFound
	}

	return user.Public(), nil
}

func (s *userService) GetByUserID(ctx context.Context, userID string) (model.PublicUser, error) {
	user, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return model.PublicUser{}, err
	}
	if user == nil {
		return model.PublicUser{}, ErrUserNotFound
	}
	return user.Public(), nil
}

func (s *userService) GetAll(ctx context.Context) ([]model.PublicUser, error) {
	return s.list(ctx, db.Empty())
}

func (s *userService) GetStudents(ctx context.Context) ([]model.PublicUser, error) {
	return s.list(ctx, db.NewFilter().Eq("isStudent", true).Build())
}

func (s *userService) GetProfessors(ctx context.Context) ([]model.PublicUser, error) {
	return s.list(ctx, db.NewFilter().Eq("isStudent", false).Build())
}

func (s *userService) list(ctx context.Context, filter bson.M) ([]model.PublicUser, error) {
	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, nil
}
