package service

import (
	"fmt"
	"strconv"

	"github.com/clubhub/clubhub-backend/internal/common"
	"github.com/clubhub/clubhub-backend/internal/domain"
	"github.com/clubhub/clubhub-backend/internal/repository"
	"github.com/clubhub/clubhub-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles member authentication
type AuthService struct {
	memberRepo repository.MemberRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(memberRepo repository.MemberRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		jwtManager: jwtManager,
	}
}

// LoginResponse represents a successful login or refresh
type LoginResponse struct {
	Member       *domain.Member `json:"member"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
}

// Login authenticates a member by username and password.
func (s *AuthService) Login(username, password string) (*LoginResponse, error) {
	if username == "" || password == "" {
		return nil, common.ErrInvalidInput
	}

	member, err := s.memberRepo.FindByUsername(username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if member.Status != domain.MemberStatusActive {
		return nil, common.ErrForbidden
	}

	if bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.tokenPair(member)
}

// RefreshToken validates a refresh token and issues a new token pair.
func (s *AuthService) RefreshToken(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	member, err := s.memberRepo.FindByID(id)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	return s.tokenPair(member)
}

// GetCurrentMember returns the member for the given ID.
func (s *AuthService) GetCurrentMember(memberID uint64) (*domain.Member, error) {
	return s.memberRepo.FindByID(memberID)
}

func (s *AuthService) tokenPair(member *domain.Member) (*LoginResponse, error) {
	idStr := strconv.FormatUint(member.ID, 10)
	access, err := s.jwtManager.GenerateAccessToken(idStr, member.Nickname, int(member.Level))
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(idStr)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		Member:       member,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
