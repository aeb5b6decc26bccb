package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	userrepo "github.com/GlebRadaev/lwcoin/internal/repo/user-repo"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/GlebRadaev/lwcoin/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const referralCode = "79927398713"

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockBonuses, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	bonuses := NewMockBonuses(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, bonuses, hashService, jwtService)
	service.now = func() time.Time { return testNow }
	return service, repo, bonuses, hashService, jwtService
}

func createUser(t *testing.T, referredBy *int) func(context.Context, *domain.User) (*domain.User, error) {
	return func(_ context.Context, user *domain.User) (*domain.User, error) {
		assert.True(t, validate.IsLuhn(user.ReferralCode))
		assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), user.CurrentMonthStart)
		assert.Equal(t, referredBy, user.ReferredBy)
		user.ID = 1
		return user, nil
	}
}

func TestRegister(t *testing.T) {
	service, userRepo, bonuses, passwordHasher, _ := NewMock(t)
	referrerID := 5

	tests := []struct {
		name          string
		referralCode  string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createUser(t, nil))
				bonuses.EXPECT().GrantRegistrationBonus(gomock.Any(), 1).Return(nil)
			},
		},
		{
			name:         "Registration with referral",
			referralCode: referralCode,
			prepareMock: func() {
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), referralCode).Return(&domain.User{ID: referrerID}, nil)
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createUser(t, &referrerID))
				bonuses.EXPECT().GrantRegistrationBonus(gomock.Any(), 1).Return(nil)
				bonuses.EXPECT().GrantReferralBonus(gomock.Any(), referrerID, 1).Return(nil)
			},
		},
		{
			name: "Bonus failure still registers",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(createUser(t, nil))
				bonuses.EXPECT().GrantRegistrationBonus(gomock.Any(), 1).Return(errors.New("bonus not granted: db down"))
			},
		},
		{
			name:          "Referral code fails the check digit",
			referralCode:  "79927398710",
			prepareMock:   func() {},
			expectedError: ErrInvalidReferralCode,
		},
		{
			name:         "Unknown referral code",
			referralCode: referralCode,
			prepareMock: func() {
				userRepo.EXPECT().FindByReferralCode(gomock.Any(), referralCode).Return(nil, nil)
			},
			expectedError: ErrInvalidReferralCode,
		},
		{
			name: "User already exists",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(&domain.User{Login: "testuser"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name: "Error finding user",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Concurrent registration of the same login",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, userrepo.ErrDuplicateLogin)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name: "Error creating user",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "testuser", "testpassword", tt.referralCode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, user.ID)
			assert.Equal(t, "hashedpassword", user.PasswordHash)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)
	stored := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "Invalid credentials - user not found",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(stored, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "testuser", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, testNow.Add(tokenTTL)).Return("token", nil)
	jwtService.EXPECT().GenerateJWT(2, testNow.Add(tokenTTL)).Return("", errors.New("sign error"))

	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	_, err = service.GenerateToken(2)
	assert.EqualError(t, err, "sign error")
}

func TestLinkTelegram(t *testing.T) {
	service, userRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Linked",
			prepareMock: func() {
				userRepo.EXPECT().FindByTelegramID(gomock.Any(), int64(777)).Return(nil, nil)
				userRepo.EXPECT().LinkTelegram(gomock.Any(), 1, int64(777)).Return(nil)
			},
		},
		{
			name: "Already linked to the same user",
			prepareMock: func() {
				userRepo.EXPECT().FindByTelegramID(gomock.Any(), int64(777)).Return(&domain.User{ID: 1}, nil)
			},
		},
		{
			name: "Linked to another user",
			prepareMock: func() {
				userRepo.EXPECT().FindByTelegramID(gomock.Any(), int64(777)).Return(&domain.User{ID: 2}, nil)
			},
			expectedError: ErrTelegramTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.LinkTelegram(context.Background(), 1, 777)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
