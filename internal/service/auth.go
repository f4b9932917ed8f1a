package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipeai/backend/internal/apperrors"
	"github.com/pageza/recipeai/backend/internal/types"
)

const authService = "auth"

// Offline demo account accepted when the identity service cannot be reached
const (
	DemoUsername = "demouser"
	DemoPassword = "demo123"
)

// Token prefixes for sessions the gateway has to synthesize
const (
	upstreamTokenPrefix = "lambda-token-"
	demoTokenPrefix     = "demo-token-"
)

// AuthService forwards credentials to the remote identity endpoint. It keeps
// no state; credentials are discarded after the call.
type AuthService struct {
	client   *UpstreamClient
	url      string
	logger   *zap.Logger
	recorder UpstreamRecorder
	now      func() time.Time
}

// NewAuthService creates a new AuthService instance. recorder may be nil.
func NewAuthService(client *UpstreamClient, url string, logger *zap.Logger, recorder UpstreamRecorder) *AuthService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &AuthService{
		client:   client,
		url:      url,
		logger:   logger.Named("auth"),
		recorder: recorder,
		now:      time.Now,
	}
}

type remoteAuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    *types.User `json:"user"`
}

// Login authenticates cred against the identity service. Rejections come back
// as CodeInvalidCredentials; when the service is unreachable only the demo
// account is accepted.
func (s *AuthService) Login(ctx context.Context, cred types.Credential) (*types.Session, error) {
	log := s.logger.With(zap.String("username", cred.Username))

	resp, err := s.client.PostJSON(ctx, s.url, cred)
	if err != nil {
		if !apperrors.Is(err, apperrors.CodeUpstreamUnavailable) {
			return nil, err
		}
		log.Warn("identity service unreachable, using demo check", zap.Error(err))
		return s.demoLogin(cred)
	}

	if !resp.OK() {
		s.recorder.UpstreamCall(authService, OutcomeRejected)
		log.Info("login rejected", zap.Int("status", resp.StatusCode))
		return nil, apperrors.NewInvalidCredentialsError()
	}

	var remote remoteAuthResponse
	if err := json.Unmarshal(resp.Body, &remote); err != nil {
		// A 2xx with an unreadable body still counts as accepted
		log.Warn("unparseable identity response, synthesizing session", zap.Error(err))
		s.recorder.UpstreamCall(authService, OutcomeSuccess)
		return s.upstreamSession(cred, remoteAuthResponse{}), nil
	}
	if !remote.Success {
		s.recorder.UpstreamCall(authService, OutcomeRejected)
		log.Info("login rejected by identity service")
		return nil, apperrors.NewInvalidCredentialsError()
	}

	s.recorder.UpstreamCall(authService, OutcomeSuccess)
	log.Info("login succeeded")
	return s.upstreamSession(cred, remote), nil
}

func (s *AuthService) upstreamSession(cred types.Credential, remote remoteAuthResponse) *types.Session {
	session := &types.Session{Token: remote.Token}
	if session.Token == "" {
		session.Token = s.token(upstreamTokenPrefix)
	}
	if remote.User != nil {
		session.User = *remote.User
	} else {
		session.User = types.User{Username: cred.Username, Name: "User"}
	}
	return session
}

func (s *AuthService) demoLogin(cred types.Credential) (*types.Session, error) {
	if cred.Username != DemoUsername || cred.Password != DemoPassword {
		s.recorder.UpstreamCall(authService, OutcomeRejected)
		return nil, apperrors.NewInvalidCredentialsError()
	}
	s.recorder.UpstreamCall(authService, OutcomeDemo)
	s.logger.Info("demo login succeeded")
	return &types.Session{
		Token: s.token(demoTokenPrefix),
		User: types.User{
			ID:       "demo-user",
			Username: cred.Username,
			Name:     "Demo Chef",
		},
		Demo: true,
	}, nil
}

func (s *AuthService) token(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, s.now().UnixMilli())
}

// Logout has nothing to invalidate: sessions live only on the client
func (s *AuthService) Logout(ctx context.Context) error {
	s.logger.Debug("logout")
	return nil
}
