package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipeai/backend/internal/apperrors"
	"github.com/pageza/recipeai/backend/internal/types"
)

var fixedNow = time.UnixMilli(1700000000123)

func newAuthService(t *testing.T, url string) (*AuthService, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	svc := NewAuthService(NewUpstreamClient(200*time.Millisecond, ""), url, zaptest.NewLogger(t), rec)
	svc.now = func() time.Time { return fixedNow }
	return svc, rec
}

func authUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cred types.Credential
		require.NoError(t, json.NewDecoder(r.Body).Decode(&cred))
		assert.Equal(t, "chef", cred.Username)
		assert.Equal(t, "secret", cred.Password)
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

var chef = types.Credential{Username: "chef", Password: "secret"}

func TestLoginUpstreamSuccess(t *testing.T) {
	srv := authUpstream(t, http.StatusOK, `{"success":true,"token":"abc","user":{"id":"u1","name":"Chef","email":"chef@example.com"}}`)
	svc, rec := newAuthService(t, srv.URL)

	session, err := svc.Login(context.Background(), chef)
	require.NoError(t, err)
	assert.Equal(t, "abc", session.Token)
	assert.Equal(t, types.User{ID: "u1", Name: "Chef", Email: "chef@example.com"}, session.User)
	assert.False(t, session.Demo)
	assert.Equal(t, recordedCall{authService, OutcomeSuccess}, rec.last())
}

func TestLoginSynthesizesMissingFields(t *testing.T) {
	for name, body := range map[string]string{
		"missing fields": `{"success":true}`,
		"not json":       `OK`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := authUpstream(t, http.StatusOK, body)
			svc, _ := newAuthService(t, srv.URL)

			session, err := svc.Login(context.Background(), chef)
			require.NoError(t, err)
			assert.Equal(t, "lambda-token-1700000000123", session.Token)
			assert.Equal(t, types.User{Username: "chef", Name: "User"}, session.User)
		})
	}
}

func TestLoginRejected(t *testing.T) {
	for name, tc := range map[string]struct {
		status int
		body   string
	}{
		"unauthorized":  {http.StatusUnauthorized, `{"success":false,"message":"wrong password for chef"}`},
		"server error":  {http.StatusInternalServerError, `boom`},
		"success false": {http.StatusOK, `{"success":false,"message":"nope"}`},
	} {
		t.Run(name, func(t *testing.T) {
			srv := authUpstream(t, tc.status, tc.body)
			svc, rec := newAuthService(t, srv.URL)

			session, err := svc.Login(context.Background(), chef)
			assert.Nil(t, session)
			assert.True(t, apperrors.Is(err, apperrors.CodeInvalidCredentials))
			assert.NotContains(t, err.Error(), "wrong password")
			assert.Equal(t, recordedCall{authService, OutcomeRejected}, rec.last())
		})
	}
}

func TestLoginDemoFallback(t *testing.T) {
	svc, rec := newAuthService(t, closedURL(t))

	session, err := svc.Login(context.Background(), types.Credential{Username: DemoUsername, Password: DemoPassword})
	require.NoError(t, err)
	assert.Equal(t, "demo-token-1700000000123", session.Token)
	assert.Equal(t, types.User{ID: "demo-user", Username: "demouser", Name: "Demo Chef"}, session.User)
	assert.True(t, session.Demo)
	assert.Equal(t, recordedCall{authService, OutcomeDemo}, rec.last())

	_, err = svc.Login(context.Background(), types.Credential{Username: DemoUsername, Password: "wrong"})
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidCredentials))
}

func TestLoginTimeoutUsesDemoCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	svc, _ := newAuthService(t, srv.URL)
	start := time.Now()
	_, err := svc.Login(context.Background(), chef)
	assert.True(t, apperrors.Is(err, apperrors.CodeInvalidCredentials))
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestLogout(t *testing.T) {
	svc, _ := newAuthService(t, closedURL(t))
	assert.NoError(t, svc.Logout(context.Background()))
}
