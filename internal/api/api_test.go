package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"heavyrent-backend/config"
	"heavyrent-backend/internal/auth"
	"heavyrent-backend/internal/model"
	"heavyrent-backend/internal/service"
)

// fakeIdentity stands in for the Google code exchange.
type fakeIdentity struct {
	profile *auth.Profile
	err     error
}

func (f *fakeIdentity) AuthCodeURL(state string) string {
	return "https://accounts.example.com/o/oauth2/auth?state=" + state
}

func (f *fakeIdentity) Exchange(_ context.Context, _ string) (*auth.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

// recordingNotifier captures dispatched rental ids.
type recordingNotifier struct {
	ids []int64
}

func (n *recordingNotifier) Dispatch(rentalID int64) {
	n.ids = append(n.ids, rentalID)
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	tokens   *auth.TokenIssuer
	identity *fakeIdentity
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Machine{},
		&model.RentalRequest{},
		&model.PushSubscription{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	users := service.NewUsers(db)
	machines := service.NewMachines(db, users)
	rentals := service.NewRentals(db, machines)
	subscriptions := service.NewSubscriptions(db)

	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	identity := &fakeIdentity{profile: &auth.Profile{Email: "juan@example.com", Name: "Juan Perez"}}
	notifier := &recordingNotifier{}

	handler := NewHandler(HandlerConfig{
		Users:         users,
		Machines:      machines,
		Rentals:       rentals,
		Subscriptions: subscriptions,
		Tokens:        tokens,
		Identity:      identity,
		Notifier:      notifier,
		WebPush:       &webpush.Options{VAPIDPublicKey: "test-public-key"},
	})

	// Generous rate limit and no response cache so assertions always
	// see fresh state.
	router := NewRouter(handler, &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
	})

	return &testEnv{
		router:   router,
		db:       db,
		tokens:   tokens,
		identity: identity,
		notifier: notifier,
	}
}

// seedUser inserts a user directly into the store.
func (e *testEnv) seedUser(t *testing.T, name, email string) model.User {
	t.Helper()
	user := model.User{Name: name, Email: email, Role: model.RoleCustomer}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

// bearer mints a valid token for the given user.
func (e *testEnv) bearer(t *testing.T, user model.User) string {
	t.Helper()
	token, err := e.tokens.Generate(user.ID, user.Email)
	require.NoError(t, err)
	return token
}

// do performs a request against the router. A non-empty token is sent
// as a bearer credential.
func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
