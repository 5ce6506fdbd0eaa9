package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hrmportal/internal/common"
	"github.com/dmitrijs2005/hrmportal/internal/dbx"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyToken = errors.New("session token is empty")

// Session is what a successful login leaves behind.
type Session struct {
	Token     string
	TokenType string
	// ExpiresIn is the token lifetime in seconds as reported at login; zero
	// when the backend did not say.
	ExpiresIn int64
	User      *models.UserSummary
}

// DB is satisfied by *sql.DB.
type DB interface {
	dbx.DBTX
	dbx.TxBeginner
}

type Store struct {
	db  DB
	log logging.Logger

	// writeMu serializes Save, Clear and expiry so a token check and the
	// teardown that follows it cannot interleave with a new login.
	writeMu sync.Mutex

	mu       sync.RWMutex
	current  *Session
	issuedAt time.Time

	listenersMu sync.Mutex
	listeners   []func()

	now func() time.Time
}

func NewStore(db DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, now: time.Now}
}

// OnExpire registers fn to be called after every forced expiry.
func (s *Store) OnExpire(fn func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Load reads the persisted session, if any, into memory.
func (s *Store) Load(ctx context.Context) error {

	values, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	token := strings.Trim(strings.TrimSpace(string(values[common.AccessTokenKey])), `"`)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		s.current = nil
		return nil
	}

	sess := &Session{
		Token:     token,
		TokenType: string(values[common.TokenTypeKey]),
	}

	if raw := values[common.ExpiresInKey]; len(raw) > 0 {
		if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
			sess.ExpiresIn = n
		}
	}

	if raw := values[common.UserKey]; len(raw) > 0 {
		var u models.UserSummary
		if err := json.Unmarshal(raw, &u); err != nil {
			s.log.Warn(ctx, "cached user is not valid JSON, ignoring", "error", err)
		} else {
			sess.User = &u
		}
	}

	s.current = sess
	s.issuedAt = time.Time{}
	return nil
}

// Save persists sess in a single transaction, replacing whatever was stored.
func (s *Store) Save(ctx context.Context, sess Session) error {

	if sess.Token == "" {
		return ErrEmptyToken
	}

	var user []byte
	if sess.User != nil {
		b, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("encode user: %w", err)
		}
		user = b
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		if err := repo.Delete(ctx, common.SessionKeys...); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.AccessTokenKey, []byte(sess.Token)); err != nil {
			return err
		}
		if user != nil {
			if err := repo.Set(ctx, common.UserKey, user); err != nil {
				return err
			}
		}
		if sess.TokenType != "" {
			if err := repo.Set(ctx, common.TokenTypeKey, []byte(sess.TokenType)); err != nil {
				return err
			}
		}
		if sess.ExpiresIn > 0 {
			if err := repo.Set(ctx, common.ExpiresInKey, []byte(strconv.FormatInt(sess.ExpiresIn, 10))); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	cp := sess
	if sess.User != nil {
		u := *sess.User
		cp.User = &u
	}

	s.mu.Lock()
	s.current = &cp
	s.issuedAt = s.now()
	s.mu.Unlock()

	return nil
}

// Clear removes every session key. Calling it without a session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.clear(ctx)
}

func (s *Store) clear(ctx context.Context) error {

	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, common.SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.issuedAt = time.Time{}
	s.mu.Unlock()

	return nil
}

// Expire tears the session down after the backend rejected the token and
// then notifies the OnExpire listeners. The in-memory session is dropped even
// if the persisted copy could not be deleted.
func (s *Store) Expire(ctx context.Context) {
	s.writeMu.Lock()
	s.teardown(ctx)
	s.writeMu.Unlock()

	s.notify()
}

// ExpireToken expires the session only while token is still the current one.
// A rejection of a token that was already replaced by a newer login, or of
// no token at all, leaves the store untouched. It reports whether the
// session was expired.
func (s *Store) ExpireToken(ctx context.Context, token string) bool {
	s.writeMu.Lock()
	if token == "" || s.Token() != token {
		s.writeMu.Unlock()
		s.log.Debug(ctx, "ignoring rejection of a stale token")
		return false
	}
	s.teardown(ctx)
	s.writeMu.Unlock()

	s.notify()
	return true
}

// teardown must run with writeMu held.
func (s *Store) teardown(ctx context.Context) {
	if err := s.clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear expired session", "error", err)
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
	}

	s.log.Info(ctx, "session expired")
}

func (s *Store) notify() {
	s.listenersMu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// CurrentUser returns a copy of the cached profile, or nil.
func (s *Store) CurrentUser() *models.UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.User == nil {
		return nil
	}
	u := *s.current.User
	return &u
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// ExpiresAt reports when the token stops being valid, preferring the JWT exp
// claim over expires_in. The claim is read without verifying the signature,
// so the value is informative only.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return time.Time{}, false
	}

	if exp, ok := tokenExpiry(s.current.Token); ok {
		return exp, true
	}

	if s.current.ExpiresIn > 0 && !s.issuedAt.IsZero() {
		return s.issuedAt.Add(time.Duration(s.current.ExpiresIn) * time.Second), true
	}

	return time.Time{}, false
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
