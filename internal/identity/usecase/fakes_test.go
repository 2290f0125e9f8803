package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/secureauth/internal/identity/entity"
	"github.com/shandysiswandi/secureauth/internal/pkg/config"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/hash"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/shandysiswandi/secureauth/internal/pkg/jwt"
	"github.com/shandysiswandi/secureauth/internal/pkg/otp"
	"github.com/shandysiswandi/secureauth/internal/pkg/validator"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type seqNumber struct {
	mu sync.Mutex
	n  int64
}

func (s *seqNumber) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return 1000 + s.n
}

type seqString struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (s *seqString) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

// memRepo is an in-memory repoDB. User ids start at 1 like BIGSERIAL.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
	otps   []*entity.OTP

	lookups int

	failGetUser error
	failSaveOTP error
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[int64]*entity.User{}}
}

func (m *memRepo) CreateUser(_ context.Context, in entity.NewUser) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == in.Username {
			return 0, entity.ErrDuplicateUsername
		}
		if u.Email == in.Email {
			return 0, entity.ErrDuplicateEmail
		}
	}

	m.nextID++
	m.users[m.nextID] = &entity.User{
		ID:           m.nextID,
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: in.PasswordHash,
		CreatedAt:    in.CreatedAt,
		IsActive:     true,
	}
	return m.nextID, nil
}

func (m *memRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failGetUser != nil {
		return nil, m.failGetUser
	}
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (m *memRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failGetUser != nil {
		return nil, m.failGetUser
	}
	u, ok := m.users[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return goerror.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (m *memRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return goerror.ErrNotFound
	}
	u.LastLogin = &at
	return nil
}

func (m *memRepo) SaveOTP(_ context.Context, o entity.OTP, revokePrevious bool) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failSaveOTP != nil {
		return 0, m.failSaveOTP
	}
	if revokePrevious {
		for _, prev := range m.otps {
			if prev.UserID == o.UserID && !prev.IsUsed {
				prev.IsRevoked = true
			}
		}
	}
	m.otps = append(m.otps, &o)
	return o.ID, nil
}

func (m *memRepo) GetValidOTP(_ context.Context, userID int64, codeDigest string, now time.Time) (*entity.OTP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups++
	var best *entity.OTP
	for _, o := range m.otps {
		if o.UserID != userID || o.Code != codeDigest || !o.Usable(now) {
			continue
		}
		if best == nil || o.CreatedAt.After(best.CreatedAt) ||
			(o.CreatedAt.Equal(best.CreatedAt) && o.ID > best.ID) {
			best = o
		}
	}
	if best == nil {
		return nil, goerror.ErrNotFound
	}
	cp := *best
	return &cp, nil
}

func (m *memRepo) MarkOTPUsed(_ context.Context, id int64, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, o := range m.otps {
		if o.ID == id && !o.IsUsed && !o.IsRevoked {
			o.IsUsed = true
			o.UsedAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) user(id int64) entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.users[id]
}

type memCache struct {
	mu         sync.Mutex
	challenges map[string]LoginChallenge
	revoked    map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{challenges: map[string]LoginChallenge{}, revoked: map[string]time.Duration{}}
}

func (c *memCache) SaveChallenge(_ context.Context, tokenDigest string, ch LoginChallenge, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.challenges[tokenDigest] = ch
	return nil
}

func (c *memCache) GetChallenge(_ context.Context, tokenDigest string) (*LoginChallenge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.challenges[tokenDigest]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &ch, nil
}

func (c *memCache) DeleteChallenge(_ context.Context, tokenDigest string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.challenges, tokenDigest)
	return nil
}

func (c *memCache) RevokeSession(_ context.Context, tokenID string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revoked[tokenID] = ttl
	return nil
}

type memMessaging struct {
	mu         sync.Mutex
	registered []UserRegisteredEvent
	logins     []UserLoginEvent
}

func (m *memMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registered = append(m.registered, msg)
	return nil
}

func (m *memMessaging) PublishUserLogin(_ context.Context, msg UserLoginEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins = append(m.logins, msg)
	return nil
}

func (m *memMessaging) statuses() []entity.LoginStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.LoginStatus, 0, len(m.logins))
	for _, l := range m.logins {
		out = append(out, l.Status)
	}
	return out
}

// fakeNotifier records every code it was asked to send.
type fakeNotifier struct {
	mu    sync.Mutex
	fail  bool
	codes map[string][]string
}

func (n *fakeNotifier) SendOTP(_ context.Context, address, _, code string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return false
	}
	if n.codes == nil {
		n.codes = map[string][]string{}
	}
	n.codes[address] = append(n.codes[address], code)
	return true
}

func (n *fakeNotifier) last(address string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	codes := n.codes[address]
	if len(codes) == 0 {
		return ""
	}
	return codes[len(codes)-1]
}

const testConfig = `
modules:
  identity:
    login_challenge_ttl_minutes: 10
    password:
      enforce_strength: true
    otp:
      ttl_minutes: 5
      revoke_previous_on_issue: %t
`

type suite struct {
	uc       *Usecase
	repo     *memRepo
	cache    *memCache
	msg      *memMessaging
	notifier *fakeNotifier
	clock    *fixedClock
	jwt      *jwt.Symmetric
	hmac     *hash.HMACSHA256
}

type suiteOption func(*suiteConfig)

type suiteConfig struct {
	revoke bool
}

func withoutRevoke() suiteOption {
	return func(c *suiteConfig) { c.revoke = false }
}

func newSuite(t *testing.T, opts ...suiteOption) *suite {
	t.Helper()

	sc := suiteConfig{revoke: true}
	for _, opt := range opts {
		opt(&sc)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(fmt.Sprintf(testConfig, sc.revoke)))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	gen, err := otp.NewNumeric(otp.DefaultLength)
	require.NoError(t, err)

	clk := &fixedClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}

	signer, err := jwt.NewHS512(jwt.Config{
		Secret: []byte(strings.Repeat("s", 64)),
		Issuer: "secureauth",
		TTL:    30 * time.Minute,
		Clock:  clk,
		UUID:   &seqString{prefix: "jti"},
	})
	require.NoError(t, err)

	s := &suite{
		repo:     newMemRepo(),
		cache:    newMemCache(),
		msg:      &memMessaging{},
		notifier: &fakeNotifier{},
		clock:    clk,
		jwt:      signer,
		hmac:     hash.NewHMACSHA256("otp-secret"),
	}

	s.uc = New(Dependency{
		RepoDB:        s.repo,
		RepoCache:     s.cache,
		RepoMessaging: s.msg,
		Notifier:      s.notifier,
		Validator:     v,
		Config:        cfg,
		HMAC:          s.hmac,
		Password:      hash.NewMulti(hash.NewBcrypt(bcrypt.MinCost, ""), hash.NewArgon2id("")),
		OTP:           gen,
		UID:           &seqNumber{},
		UUID:          &seqString{prefix: "evt"},
		Token:         &seqString{prefix: "challenge"},
		Clock:         clk,
		JWT:           signer,
		Instrument:    instrument.NewNoop(),
	})

	return s
}

func (s *suite) register(t *testing.T, username, email, password string) int64 {
	t.Helper()
	out, err := s.uc.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return out.UserID
}

func (s *suite) activeOTPs(userID int64) int {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()
	return len(slices.DeleteFunc(slices.Clone(s.repo.otps), func(o *entity.OTP) bool {
		return o.UserID != userID || !o.Usable(s.clock.Now())
	}))
}
