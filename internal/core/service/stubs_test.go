package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/password"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/token"
)

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByResetToken(_ context.Context, email, resetToken string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.ResetToken != "" && u.ResetToken == resetToken && u.ResetTokenExpiry.After(time.Now()) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

type revocation struct {
	expiresAt time.Time
	reason    domain.RevocationReason
}

type stubBlacklist struct {
	mu      sync.Mutex
	revoked map[string]revocation
}

func newStubBlacklist() *stubBlacklist {
	return &stubBlacklist{revoked: make(map[string]revocation)}
}

func (b *stubBlacklist) Revoke(_ context.Context, tok, _ string, expiresAt time.Time, reason domain.RevocationReason) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.revoked[tok]; exists {
		return nil
	}
	b.revoked[tok] = revocation{expiresAt: expiresAt, reason: reason}
	return nil
}

func (b *stubBlacklist) IsRevoked(_ context.Context, tok string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, ok := b.revoked[tok]
	return ok && entry.expiresAt.After(time.Now()), nil
}

type stubSessions struct {
	mu      sync.Mutex
	entries map[string]string
	touched int
}

func newStubSessions() *stubSessions {
	return &stubSessions{entries: make(map[string]string)}
}

func (s *stubSessions) CreateSession(_ context.Context, userID, tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = tok
	return nil
}

func (s *stubSessions) RemoveSession(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

func (s *stubSessions) CurrentToken(_ context.Context, userID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.entries[userID]
	return tok, ok, nil
}

func (s *stubSessions) Touch(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[userID]; ok {
		s.touched++
	}
	return nil
}

type stubMailer struct {
	mu      sync.Mutex
	sent    []ports.EmailMessage
	failErr error
}

func (m *stubMailer) Send(_ context.Context, msg ports.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

type stubBookRepo struct {
	mu       sync.Mutex
	books    map[string]*domain.Book
	seq      int
	lastList ports.ListBooksQuery
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: make(map[string]*domain.Book)}
}

func cloneBook(b *domain.Book) *domain.Book {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.books {
		if b.ISBN == book.ISBN && b.CreatedBy == book.CreatedBy {
			return nil, domain.ErrDuplicateISBN
		}
	}
	r.seq++
	copy := cloneBook(book)
	copy.ID = fmt.Sprintf("book-%d", r.seq)
	r.books[copy.ID] = cloneBook(copy)
	return copy, nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id, ownerID string) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.books[id]; ok && b.CreatedBy == ownerID {
		return cloneBook(b), nil
	}
	return nil, domain.ErrBookNotFound
}

func (r *stubBookRepo) FindAnyByID(_ context.Context, id string) (*domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.books[id]; ok {
		return cloneBook(b), nil
	}
	return nil, domain.ErrBookNotFound
}

func (r *stubBookRepo) List(_ context.Context, q ports.ListBooksQuery) ([]domain.Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = q
	var out []domain.Book
	for _, b := range r.books {
		if b.CreatedBy != q.OwnerID {
			continue
		}
		if q.Author != "" && b.Author != q.Author {
			continue
		}
		if q.Available != nil && b.Available != *q.Available {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBookRepo) Update(_ context.Context, book *domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.books[book.ID]; !ok || b.CreatedBy != book.CreatedBy {
		return domain.ErrBookNotFound
	}
	r.books[book.ID] = cloneBook(book)
	return nil
}

func (r *stubBookRepo) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.books[id]; !ok || b.CreatedBy != ownerID {
		return domain.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *stubBookRepo) DecrementStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return domain.ErrBookNotFound
	}
	if b.Stock < qty {
		return domain.ErrInsufficientStock
	}
	b.Stock -= qty
	b.Available = b.Stock > 0
	return nil
}

func (r *stubBookRepo) RestoreStock(_ context.Context, id string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[id]
	if !ok {
		return domain.ErrBookNotFound
	}
	b.Stock += qty
	b.Available = b.Stock > 0
	return nil
}

type stubOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	seq    int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *order
	copy.ID = fmt.Sprintf("order-%d", r.seq)
	r.orders[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id, userID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok && o.UserID == userID {
		out := *o
		return &out, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

// authFixture wires an AuthService against in-memory stubs with a cheap
// bcrypt cost so the suite stays fast.
type authFixture struct {
	svc       *AuthService
	gate      *AuthGate
	users     *stubUserRepo
	blacklist *stubBlacklist
	sessions  *stubSessions
	mailer    *stubMailer
	issuer    *token.Issuer
}

func newAuthFixture() *authFixture {
	users := newStubUserRepo()
	blacklist := newStubBlacklist()
	sessions := newStubSessions()
	mailer := &stubMailer{}
	issuer := token.NewIssuer("test-secret", time.Hour)
	store := NewCredentialStore(users, password.NewHasher(bcrypt.MinCost))

	return &authFixture{
		svc:       NewAuthService(store, issuer, blacklist, sessions, mailer, zerolog.Nop(), "http://localhost:3000", time.Hour),
		gate:      NewAuthGate(issuer, blacklist, sessions, users),
		users:     users,
		blacklist: blacklist,
		sessions:  sessions,
		mailer:    mailer,
		issuer:    issuer,
	}
}
