package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dom/notes-website/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user and credential in the database and returns the
// user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:        uuid.New(),
		Email:     b.email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	credential := &domain.Credential{
		UserID: user.ID,
		Hash:   string(hash),
	}
	if err := db.Create(credential).Error; err != nil {
		t.Fatalf("failed to create credential: %v", err)
	}

	return user, b.password
}

// NoteBuilder creates test notes
type NoteBuilder struct {
	title  string
	body   string
	userID uuid.UUID
}

func NewNoteBuilder(userID uuid.UUID) *NoteBuilder {
	return &NoteBuilder{
		title:  "test note",
		body:   "test body",
		userID: userID,
	}
}

func (b *NoteBuilder) WithTitle(title string) *NoteBuilder {
	b.title = title
	return b
}

func (b *NoteBuilder) WithBody(body string) *NoteBuilder {
	b.body = body
	return b
}

func (b *NoteBuilder) Build(t *testing.T, db *gorm.DB) *domain.Note {
	t.Helper()

	note := &domain.Note{
		ID:        uuid.New(),
		Title:     b.title,
		Body:      b.body,
		UserID:    b.userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	return note
}

// Login creates the user via the signup form and returns the user along
// with a client holding a valid session cookie.
func (b *UserBuilder) Login(t *testing.T, ts *TestServer) (*domain.User, *http.Client) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	client := ts.Client(t)
	form := url.Values{
		"email":    {b.email},
		"password": {password},
	}
	resp, err := client.PostForm(ts.URL("/login"), form)
	if err != nil {
		t.Fatalf("failed to post login form: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	return user, client
}

// PostForm submits an application/x-www-form-urlencoded body with the
// given client and returns the response.
func PostForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("failed to post form: %v", err)
	}
	return resp
}
