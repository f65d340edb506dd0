package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/anastasya/flower-shop/internal/domain"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@test.local", uuid.New().String()[:8]),
		password: "Testpassword1",
		name:     "Test User",
		role:     domain.RoleCustomer,
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

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// AsAdmin gives the user the ADMIN role
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.role = domain.RoleAdmin
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	name := b.name
	user := &domain.User{
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         &name,
		Role:         b.role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// Login authenticates the already-built user and returns a client whose
// cookie jar carries the session cookie.
func (b *UserBuilder) Login(t *testing.T, ts *TestServer) *http.Client {
	t.Helper()

	client := ts.Client(t)

	reqBody := map[string]string{
		"email":    b.email,
		"password": b.password,
	}
	if b.role == domain.RoleAdmin {
		reqBody["adminSecret"] = ts.Config.Auth.AdminSecret
	}

	body, _ := json.Marshal(reqBody)
	resp, err := client.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status: %d", resp.StatusCode)
	}

	return client
}

// BuildAndLogin creates the user and returns an authenticated client.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, *http.Client) {
	t.Helper()
	user, _ := b.Build(t, ts.DB.DB)
	return user, b.Login(t, ts)
}

// CategoryBuilder creates test categories
type CategoryBuilder struct {
	slug string
	name string
}

func NewCategoryBuilder() *CategoryBuilder {
	suffix := uuid.New().String()[:8]
	return &CategoryBuilder{
		slug: "category-" + suffix,
		name: "Category " + suffix,
	}
}

func (b *CategoryBuilder) WithSlug(slug string) *CategoryBuilder {
	b.slug = slug
	return b
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) Build(t *testing.T, db *gorm.DB) *domain.Category {
	t.Helper()

	category := &domain.Category{
		Slug:      b.slug,
		Name:      b.name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

// ProductBuilder creates test products
type ProductBuilder struct {
	name       string
	price      string
	categoryID uint
	items      []string
}

func NewProductBuilder(categoryID uint) *ProductBuilder {
	suffix := uuid.New().String()[:8]
	return &ProductBuilder{
		name:       "Bouquet " + suffix,
		price:      "Rp 85.000",
		categoryID: categoryID,
		items:      []string{"5 Tangkai Mawar"},
	}
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.name = name
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.price = price
	return b
}

func (b *ProductBuilder) Build(t *testing.T, db *gorm.DB) *domain.Product {
	t.Helper()

	items, err := json.Marshal(b.items)
	if err != nil {
		t.Fatalf("failed to marshal items: %v", err)
	}

	product := &domain.Product{
		Slug:       domain.Slugify(b.name),
		Name:       b.name,
		Price:      b.price,
		Items:      datatypes.JSON(items),
		CategoryID: b.categoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}

// BlogBuilder creates test blog posts
type BlogBuilder struct {
	title     string
	content   string
	published bool
}

func NewBlogBuilder() *BlogBuilder {
	suffix := uuid.New().String()[:8]
	return &BlogBuilder{
		title:   "Post " + suffix,
		content: "Content body",
	}
}

func (b *BlogBuilder) WithTitle(title string) *BlogBuilder {
	b.title = title
	return b
}

func (b *BlogBuilder) Published() *BlogBuilder {
	b.published = true
	return b
}

func (b *BlogBuilder) Build(t *testing.T, db *gorm.DB) *domain.Blog {
	t.Helper()

	blog := &domain.Blog{
		Slug:      domain.Slugify(b.title),
		Title:     b.title,
		Content:   b.content,
		ReadTime:  5,
		Published: b.published,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(blog).Error; err != nil {
		t.Fatalf("failed to create blog: %v", err)
	}
	return blog
}
