package auth

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/models"
)

type fakeRepo struct {
	byPhone map[string]*models.Customer
	byID    map[string]*models.Customer
	created []*models.Customer
}

func newFakeRepo(customers ...*models.Customer) *fakeRepo {
	r := &fakeRepo{
		byPhone: make(map[string]*models.Customer),
		byID:    make(map[string]*models.Customer),
	}
	for _, c := range customers {
		r.byPhone[c.Phone] = c
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeRepo) FindByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	if c, ok := r.byPhone[phone]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	if c, ok := r.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) Create(ctx context.Context, customer *models.Customer) error {
	r.created = append(r.created, customer)
	r.byPhone[customer.Phone] = customer
	r.byID[customer.ID] = customer
	return nil
}

func (r *fakeRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if c, ok := r.byID[id]; ok {
		c.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeRepo) TouchLastAccess(ctx context.Context, id string, at time.Time) error {
	return nil
}

var _ Repository = (*fakeRepo)(nil)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeRepo(&models.Customer{
		ID: "c1", Phone: "11988887777", PasswordHash: hashOf(t, "segredo"),
	})
	svc := NewService(repo, zap.NewNop())

	customer, err := svc.Login(context.Background(), "(11) 98888-7777", "segredo")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if customer.ID != "c1" {
		t.Fatalf("wrong customer %+v", customer)
	}
	if customer.PasswordHash != "" {
		t.Fatal("password hash leaked from login")
	}
	if customer.LastAccessAt == nil {
		t.Fatal("last access not stamped")
	}
}

func TestLoginErrorTaxonomy(t *testing.T) {
	repo := newFakeRepo(
		&models.Customer{ID: "c1", Phone: "11988887777", PasswordHash: hashOf(t, "segredo")},
		&models.Customer{ID: "c2", Phone: "11977776666"},
	)
	svc := NewService(repo, zap.NewNop())

	tests := []struct {
		name     string
		phone    string
		password string
		code     string
	}{
		{"unknown phone", "11900000000", "x", "phone_not_found"},
		{"no password set", "11977776666", "x", "password_not_set"},
		{"wrong password", "11988887777", "errada", "wrong_password"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.phone, tc.password)
			if !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("expected %s, got %v", tc.code, err)
			}
		})
	}
}

func TestRegisterTranslatesVocabulary(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())

	yes := true
	no := false
	customer, err := svc.Register(context.Background(), RegisterInput{
		FullName:       "João Silva",
		Phone:          "(11) 98888-7777",
		Password:       "segredo",
		BirthDate:      "1990-05-20",
		MaritalStatus:  "solteiro",
		ReferralSource: "redes_sociais",
		HasChildren:    &no,
		LikesSmallTalk: &yes,
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if customer.Phone != "11988887777" {
		t.Fatalf("phone not normalized, got %q", customer.Phone)
	}
	if customer.MaritalStatus != "Solteiro(a)" {
		t.Fatalf("marital status not translated, got %q", customer.MaritalStatus)
	}
	if customer.ReferralSource != "Instagram" {
		t.Fatalf("referral source not translated, got %q", customer.ReferralSource)
	}
	if customer.HasChildren != "Não" || customer.LikesSmallTalk != "Sim" {
		t.Fatalf("boolean answers not translated: %q / %q", customer.HasChildren, customer.LikesSmallTalk)
	}
	if customer.BirthDate != "20/05/1990" {
		t.Fatalf("birth date not converted, got %q", customer.BirthDate)
	}
	if customer.ID == "" {
		t.Fatal("no id assigned")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
	if repo.created[0].PasswordHash == "" || repo.created[0].PasswordHash == "segredo" {
		t.Fatal("password stored unhashed")
	}
}

func TestRegisterRejectsInvalidAndDuplicatePhones(t *testing.T) {
	repo := newFakeRepo(&models.Customer{ID: "c1", Phone: "11988887777"})
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Register(context.Background(), RegisterInput{Phone: "123", Password: "x"})
	if !httperr.IsBusiness(err, "invalid_phone") {
		t.Fatalf("expected invalid_phone, got %v", err)
	}

	_, err = svc.Register(context.Background(), RegisterInput{Phone: "11988887777", Password: "x"})
	if !httperr.IsBusiness(err, "phone_already_registered") {
		t.Fatalf("expected phone_already_registered, got %v", err)
	}
}

func TestChangePasswordChecksCurrent(t *testing.T) {
	repo := newFakeRepo(&models.Customer{
		ID: "c1", Phone: "11988887777", PasswordHash: hashOf(t, "antiga"),
	})
	svc := NewService(repo, zap.NewNop())

	err := svc.ChangePassword(context.Background(), "c1", "errada", "nova")
	if !httperr.IsBusiness(err, "wrong_password") {
		t.Fatalf("expected wrong_password, got %v", err)
	}

	if err := svc.ChangePassword(context.Background(), "c1", "antiga", "nova"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.byID["c1"].PasswordHash), []byte("nova")) != nil {
		t.Fatal("new password not stored")
	}
}

func TestResetPasswordSkipsCurrentCheck(t *testing.T) {
	repo := newFakeRepo(&models.Customer{
		ID: "c1", Phone: "11988887777", PasswordHash: hashOf(t, "temporaria"),
	})
	svc := NewService(repo, zap.NewNop())

	if err := svc.ResetPassword(context.Background(), "c1", "nova"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.byID["c1"].PasswordHash), []byte("nova")) != nil {
		t.Fatal("new password not stored")
	}

	err := svc.ResetPassword(context.Background(), "ghost", "nova")
	if !httperr.IsBusiness(err, "customer_not_found") {
		t.Fatalf("expected customer_not_found, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	repo := newFakeRepo(
		&models.Customer{ID: "c1", Phone: "11988887777", PasswordHash: "hash"},
		&models.Customer{ID: "c2", Phone: "11977776666"},
	)
	svc := NewService(repo, zap.NewNop())

	tests := []struct {
		phone string
		want  VerifyResult
	}{
		{"11988887777", VerifyResult{Exists: true, HasPassword: true}},
		{"11977776666", VerifyResult{Exists: true, HasPassword: false}},
		{"11900000000", VerifyResult{}},
	}
	for _, tc := range tests {
		got, err := svc.Verify(context.Background(), tc.phone)
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if got != tc.want {
			t.Fatalf("Verify(%s): expected %+v, got %+v", tc.phone, tc.want, got)
		}
	}
}
