package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vincibarbearia/app-agendamento/internal/httperr"
	"github.com/vincibarbearia/app-agendamento/internal/models"
)

// Service holds the customer credential workflow: phone+password login,
// registration, and password rotation. Temporary-password issuance lives
// on the gateway; the upstream generates and delivers the secret out of
// band and this service never sees it.
type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, log: logger}
}

// --------------------------------------------------
// Login
// --------------------------------------------------

func (s *Service) Login(ctx context.Context, phone, password string) (models.Customer, error) {
	clean := NormalizePhone(phone)

	customer, err := s.repo.FindByPhone(ctx, clean)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Customer{}, httperr.ErrBusinessMsg("phone_not_found", "Telefone não cadastrado")
		}
		return models.Customer{}, err
	}

	// A record without a hash was created by the staff dashboard before
	// the customer ever finished signup.
	if customer.PasswordHash == "" {
		return models.Customer{}, httperr.ErrBusinessMsg("password_not_set", "Senha não cadastrada. Por favor, faça o cadastro.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return models.Customer{}, httperr.ErrBusinessMsg("wrong_password", "Senha incorreta")
	}

	now := time.Now()
	if err := s.repo.TouchLastAccess(ctx, customer.ID, now); err != nil {
		s.log.Warn("updating last access failed", zap.String("customer_id", customer.ID), zap.Error(err))
	}
	customer.LastAccessAt = &now

	return customer.Sanitized(), nil
}

// --------------------------------------------------
// Registration
// --------------------------------------------------

type RegisterInput struct {
	FullName       string
	Phone          string
	Email          string
	Password       string
	BirthDate      string // YYYY-MM-DD
	Profession     string
	MaritalStatus  string // internal code
	HasChildren    *bool
	ReferralSource string // internal code
	LikesSmallTalk *bool
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (models.Customer, error) {
	clean := NormalizePhone(in.Phone)
	if !ValidPhone(clean) {
		return models.Customer{}, httperr.ErrBusinessMsg("invalid_phone", "Telefone inválido")
	}

	if _, err := s.repo.FindByPhone(ctx, clean); err == nil {
		return models.Customer{}, httperr.ErrBusinessMsg("phone_already_registered", "Telefone já cadastrado")
	} else if !errors.Is(err, ErrNotFound) {
		return models.Customer{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Customer{}, err
	}

	now := time.Now()
	customer := models.Customer{
		ID:             uuid.NewString(),
		FullName:       in.FullName,
		Phone:          clean,
		Email:          in.Email,
		PasswordHash:   string(hashed),
		BirthDate:      displayDate(in.BirthDate),
		Profession:     in.Profession,
		MaritalStatus:  maritalStatusLabel(in.MaritalStatus),
		HasChildren:    yesNoLabel(in.HasChildren),
		ReferralSource: referralSourceLabel(in.ReferralSource),
		LikesSmallTalk: yesNoLabel(in.LikesSmallTalk),
		IsVIP:          false,
		RegisteredAt:   now,
		LastAccessAt:   &now,
	}

	if err := s.repo.Create(ctx, &customer); err != nil {
		return models.Customer{}, err
	}
	return customer.Sanitized(), nil
}

// --------------------------------------------------
// Password rotation
// --------------------------------------------------

// ChangePassword is the self-service path and verifies the current
// password first.
func (s *Service) ChangePassword(ctx context.Context, customerID, current, next string) error {
	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return httperr.ErrBusinessMsg("customer_not_found", "Cliente não encontrado")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(current)); err != nil {
		return httperr.ErrBusinessMsg("wrong_password", "Senha atual incorreta")
	}

	return s.setPassword(ctx, customerID, next)
}

// ResetPassword is the forced-rotation path after a temporary-password
// login; possession of the temporary password already authenticated the
// customer, so no current-password check is made.
func (s *Service) ResetPassword(ctx context.Context, customerID, next string) error {
	if _, err := s.repo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return httperr.ErrBusinessMsg("customer_not_found", "Cliente não encontrado")
		}
		return err
	}
	return s.setPassword(ctx, customerID, next)
}

func (s *Service) setPassword(ctx context.Context, customerID, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, customerID, string(hashed))
}

// --------------------------------------------------
// Pre-login probe
// --------------------------------------------------

type VerifyResult struct {
	Exists      bool `json:"existe"`
	HasPassword bool `json:"tem_senha"`
}

// Verify tells the login screen whether a phone belongs to a known
// customer and whether that customer finished signup.
func (s *Service) Verify(ctx context.Context, phone string) (VerifyResult, error) {
	customer, err := s.repo.FindByPhone(ctx, NormalizePhone(phone))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return VerifyResult{}, nil
		}
		return VerifyResult{}, err
	}
	return VerifyResult{Exists: true, HasPassword: customer.PasswordHash != ""}, nil
}
