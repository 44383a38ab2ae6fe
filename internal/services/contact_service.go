package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"natnails.dev/internal/models"
	"natnails.dev/internal/ratelimit"
)

// MaxMessageLength bounds the free-text field of the contact form
const MaxMessageLength = 5000

// ErrRateLimited is returned when a client submits too often
var ErrRateLimited = errors.New("too many submissions")

// RateLimitError is the ErrRateLimited a client gets along with how long
// until its window resets
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string { return ErrRateLimited.Error() }

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// ValidationError lists the form fields that were rejected
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "invalid contact form: " + strings.Join(keys, ", ")
}

// ContactStore persists accepted submissions
type ContactStore interface {
	SaveContact(ctx context.Context, s *models.ContactSubmission) error
}

// ContactService validates, rate-limits and stores contact submissions
type ContactService struct {
	store   ContactStore
	limiter ratelimit.Limiter
	limit   int
	window  time.Duration
	logger  *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewContactService creates a new ContactService
func NewContactService(store ContactStore, limiter ratelimit.Limiter, limit int, window time.Duration, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{
		store:   store,
		limiter: limiter,
		limit:   limit,
		window:  window,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Submit validates form and stores it on behalf of remoteAddr
func (s *ContactService) Submit(ctx context.Context, form models.ContactForm, remoteAddr string) (*models.ContactSubmission, error) {
	clean, err := ValidateContact(form)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if d := s.limiter.Allow("contact:"+remoteAddr, s.limit, s.window); !d.Allowed {
			retry := d.WindowEnd.Sub(s.now())
			if retry < 0 {
				retry = 0
			}
			s.logger.Warn("contact submission rate limited", "remote_addr", remoteAddr, "count", d.Count, "retry_after", retry)
			return nil, &RateLimitError{RetryAfter: retry}
		}
	}

	sub := &models.ContactSubmission{
		ID:         s.newID(),
		Name:       clean.Name,
		Email:      clean.Email,
		Phone:      clean.Phone,
		Message:    clean.Message,
		RemoteAddr: remoteAddr,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.SaveContact(ctx, sub); err != nil {
		return nil, fmt.Errorf("saving contact: %w", err)
	}

	s.logger.Info("contact submission stored", "id", sub.ID)
	return sub, nil
}

// ValidateContact trims form and checks every field, returning the
// cleaned form or a *ValidationError.
func ValidateContact(form models.ContactForm) (models.ContactForm, error) {
	clean := models.ContactForm{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   strings.TrimSpace(form.Phone),
		Message: strings.TrimSpace(form.Message),
	}
	fields := make(map[string]string)

	if clean.Name == "" {
		fields["name"] = "El nombre es obligatorio."
	}

	if clean.Email == "" {
		fields["email"] = "El correo es obligatorio."
	} else if addr, err := mail.ParseAddress(clean.Email); err != nil || addr.Address != clean.Email {
		fields["email"] = "El correo no es válido."
	}

	if clean.Phone != "" && !validPhone(clean.Phone) {
		fields["phone"] = "El teléfono no es válido."
	}

	switch {
	case clean.Message == "":
		fields["message"] = "El mensaje es obligatorio."
	case utf8.RuneCountInString(clean.Message) > MaxMessageLength:
		fields["message"] = fmt.Sprintf("El mensaje no puede exceder %d caracteres.", MaxMessageLength)
	}

	if len(fields) > 0 {
		return clean, &ValidationError{Fields: fields}
	}
	return clean, nil
}

func validPhone(phone string) bool {
	n := utf8.RuneCountInString(phone)
	if n < 8 || n > 20 {
		return false
	}
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 8
}
