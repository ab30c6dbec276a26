// Package shortlink issues short codes that redirect to longer URLs.
package shortlink

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

const (
	codeLength    = 7
	createRetries = 5
	maxURLLength  = 2048
	alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// linkRepo defines the short link repository interface needed by shortlink service.
type linkRepo interface {
	Create(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error)
	Resolve(ctx context.Context, code string, now time.Time) (*domain.ShortLink, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// resolveRecorder counts successful redirects.
type resolveRecorder interface {
	LinkResolved()
}

// Service implements short link operations.
type Service struct {
	log        *slog.Logger
	links      linkRepo
	metrics    resolveRecorder
	defaultTTL time.Duration
	now        func() time.Time
	newCode    func() (string, error)
}

// NewService creates a new shortlink service. Links without an explicit TTL
// expire after defaultTTL; zero means they never expire.
func NewService(logger *slog.Logger, links linkRepo, metrics resolveRecorder, defaultTTL time.Duration) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		log:        logger.With("service", "shortlink"),
		links:      links,
		metrics:    metrics,
		defaultTTL: defaultTTL,
		now:        time.Now,
		newCode:    randomCode,
	}
}

// CreateInput holds parameters for a new short link.
type CreateInput struct {
	TargetURL string
	TTL       *time.Duration
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	target := strings.TrimSpace(i.TargetURL)
	u, err := url.Parse(target)
	switch {
	case target == "":
		errs = append(errs, domain.FieldError{Field: "target_url", Message: "required"})
	case len(target) > maxURLLength:
		errs = append(errs, domain.FieldError{Field: "target_url", Message: "too long"})
	case err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https"):
		errs = append(errs, domain.FieldError{Field: "target_url", Message: "must be an absolute http or https URL"})
	}

	if i.TTL != nil && *i.TTL < 0 {
		errs = append(errs, domain.FieldError{Field: "ttl", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create stores a new link for the caller under a random code.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ShortLink, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	ttl := s.defaultTTL
	if input.TTL != nil {
		ttl = *input.TTL
	}
	var expires *time.Time
	if ttl > 0 {
		at := now.Add(ttl)
		expires = &at
	}

	for attempt := 1; ; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("shortlink.Create: %w", err)
		}

		link, err := s.links.Create(ctx, &domain.ShortLink{
			Code:      code,
			TargetURL: strings.TrimSpace(input.TargetURL),
			CreatedBy: userID,
			ExpiresAt: expires,
			CreatedAt: now,
		})
		if err == nil {
			s.log.InfoContext(ctx, "short link created", slog.String("code", code))
			return link, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) || attempt == createRetries {
			return nil, fmt.Errorf("shortlink.Create: %w", err)
		}
		s.log.DebugContext(ctx, "short code collision", slog.Int("attempt", attempt))
	}
}

// Resolve returns the target of a live link and counts the hit. Unknown and
// expired codes yield domain.ErrNotFound.
func (s *Service) Resolve(ctx context.Context, code string) (*domain.ShortLink, error) {
	if !validCode(code) {
		return nil, fmt.Errorf("shortlink %q: %w", code, domain.ErrNotFound)
	}
	link, err := s.links.Resolve(ctx, code, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("shortlink.Resolve: %w", err)
	}
	s.metrics.LinkResolved()
	return link, nil
}

// PurgeExpired deletes links that expired before now.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.links.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("shortlink.PurgeExpired: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired short links purged", slog.Int64("count", n))
	}
	return n, nil
}

func randomCode() (string, error) {
	size := big.NewInt(int64(len(alphabet)))
	b := make([]byte, codeLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("generate code: %w", err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b), nil
}

func validCode(code string) bool {
	if len(code) != codeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if strings.IndexByte(alphabet, code[i]) < 0 {
			return false
		}
	}
	return true
}

type nopRecorder struct{}

func (nopRecorder) LinkResolved() {}
