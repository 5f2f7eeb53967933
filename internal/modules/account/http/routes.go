package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cuauhvip07/cripto/internal/modules/account/domain"
	"github.com/cuauhvip07/cripto/internal/modules/account/infra"
	pg "github.com/cuauhvip07/cripto/internal/modules/account/infra/pg"
	plathttp "github.com/cuauhvip07/cripto/internal/platform/http"
	"github.com/cuauhvip07/cripto/internal/platform/security"
)

// TokenMailer delivers the verification code. Satisfied by *notify.Mailer;
// tests substitute a fake.
type TokenMailer interface {
	SendVerificationToken(ctx context.Context, to, token string) error
}

// Module wires up dependencies for the account HTTP module.
type Module struct {
	repo       domain.AccountRepo
	jwtSecret  []byte
	sessionTTL time.Duration

	mailer      TokenMailer
	mailTimeout time.Duration
}

func (m *Module) WithMailer(ma TokenMailer) *Module {
	m.mailer = ma
	return m
}

func NewModule() *Module {
	return &Module{
		repo:        infra.NewMemAccountRepo(),
		jwtSecret:   []byte("super-secret"),
		sessionTTL:  time.Hour,
		mailTimeout: 10 * time.Second,
	}
}

// NewModulePG creates the PG-based repo.
func NewModulePG(db *pgxpool.Pool, jwtSecret string, sessionTTL time.Duration) *Module {
	if sessionTTL == 0 {
		sessionTTL = time.Hour
	}
	return &Module{
		repo:        pg.NewAccountRepo(db),
		jwtSecret:   []byte(jwtSecret),
		sessionTTL:  sessionTTL,
		mailTimeout: 10 * time.Second,
	}
}

func (m *Module) Register(r fiber.Router) {
	jwtMgr := security.NewJWTManager(string(m.jwtSecret), m.sessionTTL)

	// -------- public --------
	r.Post("/register", RegisterHandler(m.repo, m.mailer, m.mailTimeout))
	r.Post("/verify-token", VerifyTokenHandler(m.repo, jwtMgr))
	r.Get("/ping", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"message": "pong"}) })

	// -------- protected --------
	protected := r.Group("", plathttp.JWTAuth(m.jwtSecret))
	protected.Get("/get-public-key", GetPublicKeyHandler(m.repo))
}
