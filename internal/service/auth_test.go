package service_test

import (
	"context"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"launchloom.app/studio/common/id"
	"launchloom.app/studio/common/security"
	"launchloom.app/studio/core/config"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/service"
	"launchloom.app/studio/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		ctx    context.Context
		users  *mockUserStore
		tokens *security.TokenIssuer
		saved  map[string]*model.User
		svc    service.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		Expect(id.Init(1)).To(Succeed())
		saved = map[string]*model.User{}
		users = &mockUserStore{
			createFn: func(_ context.Context, user *model.User) error {
				saved[user.Email] = user
				return nil
			},
			getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
				if u, ok := saved[email]; ok {
					return u, nil
				}
				return nil, store.ErrNotFound
			},
			getByIDFn: func(_ context.Context, userID int64) (*model.User, error) {
				for _, u := range saved {
					if u.ID == userID {
						return u, nil
					}
				}
				return nil, store.ErrNotFound
			},
		}
		tokens = security.NewTokenIssuer(config.SecurityConfig{
			JWTSecret:       "test-secret",
			AccessTokenTTL:  time.Minute,
			RefreshTokenTTL: time.Hour,
		})
		svc = service.NewAuthService(users, tokens)
	})

	Describe("Register", func() {
		It("hashes the password and issues tokens", func() {
			user, pair, err := svc.Register(ctx, service.RegisterInput{Email: " Ada@Acme.io ", Name: "Ada", Password: "s3cret-pass"})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("ada@acme.io"))
			Expect(user.PasswordHash).NotTo(Equal("s3cret-pass"))
			Expect(security.VerifyPassword("s3cret-pass", user.PasswordHash)).To(BeTrue())
			Expect(pair.TokenType).To(Equal("bearer"))

			subject, err := tokens.VerifyToken(pair.AccessToken, security.TokenTypeAccess)
			Expect(err).NotTo(HaveOccurred())
			Expect(subject).To(Equal(strconv.FormatInt(user.ID, 10)))
		})

		It("rejects an email that is already registered", func() {
			_, _, err := svc.Register(ctx, service.RegisterInput{Email: "ada@acme.io", Password: "pw-123456"})
			Expect(err).NotTo(HaveOccurred())

			_, _, err = svc.Register(ctx, service.RegisterInput{Email: "ADA@acme.io", Password: "pw-123456"})

			Expect(err).To(MatchError(service.ErrEmailTaken))
			Expect(users.createCalls).To(Equal(1))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, _, err := svc.Register(ctx, service.RegisterInput{Email: "ada@acme.io", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("issues tokens for valid credentials", func() {
			user, pair, err := svc.Login(ctx, "Ada@Acme.io", "correct-horse")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("ada@acme.io"))
			Expect(pair.AccessToken).NotTo(BeEmpty())
			Expect(pair.RefreshToken).NotTo(BeEmpty())
		})

		It("rejects a wrong password", func() {
			_, _, err := svc.Login(ctx, "ada@acme.io", "wrong")

			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("rejects an unknown email", func() {
			_, _, err := svc.Login(ctx, "nobody@acme.io", "correct-horse")

			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("rejects an inactive user", func() {
			saved["ada@acme.io"].IsActive = false

			_, _, err := svc.Login(ctx, "ada@acme.io", "correct-horse")

			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})
	})

	Describe("Refresh and Authenticate", func() {
		var pair *service.TokenPair

		BeforeEach(func() {
			var err error
			_, pair, err = svc.Register(ctx, service.RegisterInput{Email: "ada@acme.io", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("exchanges a refresh token for a new pair", func() {
			next, err := svc.Refresh(ctx, pair.RefreshToken)

			Expect(err).NotTo(HaveOccurred())
			Expect(next.AccessToken).NotTo(BeEmpty())
		})

		It("does not accept an access token as a refresh token", func() {
			_, err := svc.Refresh(ctx, pair.AccessToken)

			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})

		It("resolves an access token to its user", func() {
			user, err := svc.Authenticate(ctx, pair.AccessToken)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal("ada@acme.io"))
		})

		It("rejects garbage", func() {
			_, err := svc.Authenticate(ctx, "not-a-jwt")

			Expect(err).To(MatchError(service.ErrInvalidCredentials))
		})
	})
})
