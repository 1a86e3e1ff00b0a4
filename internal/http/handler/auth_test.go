package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"launchloom.app/studio/internal/http/handler"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
		pair   *service.TokenPair
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockAuthService{}
		pair = &service.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}
		h := handler.NewAuthHandler(svc)

		auth := router.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	})

	Describe("Register", func() {
		It("returns 201 with the user and tokens", func() {
			svc.registerFn = func(_ context.Context, input service.RegisterInput) (*model.User, *service.TokenPair, error) {
				Expect(input.Email).To(Equal("ada@acme.io"))
				return &model.User{ID: 9, Email: input.Email, Name: input.Name, IsActive: true}, pair, nil
			}

			w := doJSON(router, http.MethodPost, "/auth/register", map[string]string{
				"email": "ada@acme.io", "name": "Ada", "password": "correct-horse",
			})

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decode(w)
			Expect(resp["access_token"]).To(Equal("access"))
			Expect(resp["token_type"]).To(Equal("bearer"))
			Expect(resp["user"]).To(HaveKeyWithValue("id", "9"))
			Expect(resp["user"]).NotTo(HaveKey("password_hash"))
		})

		It("returns 409 for a taken email", func() {
			w := doJSON(router, http.MethodPost, "/auth/register", map[string]string{
				"email": "ada@acme.io", "name": "Ada", "password": "correct-horse",
			})

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decode(w)["error"]).To(Equal("email already registered"))
		})

		DescribeTable("returns 400 for invalid bodies",
			func(body map[string]string) {
				w := doJSON(router, http.MethodPost, "/auth/register", body)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
			},
			Entry("short password", map[string]string{"email": "ada@acme.io", "name": "Ada", "password": "short"}),
			Entry("bad email", map[string]string{"email": "ada", "name": "Ada", "password": "correct-horse"}),
			Entry("missing name", map[string]string{"email": "ada@acme.io", "password": "correct-horse"}),
		)
	})

	Describe("Login", func() {
		It("returns the token pair", func() {
			svc.loginFn = func(_ context.Context, email, password string) (*model.User, *service.TokenPair, error) {
				Expect(email).To(Equal("ada@acme.io"))
				Expect(password).To(Equal("correct-horse"))
				return &model.User{ID: 9, Email: email}, pair, nil
			}

			w := doJSON(router, http.MethodPost, "/auth/login", map[string]string{"email": "ada@acme.io", "password": "correct-horse"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["refresh_token"]).To(Equal("refresh"))
		})

		It("returns 401 for bad credentials", func() {
			w := doJSON(router, http.MethodPost, "/auth/login", map[string]string{"email": "ada@acme.io", "password": "wrong"})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Refresh", func() {
		It("returns a new pair without a user", func() {
			svc.refreshFn = func(_ context.Context, token string) (*service.TokenPair, error) {
				Expect(token).To(Equal("refresh"))
				return pair, nil
			}

			w := doJSON(router, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "refresh"})

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["access_token"]).To(Equal("access"))
			Expect(resp).NotTo(HaveKey("user"))
		})

		It("returns 401 for an invalid token", func() {
			w := doJSON(router, http.MethodPost, "/auth/refresh", map[string]string{"refresh_token": "nope"})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 without a token", func() {
			w := doJSON(router, http.MethodPost, "/auth/refresh", map[string]string{})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
