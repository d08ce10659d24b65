package middlewares

import (
	"net/http/httptest"
	"testing"
	"time"

	"bolao/auth"
	"bolao/config"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "middleware-test-secret-key")
	t.Setenv("DB_PASSWORD", "unused")
	if _, err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}

	app := fiber.New()
	app.Get("/user", RequireAuth, func(c *fiber.Ctx) error {
		claims, _ := CallerClaims(c)
		return c.JSON(fiber.Map{"user_id": claims.UserID})
	})
	app.Get("/admin", RequireAuth, RequireAdmin, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func bearer(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := auth.GenerateToken(config.Get().JWTSecret, time.Hour, userID, role)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return "Bearer " + token
}

func TestRequireAuth(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", fiber.StatusUnauthorized},
		{"valid token", bearer(t, 7, models.RoleUser), fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/user", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		name string
		role string
		want int
	}{
		{"user role is rejected", models.RoleUser, fiber.StatusForbidden},
		{"admin role passes", models.RoleAdmin, fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", bearer(t, 1, tc.role))
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
