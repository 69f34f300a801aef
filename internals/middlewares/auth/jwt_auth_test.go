package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "presensiku_backend/internals/helpers/auth"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		AuthJWT(AuthJWTOpts{Secret: testSecret}),
		func(c *fiber.Ctx) error {
			id, err := helperAuth.GetAdminIDFromToken(c)
			if err != nil {
				return err
			}
			return c.JSON(fiber.Map{"admin_id": id})
		},
	)
	return app
}

func TestAuthJWTAcceptsValidToken(t *testing.T) {
	app := newGuardedApp()
	token := signToken(t, jwt.MapClaims{
		"admin_id": 3,
		"username": "guru",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAuthJWTRejectsMissingAdminIDClaim(t *testing.T) {
	app := newGuardedApp()
	// signature valid, tapi tanpa admin_id — tidak boleh jatuh ke admin statis
	token := signToken(t, jwt.MapClaims{
		"username": "guru",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthJWTRejectsBadTokens(t *testing.T) {
	app := newGuardedApp()

	cases := map[string]string{
		"no header":       "",
		"garbage":         "Bearer not-a-jwt",
		"wrong signature": "Bearer " + func() string {
			s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"admin_id": 1}).SignedString([]byte("other-secret"))
			return s
		}(),
	}

	for name, header := range cases {
		req := httptest.NewRequest("GET", "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: app.Test: %v", name, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", name, resp.StatusCode)
		}
	}
}
