package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelbook/models"
	"parcelbook/utils"
)

func protected(issuer *utils.TokenIssuer, roles ...models.Role) http.Handler {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(claims.UserID))
	})
	var h http.Handler = final
	if len(roles) > 0 {
		h = RequireRole(roles...)(h)
	}
	return AuthMiddleware(issuer)(h)
}

func TestAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.GenerateToken("u-1", string(models.RoleBranch), "b-hr")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"bearer", "Bearer " + token, "", http.StatusOK},
		{"cookie", "", token, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"malformed", "Token " + token, "", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()

			protected(issuer).ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusOK {
				assert.Equal(t, "u-1", rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Hour)
	staff, err := issuer.GenerateToken("u-1", string(models.RoleBranch), "b-hr")
	require.NoError(t, err)
	admin, err := issuer.GenerateToken("u-2", string(models.RoleSuperAdmin), "")
	require.NoError(t, err)

	h := protected(issuer, models.RoleSuperAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-2", rec.Body.String())
}
