package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Hadjerbacha/cetic-ged/pkg/apierrors"
	"github.com/Hadjerbacha/cetic-ged/pkg/translator"
)

const (
	translationFolder = "../../../../pkg/translator/translation"
	testJwtSecret     = "middleware-test-secret"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", LanguageMiddleware(), AuthMiddleware(testJwtSecret), func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id": identity.UserID,
			"email":   identity.Email,
			"role":    identity.Role,
		})
	})
	return router
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := newAuthRouter()

	token := signToken(t, testJwtSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    float64(7),
		"email": "amina@example.com",
		"role":  "employee",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		UserID uint64 `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(7), got.UserID)
	require.Equal(t, "amina@example.com", got.Email)
	require.Equal(t, "employee", got.Role)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "You must be logged in", got.ErrDetails.Message)
}

func TestAuthMiddleware_BadTokens(t *testing.T) {
	router := newAuthRouter()

	expired := signToken(t, testJwtSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  float64(7),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongSecret := signToken(t, "some-other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  float64(7),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	for name, header := range map[string]string{
		"not bearer":   "Basic abc123",
		"garbage":      "Bearer not-a-token",
		"expired":      "Bearer " + expired,
		"wrong secret": "Bearer " + wrongSecret,
	} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		req.Header.Set("Accept-Language", translator.LanguageEn)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, name)

		var got apierrors.JsonErr
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, "Invalid token", got.ErrDetails.Message, name)
	}
}

func TestGetIdentity_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetIdentity(c)
	require.False(t, ok)
}
