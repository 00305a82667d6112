package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kiptoos/alx-travel-app-0x01/constants"
	"github.com/Kiptoos/alx-travel-app-0x01/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(roles ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(roles...), func(c *gin.Context) {
		userID := c.GetUint("userID")
		userRole := c.GetInt("userRole")
		c.JSON(http.StatusOK, gin.H{"userID": userID, "userRole": userRole})
	})
	return router
}

func tokenFor(t *testing.T, userID uint, role int) string {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	token, err := services.GenerateToken(services.UserInfo{UserId: userID, Role: role}, 60, true)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := newAuthRouter()
	w := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	router := newAuthRouter()
	w := doRequest(router, "not.a.token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsAuthenticatedUser(t *testing.T) {
	router := newAuthRouter()
	w := doRequest(router, tokenFor(t, 7, constants.RoleGuest))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"userID":7`)
	require.Contains(t, w.Body.String(), `"userRole":0`)
}

func TestAuthMiddlewareRoleCheck(t *testing.T) {
	router := newAuthRouter(constants.RoleStaff)

	w := doRequest(router, tokenFor(t, 7, constants.RoleGuest))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, tokenFor(t, 8, constants.RoleStaff))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareMultipleRoles(t *testing.T) {
	router := newAuthRouter(constants.RoleHost, constants.RoleStaff)

	w := doRequest(router, tokenFor(t, 9, constants.RoleHost))
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, tokenFor(t, 7, constants.RoleGuest))
	require.Equal(t, http.StatusForbidden, w.Code)
}
