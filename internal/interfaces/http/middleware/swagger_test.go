package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/precast-erp/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func newSwaggerEngine(cfg config.SwaggerConfig, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/swagger/*any", SwaggerProtection(cfg, auth), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	return r
}

func swaggerRequest(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestSwaggerProtection_Disabled(t *testing.T) {
	r := newSwaggerEngine(config.SwaggerConfig{Enabled: false}, nil)

	w := serve(r, swaggerRequest("10.0.0.1:4000"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decode(t, w).Error.Code)
}

func TestSwaggerProtection_NoRestrictions(t *testing.T) {
	r := newSwaggerEngine(config.SwaggerConfig{Enabled: true}, nil)

	w := serve(r, swaggerRequest("203.0.113.9:4000"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "docs", w.Body.String())
}

func TestSwaggerProtection_AllowedIPs(t *testing.T) {
	r := newSwaggerEngine(config.SwaggerConfig{
		Enabled:    true,
		AllowedIPs: []string{"127.0.0.1", "10.20.0.0/16", "not-an-ip"},
	}, nil)

	tests := []struct {
		name   string
		remote string
		want   int
	}{
		{"exact address", "127.0.0.1:5000", http.StatusOK},
		{"inside range", "10.20.3.4:5000", http.StatusOK},
		{"outside range", "10.21.0.1:5000", http.StatusForbidden},
		{"public address", "198.51.100.7:5000", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, swaggerRequest(tt.remote))
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				assert.Equal(t, dto.ErrCodeForbidden, decode(t, w).Error.Code)
			}
		})
	}
}

func TestSwaggerProtection_RequireAuth(t *testing.T) {
	auth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer ok" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
	r := newSwaggerEngine(config.SwaggerConfig{Enabled: true, RequireAuth: true}, auth)

	w := serve(r, swaggerRequest("10.0.0.1:4000"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := swaggerRequest("10.0.0.1:4000")
	req.Header.Set("Authorization", "Bearer ok")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerProtection_IPCheckedBeforeAuth(t *testing.T) {
	called := false
	auth := func(c *gin.Context) {
		called = true
		c.Next()
	}
	r := newSwaggerEngine(config.SwaggerConfig{
		Enabled:     true,
		RequireAuth: true,
		AllowedIPs:  []string{"127.0.0.1"},
	}, auth)

	w := serve(r, swaggerRequest("192.0.2.10:4000"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestIPAllowed(t *testing.T) {
	prefixes := parseAllowedIPs([]string{" 192.168.1.0/24 ", "::1", "bogus/99"})
	assert.Len(t, prefixes, 2)
	assert.True(t, ipAllowed("192.168.1.200", prefixes))
	assert.True(t, ipAllowed("::1", prefixes))
	assert.True(t, ipAllowed("::ffff:192.168.1.5", prefixes))
	assert.False(t, ipAllowed("192.168.2.1", prefixes))
	assert.False(t, ipAllowed("", prefixes))
}
