package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sertaogourmet/pos-api/internal/domain/entity"
	"github.com/sertaogourmet/pos-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryKeys struct {
	mu   sync.Mutex
	rows []entity.IdempotencyKey
}

func (m *memoryKeys) Get(_ context.Context, key string, operatorID uuid.UUID) (*entity.IdempotencyKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		r := m.rows[i]
		if r.Key == key && r.OperatorID == operatorID && !r.IsExpired(time.Now()) {
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memoryKeys) Create(_ context.Context, record *entity.IdempotencyKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *record)
	return nil
}

func (m *memoryKeys) DeleteExpired(context.Context) (int64, error) { return 0, nil }

func withOperator(id uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextOperatorID, id)
		c.Next()
	}
}

func TestAuthMiddleware(t *testing.T) {
	jwt := utils.NewJWTManager("secret", time.Hour, 24*time.Hour)
	operatorID := uuid.New()

	r := gin.New()
	r.GET("/me", AuthMiddleware(jwt), func(c *gin.Context) {
		c.JSON(200, gin.H{"id": GetOperatorID(c), "role": c.GetString(ContextRole)})
	})

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do("").Code)
	assert.Equal(t, http.StatusUnauthorized, do("Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-jwt").Code)

	refresh, err := jwt.GenerateRefreshToken(operatorID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, do("Bearer "+refresh).Code)

	access, err := jwt.GenerateAccessToken(operatorID, "maria", "CASHIER")
	require.NoError(t, err)
	w := do("Bearer " + access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), operatorID.String())
	assert.Contains(t, w.Body.String(), "CASHIER")
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(ContextRole, c.GetHeader("X-Role"))
		c.Next()
	}, RequireRole("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for role, want := range map[string]int{"ADMIN": http.StatusNoContent, "CASHIER": http.StatusForbidden, "": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("X-Role", role)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, role)
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{Requests: 2, Window: time.Hour})
	defer rl.Stop()

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2"))
	assert.Equal(t, 2, rl.Stats()["active_clients"])
}

func TestIdempotencyReplaysSuccessfulResponse(t *testing.T) {
	repo := &memoryKeys{}
	calls := 0

	r := gin.New()
	r.POST("/sales/quick", withOperator(uuid.New()), Idempotency(repo), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	send := func(key, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/sales/quick", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if key != "" {
			req.Header.Set(IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	first := send("k1", `{"a":1}`)
	assert.Equal(t, http.StatusCreated, first.Code)

	replay := send("k1", `{"a":1}`)
	assert.Equal(t, http.StatusCreated, replay.Code)
	assert.Equal(t, "true", replay.Header().Get(ReplayedHeader))
	assert.JSONEq(t, first.Body.String(), replay.Body.String())
	assert.Equal(t, 1, calls)

	conflict := send("k1", `{"a":2}`)
	assert.Equal(t, http.StatusConflict, conflict.Code)
	assert.Equal(t, 1, calls)

	send("", `{"a":1}`)
	send("", `{"a":1}`)
	assert.Equal(t, 3, calls)
}

func TestIdempotencySkipsFailures(t *testing.T) {
	repo := &memoryKeys{}
	status := http.StatusConflict

	r := gin.New()
	r.POST("/x", withOperator(uuid.New()), Idempotency(repo), func(c *gin.Context) {
		c.JSON(status, gin.H{})
	})

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{}`))
		req.Header.Set(IdempotencyKeyHeader, "retry-me")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusConflict, send())
	assert.Empty(t, repo.rows)

	status = http.StatusCreated
	assert.Equal(t, http.StatusCreated, send())
	assert.Len(t, repo.rows, 1)
}
