package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/notepod/core/internal/database"
	"github.com/notepod/core/internal/modules/note"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memRedisHook answers GET/SET/DEL from an in-process map so the middleware
// runs against a real go-redis client without a server.
type memRedisHook struct {
	mu    sync.Mutex
	store map[string]string
}

func (h *memRedisHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *memRedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *memRedisHook) ProcessHook(redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.mu.Lock()
		defer h.mu.Unlock()
		args := cmd.Args()
		switch cmd.Name() {
		case "get":
			val, ok := h.store[fmt.Sprint(args[1])]
			if !ok {
				cmd.SetErr(redis.Nil)
				return redis.Nil
			}
			cmd.(*redis.StringCmd).SetVal(val)
		case "set":
			h.store[fmt.Sprint(args[1])] = fmt.Sprint(args[2])
			cmd.(*redis.StatusCmd).SetVal("OK")
		case "del":
			var n int64
			for _, a := range args[1:] {
				key := fmt.Sprint(a)
				if _, ok := h.store[key]; ok {
					delete(h.store, key)
					n++
				}
			}
			cmd.(*redis.IntCmd).SetVal(n)
		default:
			err := fmt.Errorf("unexpected command %q", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func newIdempotentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	rdb.AddHook(&memRedisHook{store: map[string]string{}})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "无法创建测试数据库")
	require.NoError(t, database.Migrate(db), "数据库迁移失败")

	r := gin.New()
	r.Use(Idempotence(rdb))
	note.NewHandler(note.NewService(db, zap.NewNop())).RegisterRoutes(r.Group(""))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotenceBlocksDuplicateCreate(t *testing.T) {
	r := newIdempotentRouter(t)
	body := gin.H{"userId": 1, "title": "T", "content": "C"}

	w := doJSON(t, r, http.MethodPost, "/notes", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/notes", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestIdempotenceAllowsLifecycleReplay(t *testing.T) {
	r := newIdempotentRouter(t)

	w := doJSON(t, r, http.MethodPost, "/notes", gin.H{"userId": 1, "title": "T", "content": "C"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := fmt.Sprintf("/notes/%d", created.ID)
	owner := gin.H{"userId": 1}

	// The second identical call of each transition must reach the handler and
	// read as not found there, never as a duplicate-request conflict.
	w = doJSON(t, r, http.MethodDelete, path, owner)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, path, owner)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, path+"/restore", owner)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPut, path+"/restore", owner)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, owner)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, path+"/force", owner)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodDelete, path+"/force", owner)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShouldSkipIdempotence(t *testing.T) {
	cases := []struct {
		method string
		path   string
		want   bool
	}{
		{http.MethodPost, "/users/login", true},
		{http.MethodDelete, "/notes/5", true},
		{http.MethodDelete, "/notes/5/force", true},
		{http.MethodPut, "/notes/5/restore", true},
		{http.MethodPut, "/notes/5", false},
		{http.MethodPost, "/notes", false},
		{http.MethodPost, "/users/register", false},
		{http.MethodDelete, "/categories/3", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, shouldSkipIdempotence(tc.method, tc.path),
			"%s %s", tc.method, tc.path)
	}
}
