package context

import (
	"Foodgram/pkg/response"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", Wrap(h))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		h          HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "biz error uses its code as status",
			h:          func(c *gin.Context) error { return response.NewError(http.StatusNotFound, "菜谱不存在") },
			wantStatus: http.StatusNotFound,
			wantMsg:    "菜谱不存在",
		},
		{
			name:       "unknown error hides details",
			h:          func(c *gin.Context) error { return errors.New("dial tcp 10.0.0.1:3306: refused") },
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "系统异常",
		},
		{
			name: "ok",
			h: func(c *gin.Context) error {
				response.Success(c, gin.H{"a": 1})
				return nil
			},
			wantStatus: http.StatusOK,
			wantMsg:    "ok",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.h)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body response.Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Msg != tt.wantMsg {
				t.Fatalf("msg = %q, want %q", body.Msg, tt.wantMsg)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, err := GetUserID(c); err == nil {
		t.Fatalf("expected error without user")
	}
	if OptionalUserID(c) != 0 {
		t.Fatalf("expected anonymous user id 0")
	}
	c.Set(CtxUserID, int64(42))
	uid, err := GetUserID(c)
	if err != nil || uid != 42 {
		t.Fatalf("uid = %d, err = %v", uid, err)
	}
}
