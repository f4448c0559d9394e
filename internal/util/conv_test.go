package util_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"quiz_backend/internal/util"
)

func TestMustParseUint(t *testing.T) {
	assert.Equal(t, uint(42), util.MustParseUint("42"))
	assert.Equal(t, uint(0), util.MustParseUint("abc"))
	assert.Equal(t, uint(0), util.MustParseUint(""))
	assert.Equal(t, uint(0), util.MustParseUint("-1"))
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := map[string]struct {
		query string
		key   string
		def   int
		want  int
	}{
		"present":                   {query: "limit=20", key: "limit", def: 50, want: 20},
		"absent uses default":       {query: "", key: "limit", def: 50, want: 50},
		"not a number uses default": {query: "limit=abc", key: "limit", def: 50, want: 50},
		"zero is respected":         {query: "skip=0", key: "skip", def: 10, want: 0},
		"negative parses":           {query: "skip=-3", key: "skip", def: 0, want: -3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)

			assert.Equal(t, tt.want, util.QueryInt(ctx, tt.key, tt.def))
		})
	}
}
