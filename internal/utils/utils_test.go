package utils

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]{30}$`)

func TestGenerateAPIKey(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		key, err := GenerateAPIKey()
		require.NoError(t, err)
		assert.Regexp(t, alphanumeric, key)
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestHashAPIKey(t *testing.T) {
	// echo -n "abc" | sha256sum
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashAPIKey("abc"))
	assert.Equal(t, HashAPIKey("same"), HashAPIKey("same"))
	assert.NotEqual(t, HashAPIKey("a"), HashAPIKey("b"))
	assert.Len(t, HashAPIKey(""), 64)
}

func TestAPIKeyFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		want    string
		wantErr error
	}{
		{name: "absent", wantErr: ErrMissingAPIKey},
		{name: "blank", value: strPtr("   "), wantErr: ErrMissingAPIKey},
		{name: "present", value: strPtr("abc123"), want: "abc123"},
		{name: "trimmed", value: strPtr(" abc123 "), want: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.value != nil {
				h.Set("X-Api-Key", *tt.value)
			}
			got, err := APIKeyFromHeader(h)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageIndex(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 0},
		{raw: "0", want: 0},
		{raw: "3", want: 3},
		{raw: "-1", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: strconv.Itoa(math.MaxInt / 10), want: math.MaxInt / 10},
		{raw: strconv.Itoa(math.MaxInt/10 + 1), wantErr: true},
		{raw: "922337203685477581", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePageIndex(tt.raw)
			if tt.wantErr {
				var verr *apierrors.ValidationError
				require.True(t, errors.As(err, &verr))
				require.Len(t, verr.Errors, 1)
				assert.Equal(t, "page", verr.Errors[0].Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/todos?page=2", nil)

	params, err := GetPaginationParams(c)
	require.NoError(t, err)
	assert.Equal(t, PaginationParams{Page: 2, Limit: 10, Offset: 20}, params)
}

func strPtr(s string) *string { return &s }
