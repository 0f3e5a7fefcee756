package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 10)
	assert.Equal(t, uint64(20), offset)
	assert.Equal(t, uint64(10), limit)

	offset, limit = CalculateOffsetLimit(0, 1000)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, uint64(DefaultPageSize), limit)

	offset, limit = CalculateOffsetLimit(math.MaxInt, 50)
	assert.Equal(t, uint64(math.MaxInt64), offset)
	assert.Equal(t, uint64(50), limit)

	offset, _ = CalculateOffsetLimit(math.MaxInt/100+1, 100)
	assert.Equal(t, uint64(math.MaxInt/100)*100, offset)
}

func contextFor(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestParseIntQuery(t *testing.T) {
	c := contextFor("/courses/?min_price=100&max_price=abc")

	v, err := ParseIntQuery(c, "min_price", 0)
	assert.NoError(t, err)
	assert.Equal(t, 100, v)

	_, err = ParseIntQuery(c, "max_price", 100000)
	assert.Error(t, err)

	v, err = ParseIntQuery(c, "missing", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestParsePaginationParams(t *testing.T) {
	page, size := ParsePaginationParams(contextFor("/users/?page=2&size=5"))
	assert.Equal(t, 2, page)
	assert.Equal(t, 5, size)

	page, size = ParsePaginationParams(contextFor("/users/?page=-1&size=x"))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)
}
