package uuidgen

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_NewID(t *testing.T) {
	g := &Generator{now: func() time.Time { return time.UnixMilli(1718000000000) }}

	id := g.NewID("blog")

	assert.Regexp(t, regexp.MustCompile(`^blog_1718000000000_[0-9a-f]{9}$`), id)
	assert.NotEqual(t, id, g.NewID("blog"))
}
