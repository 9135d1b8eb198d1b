package uuidgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
)

const suffixLen = 9

// Generator implements the contract.IUUIDGenerator interface.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a new id generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{now: time.Now}
}

// NewUUID generates a new UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// NewID returns prefix_<unix millis>_<9 random chars>, e.g. blog_1718000000000_3f9a1c2bd.
func (g *Generator) NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:suffixLen]
	return fmt.Sprintf("%s_%d_%s", prefix, g.now().UnixMilli(), suffix)
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)
