package clock

import (
	"time"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
)

// System reads the wall clock in UTC.
type System struct{}

var _ contract.IClock = System{}

func (System) Now() time.Time { return time.Now().UTC() }
