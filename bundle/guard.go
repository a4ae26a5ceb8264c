package bundle

import (
	"errors"
)

var ErrRegressionRefused = errors.New("refused to replace terminal status using incomplete data")

type StatusStore interface {
	Get(bundleID string) (Status, bool)
	Set(bundleID string, status Status)
	Delete(bundleID string)
}

// Guard keeps terminal bundle statuses from regressing when a recomputation
// is built from incomplete data
type Guard struct {
	store StatusStore
}

func NewGuard(store StatusStore) *Guard {
	return &Guard{
		store: store,
	}
}

// Apply returns the status that should be reported for the bundle. With
// incomplete data a cached terminal status is returned instead of the
// computed one along with ErrRegressionRefused. With complete data the
// computed status replaces whatever was cached.
func (g *Guard) Apply(bundleID string, status Status, complete bool) (Status, error) {
	if !complete {
		cached, ok := g.store.Get(bundleID)
		if ok && cached.IsTerminal() && cached != status {
			return cached, ErrRegressionRefused
		}
		return status, nil
	}

	if status.IsTerminal() {
		g.store.Set(bundleID, status)
	} else {
		g.store.Delete(bundleID)
	}
	return status, nil
}
