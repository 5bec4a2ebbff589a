//go:build !linux

package mpris

// Adapter does nothing where there is no session bus.
type Adapter struct{}

// New returns an inert adapter; r keeps receiving snapshots but nothing
// reads them.
func New(_ *Remote) (*Adapter, error) {
	return &Adapter{}, nil
}

func (a *Adapter) Close() error { return nil }
