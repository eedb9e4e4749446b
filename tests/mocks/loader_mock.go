package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/quantmind-br/stylecfg/internal/manifest"
)

// MockManifestLoader mocks the app.ManifestLoader interface
type MockManifestLoader struct {
	mock.Mock
}

// Load mocks loading a manifest file
func (m *MockManifestLoader) Load(path string) (*manifest.Manifest, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

// Find mocks manifest discovery in a directory
func (m *MockManifestLoader) Find(dir string) (string, error) {
	args := m.Called(dir)
	return args.String(0), args.Error(1)
}
