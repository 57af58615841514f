// Package environment provides the production types.Environment
// implementation reading the real process environment.
package environment

import (
	"os"

	"github.com/nutthead/samoyed-sub000/pkg/types"
)

type osEnv struct{}

// NewOS creates an Environment backed by the process environment.
func NewOS() types.Environment {
	return osEnv{}
}

func (osEnv) Get(key string) string {
	return os.Getenv(key)
}

func (osEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
