package testutil

// Environment implements types.Environment backed by a plain map.
type Environment struct {
	Vars map[string]string
}

// NewEnvironment creates an environment fake from key/value pairs.
func NewEnvironment(pairs ...string) *Environment {
	env := &Environment{Vars: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		env.Vars[pairs[i]] = pairs[i+1]
	}
	return env
}

// Get implements types.Environment.
func (e *Environment) Get(key string) string {
	return e.Vars[key]
}

// LookupEnv implements types.Environment.
func (e *Environment) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

// Set records a variable for later lookups.
func (e *Environment) Set(key, value string) {
	e.Vars[key] = value
}
