package domain

// Settings is the read-only user configuration store supplied by the host.
type Settings interface {
	Int(key string) (int, bool)
}

// StaticSettings is a fixed Settings backed by a map.
type StaticSettings map[string]int

func (s StaticSettings) Int(key string) (int, bool) {
	v, ok := s[key]
	return v, ok
}
