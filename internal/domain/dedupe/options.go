package dedupe

// Option applies a configuration option to a Deduper.
type Option func(*set)

// WithCapacity pre-sizes the seen map. Values <= 0 leave the map unsized.
func WithCapacity(n int) Option {
	return func(s *set) {
		if n > 0 {
			s.capacity = n
		}
	}
}
