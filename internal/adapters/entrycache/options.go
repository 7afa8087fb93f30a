package entrycache

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithDir sets the cache directory.
func WithDir(dir string) Option {
	return func(s *FileStore) {
		if dir != "" {
			s.dir = dir
		}
	}
}
