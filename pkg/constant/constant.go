package constant

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// Average reading speed used to derive a blog's reading time.
	ReadingWordsPerMinute = 200
)
