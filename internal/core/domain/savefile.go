package domain

// SaveFile is one performance input, found under a directory named after its game.
type SaveFile struct {
	// Path is the location on disk.
	Path string
	// Name is the path relative to the saves root, with forward slashes.
	Name string
	Game Game
	// Digest is the hex content hash of the file as stored.
	Digest string
}
