package widget

// FileDescriptor records what the visitor picked in the system file chooser.
// Only metadata travels with the submission; raw bytes never enter the
// widget.
type FileDescriptor struct {
	Name      string `json:"name"`
	Size      int64  `json:"size"`
	MediaType string `json:"type"`
}

// FileBucket is an ordered list of file descriptors. The widget keeps two
// independent buckets (photos and documents). No size, type, or count limit
// is enforced here: the file chooser's accept filter is advisory only and
// the bucket must not assume descriptors match it.
type FileBucket struct {
	files []FileDescriptor
}

// NewFileBucket returns an empty bucket.
func NewFileBucket() *FileBucket {
	return &FileBucket{}
}

// Append adds a descriptor to the end of the bucket.
func (b *FileBucket) Append(desc FileDescriptor) {
	b.files = append(b.files, desc)
}

// RemoveAt deletes the descriptor at index; out-of-range indices are a
// no-op. Reports whether anything was removed.
func (b *FileBucket) RemoveAt(index int) bool {
	if index < 0 || index >= len(b.files) {
		return false
	}
	b.files = append(b.files[:index], b.files[index+1:]...)
	return true
}

// Clear empties the bucket. Each bucket is cleared independently after a
// successful submission.
func (b *FileBucket) Clear() {
	b.files = nil
}

// Len reports the number of descriptors held.
func (b *FileBucket) Len() int {
	return len(b.files)
}

// Items returns a copy of the bucket contents in append order.
func (b *FileBucket) Items() []FileDescriptor {
	if len(b.files) == 0 {
		return nil
	}
	return append([]FileDescriptor(nil), b.files...)
}
