// Package content implements the content-resolution core: classification of
// the dual payload formats, the pure resolver over fetched blocks, and the
// compiled-in defaults table. Nothing here touches the store; callers fetch
// records and pass them in.
package content

// Block is the resolver's view of a stored content block. The slice order of
// a []Block must reflect store insertion order so duplicate keys break ties
// deterministically.
type Block struct {
	ID      uint
	Page    string
	Section string
	Title   string
	Content string
	Order   int
}
