package ingest

// Kind identifies which ingested list a channel came from. The three lists
// are independent pipelines that never share channels.
type Kind string

const (
	KindDirect Kind = "direct"
	KindMovie  Kind = "movie"
	KindWeb    Kind = "web_iptv"
)

// FallbackGroup is the category assigned to channels whose playlist entry
// carries no group-title.
const FallbackGroup = "Sin categoría"
