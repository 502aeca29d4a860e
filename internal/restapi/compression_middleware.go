package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// compressionMinSize keeps small envelopes (errors, a single greeting) uncompressed.
const compressionMinSize = 1024

// compressibleTypes are the bodies this backend produces: JSON envelopes and the debug page.
var compressibleTypes = []string{"application/json", "text/html"}

var gzipWrapper = newGzipWrapper()

func newGzipWrapper() func(http.Handler) http.HandlerFunc {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(compressionMinSize),
		gzhttp.ContentTypes(compressibleTypes),
	)
	if err != nil {
		// Options are constant; fall back to gzhttp defaults rather than fail start-up
		return gzhttp.GzipHandler
	}
	return wrapper
}

// CompressionMiddleware gzips JSON and HTML responses of at least compressionMinSize bytes
// for clients that accept it.
func CompressionMiddleware(next http.Handler) http.Handler {
	return gzipWrapper(next)
}
